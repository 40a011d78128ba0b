package sources

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/sheetsync/sheetsync/internal/log"
)

// FolderFetcher reads sheets from <folder>/<gid>.csv files
type FolderFetcher struct {
	ctx    context.Context
	folder string
}

func NewFolderFetcher(ctx context.Context, folder string) *FolderFetcher {
	l := log.GetLogger(ctx).WithField("source", folder)
	return &FolderFetcher{ctx: log.WithLogger(ctx, l), folder: folder}
}

func (ff *FolderFetcher) Fetch(ctx context.Context, gid string) (Table, error) {
	if ctx.Err() != nil {
		return Table{}, &FetchError{GID: gid, Err: ctx.Err()}
	}
	if gid == "" || filepath.Base(gid) != gid {
		return Table{}, &FetchError{GID: gid, Err: errors.New("invalid sheet id")}
	}
	fname := filepath.Join(ff.folder, gid+".csv")
	log.GetLogger(ff.ctx).WithField("file", fname).Debug("reading sheet")
	data, err := os.ReadFile(fname)
	if err != nil {
		return Table{}, &FetchError{GID: gid, Err: err}
	}
	t, err := ParseTable(data)
	if err != nil {
		return Table{}, &FetchError{GID: gid, Err: err}
	}
	return t, nil
}
