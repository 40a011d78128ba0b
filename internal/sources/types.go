package sources

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

type (
	// Record is one table row, keyed by column name
	Record = map[string]string

	// Table is a parsed sheet. Header keeps the column order.
	Table struct {
		Header []string
		Rows   []Record
	}

	// Fetcher retrieves a sheet by its gid
	Fetcher interface {
		Fetch(ctx context.Context, gid string) (Table, error)
	}
)

// FetchError is returned when a sheet cannot be retrieved or decoded
type FetchError struct {
	GID string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("cannot fetch sheet gid=%s: %v", e.GID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type Kind int

const (
	SourceURL Kind = iota
	SourceFolder
	SourceError
)

// GetSourceKind tells whether source is a remote export URL or a local folder
func GetSourceKind(source string) (Kind, error) {
	switch {
	case source == "":
		return SourceError, errors.New("no source provided")
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return SourceURL, nil
	}
	fi, err := os.Stat(strings.TrimPrefix(source, "file://"))
	if err != nil {
		return SourceError, err
	}
	if !fi.IsDir() {
		return SourceError, fmt.Errorf("source %s is not a folder", source)
	}
	return SourceFolder, nil
}

// NewFetcher creates a fetcher for the configured source
func NewFetcher(ctx context.Context, opts *CmdOpts) (Fetcher, error) {
	kind, err := GetSourceKind(opts.Source)
	if err != nil {
		return nil, err
	}
	if kind == SourceFolder {
		return NewFolderFetcher(ctx, strings.TrimPrefix(opts.Source, "file://")), nil
	}
	hf, err := NewHTTPFetcher(ctx, opts.Source, opts.HTTPTimeout)
	if err != nil {
		return nil, err
	}
	return hf, nil
}
