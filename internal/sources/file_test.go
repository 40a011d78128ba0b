package sources

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSheet(t *testing.T, dir, gid, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, gid+".csv"), []byte(body), 0644))
}

func TestFolderFetcher(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, "0", "slug,gid\ngdp,123\n")
	ff := NewFolderFetcher(ctx, dir)

	tbl, err := ff.Fetch(ctx, "0")
	require.NoError(t, err)
	assert.Equal(t, "gdp", tbl.Rows[0]["slug"])

	_, err = ff.Fetch(ctx, "missing")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ff.Fetch(ctx, "../0")
	assert.Error(t, err)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = ff.Fetch(cctx, "0")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetSourceKind(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, "0", "slug\n")

	k, err := GetSourceKind(DefaultSource)
	assert.NoError(t, err)
	assert.Equal(t, SourceURL, k)

	k, err = GetSourceKind(dir)
	assert.NoError(t, err)
	assert.Equal(t, SourceFolder, k)

	k, err = GetSourceKind("file://" + dir)
	assert.NoError(t, err)
	assert.Equal(t, SourceFolder, k)

	_, err = GetSourceKind(filepath.Join(dir, "0.csv"))
	assert.Error(t, err, "files are not accepted")

	_, err = GetSourceKind("")
	assert.Error(t, err)

	_, err = GetSourceKind(filepath.Join(dir, "nowhere"))
	assert.Error(t, err)
}

func TestNewFetcher(t *testing.T) {
	f, err := NewFetcher(ctx, &CmdOpts{Source: DefaultSource})
	require.NoError(t, err)
	assert.IsType(t, &HTTPFetcher{}, f)

	f, err = NewFetcher(ctx, &CmdOpts{Source: "file://" + t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FolderFetcher{}, f)

	_, err = NewFetcher(ctx, &CmdOpts{})
	assert.Error(t, err)
}
