package sinks

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sheetsync/sheetsync/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWriter_Write(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	tempFile := filepath.Join(t.TempDir(), "metrics.json")
	r.NoError(os.WriteFile(tempFile, []byte(`{"stale": {}, "padding": "`+string(make([]byte, 4096))+`"}`), 0644))

	ctx, cancel := context.WithCancel(ctx)
	jw, err := NewJSONWriter(ctx, tempFile)
	r.NoError(err)

	doc := newTestDocument(t)
	a.NoError(jw.Write(doc), "write successful")

	// Read the contents of the file
	var data map[string]map[string]any
	file, err := os.ReadFile(tempFile)
	r.NoError(err)
	r.NoError(json.Unmarshal(file, &data), "previous content is truncated")
	a.Len(data, 2)
	a.NotContains(data, "stale")
	a.Equal([]any{map[string]any{"period": "2001Q1", "value": 2.5}, map[string]any{"period": "2001Q2", "value": -0.5}}, data["gdp"]["data"])
	a.Equal([]any{-5.0, 0.0, 5.0}, data["gdp"]["ticks"])
	a.Nil(data["cpi"]["ticks"])
	a.Equal(false, data["cpi"]["show_plus"])
	a.Equal("CPI", data["cpi"]["title"])

	r.NoError(jw.Write(metrics.NewDocument()))
	file, err = os.ReadFile(tempFile)
	r.NoError(err)
	a.Equal("{}", string(file))

	cancel()
	a.Error(jw.Write(doc), "context canceled")
}

func TestJSONWriter_WriteMissingFolder(t *testing.T) {
	jw, err := NewJSONWriter(ctx, filepath.Join(t.TempDir(), "missing", "metrics.json"))
	require.NoError(t, err)
	assert.Error(t, jw.Write(newTestDocument(t)))
}
