package sinks

import (
	"context"
	"encoding/json"
	"os"

	"github.com/sheetsync/sheetsync/internal/log"
	"github.com/sheetsync/sheetsync/internal/metrics"
)

// JSONWriter is a sink that writes the metrics document to a single JSON file.
// The file is truncated and rewritten in place on every call, a failure in the
// middle of writing may leave it incomplete.
type JSONWriter struct {
	ctx   context.Context
	fname string
}

func NewJSONWriter(ctx context.Context, fname string) (*JSONWriter, error) {
	l := log.GetLogger(ctx).WithField("sink", "jsonfile").WithField("file", fname)
	return &JSONWriter{ctx: log.WithLogger(ctx, l), fname: fname}, nil
}

func (jw *JSONWriter) Write(doc *metrics.Document) error {
	if jw.ctx.Err() != nil {
		return jw.ctx.Err()
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if err = writeFile(jw.fname, data); err != nil {
		return err
	}
	log.GetLogger(jw.ctx).WithField("metrics", doc.Len()).Debug("document written")
	return nil
}

// writeFile creates or truncates fname and writes data to it
func writeFile(fname string, data []byte) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
