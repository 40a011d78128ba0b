package sinks

import (
	"context"

	"github.com/sheetsync/sheetsync/internal/log"
	"github.com/sheetsync/sheetsync/internal/metrics"
	"gopkg.in/yaml.v3"
)

// YAMLWriter is a sink that writes the metrics document to a YAML file,
// keeping the same structure and key order as the JSON output.
type YAMLWriter struct {
	ctx   context.Context
	fname string
}

func NewYAMLWriter(ctx context.Context, fname string) (*YAMLWriter, error) {
	l := log.GetLogger(ctx).WithField("sink", "yamlfile").WithField("file", fname)
	return &YAMLWriter{ctx: log.WithLogger(ctx, l), fname: fname}, nil
}

func (yw *YAMLWriter) Write(doc *metrics.Document) error {
	if yw.ctx.Err() != nil {
		return yw.ctx.Err()
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	if err = writeFile(yw.fname, data); err != nil {
		return err
	}
	log.GetLogger(yw.ctx).WithField("metrics", doc.Len()).Debug("document written")
	return nil
}
