package sinks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sheetsync/sheetsync/internal/metrics"
)

// MultiWriter ensures the simultaneous storage of data in several storages.
type MultiWriter struct {
	writers []Writer
	sync.Mutex
}

// NewSinkWriter creates and returns new instance of MultiWriter struct.
func NewSinkWriter(ctx context.Context, opts *CmdOpts) (w Writer, err error) {
	if len(opts.Sinks) == 0 {
		return nil, errors.New("no sinks specified for metrics")
	}
	mw := &MultiWriter{}
	for _, s := range opts.Sinks {
		scheme, path, found := strings.Cut(s, "://")
		if !found || scheme == "" || path == "" {
			return nil, fmt.Errorf("malformed sink URI %s", s)
		}
		switch scheme {
		case "jsonfile":
			w, err = NewJSONWriter(ctx, path)
		case "yamlfile":
			w, err = NewYAMLWriter(ctx, path)
		case "postgres", "postgresql":
			w, err = NewPostgresWriter(ctx, s)
		case "promfile":
			w, err = NewPrometheusWriter(ctx, path)
		case "boltfile":
			w, err = NewBoltWriter(ctx, path)
		default:
			return nil, fmt.Errorf("unknown schema %s in sink URI %s", scheme, s)
		}
		if err != nil {
			return nil, err
		}
		mw.AddWriter(w)
	}
	if len(mw.writers) == 1 {
		return mw.writers[0], nil
	}
	return mw, nil
}

func (mw *MultiWriter) AddWriter(w Writer) {
	mw.Lock()
	mw.writers = append(mw.writers, w)
	mw.Unlock()
}

func (mw *MultiWriter) Write(doc *metrics.Document) (err error) {
	mw.Lock()
	defer mw.Unlock()
	for _, w := range mw.writers {
		err = errors.Join(err, w.Write(doc))
	}
	return
}
