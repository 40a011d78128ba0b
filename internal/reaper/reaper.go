package reaper

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sheetsync/sheetsync/internal/cmdopts"
	"github.com/sheetsync/sheetsync/internal/log"
	"github.com/sheetsync/sheetsync/internal/metrics"
)

var (
	ErrDuplicateSlug = errors.New("duplicate metric slug")
	ErrSinkWrite     = errors.New("cannot store metrics")
)

// Stats summarizes a synchronization run
type Stats struct {
	Indexed    int // rows of the index table
	Skipped    int // rows without gid
	Synced     int // metrics in the document
	Duplicates int // rows replacing an earlier row with the same slug
	Points     int // observations kept
}

// Reaper is the struct responsible for fetching the spreadsheet and storing
// the normalized metrics to the sinks
type Reaper struct {
	*cmdopts.Options
	logger log.Logger
}

// NewReaper creates a new Reaper instance
func NewReaper(ctx context.Context, opts *cmdopts.Options) *Reaper {
	return &Reaper{
		Options: opts,
		logger:  log.GetLogger(ctx),
	}
}

func (r *Reaper) output() io.Writer {
	if r.OutputWriter == nil {
		return io.Discard
	}
	return r.OutputWriter
}

// Reap gathers all metrics and writes them to the sinks
func (r *Reaper) Reap(ctx context.Context) (stats Stats, err error) {
	doc, stats, err := r.Gather(ctx)
	if err != nil {
		return stats, err
	}
	if err = r.SinksWriter.Write(doc); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrSinkWrite, err)
	}
	r.logger.WithField("metrics", stats.Synced).
		WithField("points", stats.Points).
		WithField("skipped", stats.Skipped).
		Info("metrics synchronized")
	return stats, nil
}

// Gather loads the index and every metric series it references. Metrics are
// processed sequentially in index order, the first error aborts the run.
func (r *Reaper) Gather(ctx context.Context) (doc *metrics.Document, stats Stats, err error) {
	index, err := r.Fetcher.Fetch(ctx, r.Sources.IndexGID)
	if err != nil {
		return nil, stats, err
	}
	stats.Indexed = len(index.Rows)
	r.logger.WithField("rows", stats.Indexed).Debug("index loaded")

	doc = metrics.NewDocument()
	for _, row := range index.Rows {
		if err = ctx.Err(); err != nil {
			return nil, stats, err
		}
		d := metrics.NewDescriptor(index.Header, row)
		if !d.Included() {
			stats.Skipped++
			continue
		}
		l := r.logger.WithField("slug", d.Slug)
		if _, exists := doc.Get(d.Slug); exists {
			if r.Sinks.OnDuplicate == "error" {
				return nil, stats, fmt.Errorf("%w: %s", ErrDuplicateSlug, d.Slug)
			}
			l.Warning("duplicate slug, the later index row replaces the earlier one")
			stats.Duplicates++
		}
		fmt.Fprintln(r.output(), d.Slug)
		series, err := r.Fetcher.Fetch(ctx, d.GID)
		if err != nil {
			return nil, stats, err
		}
		if err = d.Normalize(series.Rows, r.Sources.FirstYear); err != nil {
			return nil, stats, err
		}
		l.WithField("points", len(d.Data)).Debug("metric gathered")
		doc.Set(d)
	}
	stats.Synced = doc.Len()
	stats.Points = doc.Points()
	return doc, stats, nil
}
