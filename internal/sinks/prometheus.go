package sinks

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sheetsync/sheetsync/internal/log"
	"github.com/sheetsync/sheetsync/internal/metrics"
)

const promNamespace = "sheetsync"

// PrometheusWriter is a sink that exposes the synchronized metrics to Prometheus
// through a file in the node_exporter textfile collector format. It reports the
// last observation and the number of observations of every metric.
type PrometheusWriter struct {
	ctx   context.Context
	fname string
}

func NewPrometheusWriter(ctx context.Context, fname string) (*PrometheusWriter, error) {
	l := log.GetLogger(ctx).WithField("sink", "promfile").WithField("file", fname)
	return &PrometheusWriter{ctx: log.WithLogger(ctx, l), fname: fname}, nil
}

// Registry collects the document into a fresh registry
func (promw *PrometheusWriter) Registry(doc *metrics.Document) (*prometheus.Registry, error) {
	lastValue := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: promNamespace,
		Name:      "metric_last_value",
		Help:      "Last observation of the metric series in sheet order",
	}, []string{"slug", "period"})
	points := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: promNamespace,
		Name:      "metric_points",
		Help:      "Number of observations kept for the metric",
	}, []string{"slug"})
	total := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: promNamespace,
		Name:      "metrics_total",
		Help:      "Number of metrics in the last synchronization",
	})
	lastSync := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: promNamespace,
		Name:      "last_sync_timestamp_seconds",
		Help:      "Unix time of the last successful synchronization",
	})

	reg := prometheus.NewRegistry()
	for _, c := range []prometheus.Collector{lastValue, points, total, lastSync} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	for slug, d := range doc.All() {
		points.WithLabelValues(slug).Set(float64(len(d.Data)))
		if n := len(d.Data); n > 0 {
			last := d.Data[n-1]
			lastValue.WithLabelValues(slug, last.Period).Set(last.Value)
		}
	}
	total.Set(float64(doc.Len()))
	lastSync.Set(float64(time.Now().Unix()))
	return reg, nil
}

func (promw *PrometheusWriter) Write(doc *metrics.Document) error {
	if promw.ctx.Err() != nil {
		return promw.ctx.Err()
	}
	reg, err := promw.Registry(doc)
	if err != nil {
		return err
	}
	if err = prometheus.WriteToTextfile(promw.fname, reg); err != nil {
		return err
	}
	log.GetLogger(promw.ctx).WithField("metrics", doc.Len()).Debug("textfile written")
	return nil
}
