package sinks

import (
	"context"
	"testing"

	"github.com/sheetsync/sheetsync/internal/log"
	"github.com/sheetsync/sheetsync/internal/metrics"
	"github.com/stretchr/testify/require"
)

var ctx = log.WithLogger(context.Background(), log.NewNoopLogger())

// newTestDocument returns a document with two metrics, "gdp" with two
// observations and "cpi" without any
func newTestDocument(t *testing.T) *metrics.Document {
	t.Helper()
	header := []string{"slug", "gid", "title", "min", "max", "ticks", "show_plus", "show_zero"}
	doc := metrics.NewDocument()

	gdp := metrics.NewDescriptor(header, metrics.Row{
		"slug": "gdp", "gid": "1", "title": "GDP", "min": "-5", "max": "5",
		"ticks": "-5;0;5", "show_plus": "TRUE", "show_zero": "TRUE",
	})
	require.NoError(t, gdp.Normalize([]metrics.Row{
		{"period": "1999Q4", "value": "1.0"},
		{"period": "2001Q1", "value": "2.5"},
		{"period": "2001Q2", "value": "-0.5"},
	}, metrics.FirstYear))
	doc.Set(gdp)

	cpi := metrics.NewDescriptor(header, metrics.Row{
		"slug": "cpi", "gid": "2", "title": "CPI", "min": "0", "max": "10",
	})
	require.NoError(t, cpi.Normalize(nil, metrics.FirstYear))
	doc.Set(cpi)
	return doc
}
