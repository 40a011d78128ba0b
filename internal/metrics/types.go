package metrics

import (
	"slices"
	"sort"
)

// FirstYear is the default first year of observations kept in a series
const FirstYear = 2000

// Column names with special meaning in the index and series tables
const (
	FieldSlug     = "slug"
	FieldGID      = "gid"
	FieldMin      = "min"
	FieldMax      = "max"
	FieldTicks    = "ticks"
	FieldShowPlus = "show_plus"
	FieldShowZero = "show_zero"
	FieldData     = "data"

	FieldPeriod = "period"
	FieldValue  = "value"
)

// normalizedFields are rendered with typed values instead of raw strings
var normalizedFields = []string{FieldMin, FieldMax, FieldTicks, FieldShowPlus, FieldShowZero, FieldData}

type (
	// Row is a single record of a header delimited table
	Row = map[string]string

	// DataPoint is one observation of a metric's time series
	DataPoint struct {
		Period string  `json:"period" yaml:"period"`
		Value  float64 `json:"value" yaml:"value"`
	}

	// Descriptor is one metric of the index table. Columns not known to
	// the normalizer are carried through unchanged in Raw.
	Descriptor struct {
		Slug     string
		GID      string
		Min      float64
		Max      float64
		Ticks    []float64 // nil when the metric has no ticks
		ShowPlus bool
		ShowZero bool
		Data     []DataPoint

		Columns []string // header order of the source row
		Raw     Row
	}
)

// NewDescriptor wraps an index row, header lists the column order of the
// source table and may be empty.
func NewDescriptor(header []string, row Row) *Descriptor {
	return &Descriptor{
		Slug:    row[FieldSlug],
		GID:     row[FieldGID],
		Data:    []DataPoint{},
		Columns: slices.Clone(header),
		Raw:     row,
	}
}

// Included reports whether the descriptor points at a series table
func (d *Descriptor) Included() bool {
	return d.GID != ""
}

// keys returns the output field order: source columns first, then raw
// fields missing from the header, then normalized fields not yet listed.
func (d *Descriptor) keys() []string {
	keys := make([]string, 0, len(d.Columns)+len(normalizedFields))
	seen := make(map[string]bool, cap(keys))
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	for _, k := range d.Columns {
		add(k)
	}
	extra := make([]string, 0)
	for k := range d.Raw {
		if !seen[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		add(k)
	}
	for _, k := range normalizedFields {
		add(k)
	}
	return keys
}

func (d *Descriptor) value(key string) any {
	switch key {
	case FieldMin:
		return d.Min
	case FieldMax:
		return d.Max
	case FieldTicks:
		if d.Ticks == nil {
			return nil
		}
		return d.Ticks
	case FieldShowPlus:
		return d.ShowPlus
	case FieldShowZero:
		return d.ShowZero
	case FieldData:
		if d.Data == nil {
			return []DataPoint{}
		}
		return d.Data
	default:
		return d.Raw[key]
	}
}
