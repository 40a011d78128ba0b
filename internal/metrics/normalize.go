package metrics

import (
	"math"
	"strconv"
	"strings"
)

// ParseYear returns the year encoded in the first four characters of period
func ParseYear(period string) (int, error) {
	if len(period) < 4 {
		return 0, ErrShortPeriod
	}
	return strconv.Atoi(period[:4])
}

// ParseFloat parses a decimal number ignoring surrounding whitespace.
// NaN and infinities are rejected, JSON has no representation for them.
func ParseFloat(raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotFinite
	}
	return f, nil
}

// ParseTicks splits a semicolon separated list of numbers.
// An empty string means no ticks and yields nil.
func ParseTicks(raw string) (ticks []float64, err error) {
	if raw == "" {
		return nil, nil
	}
	tokens := strings.Split(raw, ";")
	ticks = make([]float64, 0, len(tokens))
	for _, token := range tokens {
		f, err := ParseFloat(token)
		if err != nil {
			return nil, err
		}
		ticks = append(ticks, f)
	}
	return ticks, nil
}

// ParseFlag is true only for the exact spreadsheet literal TRUE
func ParseFlag(raw string) bool {
	return raw == "TRUE"
}

// FilterSeries converts series rows into data points, dropping the rows
// whose period year is before firstYear. Source order is preserved.
func FilterSeries(slug string, rows []Row, firstYear int) ([]DataPoint, error) {
	data := make([]DataPoint, 0, len(rows))
	for _, row := range rows {
		period, ok := row[FieldPeriod]
		if !ok {
			return nil, newParseError(slug, FieldPeriod, "", ErrMissingField)
		}
		year, err := ParseYear(period)
		if err != nil {
			return nil, newParseError(slug, FieldPeriod, period, err)
		}
		if year < firstYear {
			continue
		}
		raw, ok := row[FieldValue]
		if !ok {
			return nil, newParseError(slug, FieldValue, "", ErrMissingField)
		}
		value, err := ParseFloat(raw)
		if err != nil {
			return nil, newParseError(slug, FieldValue, raw, err)
		}
		data = append(data, DataPoint{Period: period, Value: value})
	}
	return data, nil
}

func (d *Descriptor) parseNumber(field string) (float64, error) {
	raw, ok := d.Raw[field]
	if !ok {
		return 0, newParseError(d.Slug, field, "", ErrMissingField)
	}
	f, err := ParseFloat(raw)
	if err != nil {
		return 0, newParseError(d.Slug, field, raw, err)
	}
	return f, nil
}

// Normalize attaches the filtered series and coerces the typed fields.
// The descriptor is left unchanged when an error is returned.
func (d *Descriptor) Normalize(series []Row, firstYear int) error {
	data, err := FilterSeries(d.Slug, series, firstYear)
	if err != nil {
		return err
	}
	minValue, err := d.parseNumber(FieldMin)
	if err != nil {
		return err
	}
	maxValue, err := d.parseNumber(FieldMax)
	if err != nil {
		return err
	}
	ticks, err := ParseTicks(d.Raw[FieldTicks])
	if err != nil {
		return newParseError(d.Slug, FieldTicks, d.Raw[FieldTicks], err)
	}
	d.Data = data
	d.Min, d.Max = minValue, maxValue
	d.Ticks = ticks
	d.ShowPlus = ParseFlag(d.Raw[FieldShowPlus])
	d.ShowZero = ParseFlag(d.Raw[FieldShowZero])
	return nil
}
