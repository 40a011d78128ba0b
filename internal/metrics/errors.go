package metrics

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField = errors.New("field is missing")
	ErrShortPeriod  = errors.New("period must start with a 4-digit year")
	ErrNotFinite    = errors.New("value is not a finite number")
)

// ParseError is returned for any row or field that cannot be coerced.
// One ParseError aborts the whole run.
type ParseError struct {
	Slug  string
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("metric %q: cannot parse %s %q: %v", e.Slug, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(slug, field, value string, err error) *ParseError {
	return &ParseError{Slug: slug, Field: field, Value: value, Err: err}
}
