package sources

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"unicode/utf8"
)

var ErrInvalidUTF8 = errors.New("sheet is not valid UTF-8")

var utf8BOM = []byte("\xef\xbb\xbf")

// ParseTable decodes UTF-8 CSV with a header row. Short rows lack the
// missing columns, surplus cells are ignored. An empty input is an empty table.
func ParseTable(data []byte) (t Table, err error) {
	if !utf8.Valid(data) {
		return t, ErrInvalidUTF8
	}
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.FieldsPerRecord = -1
	if t.Header, err = r.Read(); err != nil {
		if err == io.EOF {
			return Table{}, nil
		}
		return Table{}, err
	}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, err
		}
		row := make(Record, len(t.Header))
		for i, col := range t.Header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
