// Package sources retrieves header delimited tables from the spreadsheet.
//
// Every sheet of the spreadsheet is addressed by its gid. Sheets can be read
// from two places:
//   - the CSV export endpoint of a published spreadsheet (`http.go`),
//   - a local folder holding one `<gid>.csv` file per sheet (`file.go`),
//     useful for fixtures and offline runs.
//
// `csv.go` decodes the downloaded bytes, `types.go` defines the Fetcher
// interface and picks the implementation for a configured source.
package sources
