// # Metrics
//
// Code in this folder turns raw spreadsheet rows into metric descriptors.
// A descriptor is an open record: every column of the index row is kept,
// while a fixed set of columns is coerced to typed values and the metric's
// time series is attached as `data`.
//
// # Content
//
//   - `types.go` defines descriptors, data points and field names.
//   - `normalize.go` implements the field coercion and series filtering.
//   - `errors.go` defines ParseError, the single failure type of this package.
//   - `document.go` keeps the slug keyed, insertion ordered output mapping.
//   - `yaml.go` renders descriptors and documents as YAML.
package metrics
