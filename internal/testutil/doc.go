// Package testutil provides testing utilities for sheetsync tests.
//
// This package contains mock implementations, test setup helpers, and constants
// used across test files. It should only be imported by test files (*_test.go)
// and will not be included in production binaries.
//
// The package includes:
//   - an in-memory spreadsheet implementing sources.Fetcher
//   - PostgreSQL container setup for integration tests
package testutil
