// Package sinks provides functionality to store synchronized metrics in different ways.
//
// At the moment we provide sink connectors for
//   - plain JSON files, the format consumed by the web graphics,
//   - YAML files,
//   - PostgreSQL and flavours,
//   - Prometheus textfile collector files,
//   - bbolt key/value database files.
//
// To ensure the simultaneous storage of data in several storages, the `MultiWriter` class is implemented.
package sinks
