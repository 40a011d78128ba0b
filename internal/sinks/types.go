package sinks

import "github.com/sheetsync/sheetsync/internal/metrics"

// Writer is an interface that stores the synchronized metrics document.
// Every call replaces the previously written content.
type Writer interface {
	Write(doc *metrics.Document) error
}
