package metrics

import (
	"iter"
	"slices"
)

// Document is the slug keyed output of a run. Iteration follows insertion
// order; replacing a slug keeps its original position.
type Document struct {
	slugs []string
	items map[string]*Descriptor
}

func NewDocument() *Document {
	return &Document{items: make(map[string]*Descriptor)}
}

// Set stores d under its slug and reports whether an earlier descriptor
// with the same slug was replaced.
func (doc *Document) Set(d *Descriptor) (replaced bool) {
	if _, replaced = doc.items[d.Slug]; !replaced {
		doc.slugs = append(doc.slugs, d.Slug)
	}
	doc.items[d.Slug] = d
	return
}

func (doc *Document) Get(slug string) (d *Descriptor, ok bool) {
	d, ok = doc.items[slug]
	return
}

func (doc *Document) Len() int {
	return len(doc.slugs)
}

// Slugs returns a copy of the keys in insertion order
func (doc *Document) Slugs() []string {
	return slices.Clone(doc.slugs)
}

// All iterates over descriptors in insertion order
func (doc *Document) All() iter.Seq2[string, *Descriptor] {
	return func(yield func(string, *Descriptor) bool) {
		for _, slug := range doc.slugs {
			if !yield(slug, doc.items[slug]) {
				return
			}
		}
	}
}

// Points returns the total number of data points in the document
func (doc *Document) Points() (n int) {
	for _, d := range doc.items {
		n += len(d.Data)
	}
	return
}
