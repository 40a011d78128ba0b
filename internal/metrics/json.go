package metrics

import (
	"slices"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// marshal runs write on a pooled stream and returns a copy of its buffer
func marshal(write func(*jsoniter.Stream)) ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)
	write(stream)
	if stream.Error != nil {
		return nil, stream.Error
	}
	return slices.Clone(stream.Buffer()), nil
}

func (d *Descriptor) writeJSON(stream *jsoniter.Stream) {
	stream.WriteObjectStart()
	for i, k := range d.keys() {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(k)
		stream.WriteVal(d.value(k))
	}
	stream.WriteObjectEnd()
}

// MarshalJSON renders the descriptor as a JSON object in column order
func (d *Descriptor) MarshalJSON() ([]byte, error) {
	return marshal(d.writeJSON)
}

// MarshalJSON renders the document as a JSON object in insertion order
func (doc *Document) MarshalJSON() ([]byte, error) {
	return marshal(func(stream *jsoniter.Stream) {
		stream.WriteObjectStart()
		first := true
		for slug, d := range doc.All() {
			if !first {
				stream.WriteMore()
			}
			first = false
			stream.WriteObjectField(slug)
			d.writeJSON(stream)
		}
		stream.WriteObjectEnd()
	})
}
