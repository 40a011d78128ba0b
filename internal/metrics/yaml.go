package metrics

import "gopkg.in/yaml.v3"

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func appendPair(node *yaml.Node, key string, value any) error {
	k, v := new(yaml.Node), new(yaml.Node)
	if err := k.Encode(key); err != nil {
		return err
	}
	if err := v.Encode(value); err != nil {
		return err
	}
	node.Content = append(node.Content, k, v)
	return nil
}

// MarshalYAML renders the descriptor as a mapping in column order
func (d *Descriptor) MarshalYAML() (any, error) {
	node := mappingNode()
	for _, k := range d.keys() {
		if err := appendPair(node, k, d.value(k)); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// MarshalYAML renders the document as a mapping in insertion order
func (doc *Document) MarshalYAML() (any, error) {
	node := mappingNode()
	for slug, d := range doc.All() {
		if err := appendPair(node, slug, d); err != nil {
			return nil, err
		}
	}
	return node, nil
}
