package codec

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles reading and writing YAML files.
type YAMLCodec struct {
	// KnownFields rejects mapping keys with no matching struct field.
	KnownFields bool
}

// YAML creates the default YAML codec.
func YAML() *YAMLCodec {
	return &YAMLCodec{}
}

func (c *YAMLCodec) Decode(doc Document, v any) error {
	if isBlank(doc.Data) {
		return ErrEmptyDocument
	}

	var node yaml.Node
	if err := yaml.Unmarshal(doc.Data, &node); err != nil {
		return fmt.Errorf("invalid yaml: %w", err)
	}
	if isNullNode(&node) {
		return ErrEmptyDocument
	}

	decoder := yaml.NewDecoder(bytes.NewReader(doc.Data))
	decoder.KnownFields(c.KnownFields)
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("invalid yaml: %w", err)
	}
	return nil
}

func (c *YAMLCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isNullNode(n *yaml.Node) bool {
	if n.Kind == 0 {
		return true
	}
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return true
		}
		n = n.Content[0]
	}
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}
