package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSONCodec handles reading and writing JSON files.
type JSONCodec struct {
	// Strict decodes numbers held in interface values as json.Number to
	// avoid precision loss on large integers.
	Strict bool
	// DisallowUnknownFields rejects object keys with no matching field.
	DisallowUnknownFields bool
}

// JSON creates the default JSON codec.
func JSON() *JSONCodec {
	return &JSONCodec{}
}

func (c *JSONCodec) Decode(doc Document, v any) error {
	trimmed := bytes.TrimSpace(doc.Data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ErrEmptyDocument
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	if c.Strict {
		decoder.UseNumber()
	}
	if c.DisallowUnknownFields {
		decoder.DisallowUnknownFields()
	}
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

func (c *JSONCodec) Encode(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
