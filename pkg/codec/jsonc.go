package codec

import (
	"fmt"

	"github.com/tidwall/jsonc"
)

// JSONCCodec reads JSON extended with // line comments, /* block
// comments */ and trailing commas. Encoding produces plain JSON.
type JSONCCodec struct {
	JSONCodec
}

// JSONC creates a JSONC codec, usually registered under ".jsonc".
func JSONC() *JSONCCodec {
	return &JSONCCodec{}
}

func (c *JSONCCodec) Decode(doc Document, v any) error {
	stripped := jsonc.ToJSON(doc.Data)
	if err := c.JSONCodec.Decode(Document{Path: doc.Path, Data: stripped, Options: doc.Options}, v); err != nil {
		return fmt.Errorf("jsonc: %w", err)
	}
	return nil
}
