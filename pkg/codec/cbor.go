package codec

import (
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// CBORCodec reads and writes CBOR documents.
//
// Encoding uses Core Deterministic Encoding (sorted map keys, smallest
// integer encoding) so the same value always produces the same bytes.
// Decoding into interface values produces map[string]any rather than
// CBOR's default map[interface{}]interface{}.
type CBORCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

// CBOR creates a CBOR codec, usually registered under ".cbor".
func CBOR() (*CBORCodec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("cbor encoder: %w", err)
	}
	dec, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		return nil, fmt.Errorf("cbor decoder: %w", err)
	}
	return &CBORCodec{enc: enc, dec: dec}, nil
}

func (c *CBORCodec) Decode(doc Document, v any) error {
	if len(doc.Data) == 0 {
		return ErrEmptyDocument
	}
	// A lone CBOR null (0xf6) or undefined (0xf7).
	if len(doc.Data) == 1 && (doc.Data[0] == 0xf6 || doc.Data[0] == 0xf7) {
		return ErrEmptyDocument
	}
	if err := c.dec.Unmarshal(doc.Data, v); err != nil {
		return fmt.Errorf("invalid cbor: %w", err)
	}
	return nil
}

func (c *CBORCodec) Encode(v any) ([]byte, error) {
	return c.enc.Marshal(v)
}
