// Package codec maps file extensions to the formats that turn document
// bytes into typed Go values.
//
// Two codecs are built in (".json" and ".yaml"); any number of custom
// codecs can be registered under arbitrary extensions. A Registry is a
// pure mapping: it never touches the filesystem.
package codec

import (
	"bytes"
	"errors"
	"reflect"
	"strings"

	"github.com/aretw0/compose/pkg/core"
)

// ErrEmptyDocument is returned by Decode when the document holds no
// value at all (empty file, explicit null).
var ErrEmptyDocument = errors.New("empty document")

// ErrEncodeUnsupported is returned by codecs that only decode.
var ErrEncodeUnsupported = errors.New("codec does not support encoding")

// Document is a file handed to a codec: its location, its raw bytes
// and the load it belongs to. Options is nil when a codec is used
// outside a load.
type Document struct {
	Path    string
	Data    []byte
	Options LoadOptions
}

// LoadOptions exposes the active load to a codec, so that a plugin can
// honor the same object name and codecs, or build a nested location
// with the same configuration.
type LoadOptions interface {
	ObjectName() string
	OutputFormat() core.Format
	Registry() *Registry
	FileSystem() core.FileSystem
	// Build resolves path into a value of type t with these options.
	Build(t reflect.Type, path string) (reflect.Value, error)
}

// Codec reads and writes a specific file format.
type Codec interface {
	// Decode fills v, a non-nil pointer, from doc.
	// It must fail rather than leave v partially built.
	Decode(doc Document, v any) error
	// Encode converts v to the format's bytes.
	Encode(v any) ([]byte, error)
}

// NormalizeExt returns ext with exactly one leading dot.
func NormalizeExt(ext string) string {
	if ext == "" {
		return ""
	}
	return "." + strings.TrimLeft(ext, ".")
}

func isBlank(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0
}
