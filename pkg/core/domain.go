// Package core holds the vocabulary shared by every compose package:
// location kinds, output formats, the filesystem contract and the error
// taxonomy.
package core

// Kind classifies a location on the filesystem.
type Kind int

const (
	KindAbsent Kind = iota
	KindFile
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "absent"
	}
}

// Format selects the single-document encoding used when serializing.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Extension returns the canonical file extension of the format.
func (f Format) Extension() string {
	return "." + string(f)
}

// DefaultObjectName is the stem of a composite's own marker document
// when neither the type nor the options say otherwise.
const DefaultObjectName = "object"
