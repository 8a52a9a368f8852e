package compose

import (
	"context"
	"log/slog"

	"github.com/aretw0/compose/internal/platform"
	"github.com/aretw0/compose/pkg/codec"
	"github.com/aretw0/compose/pkg/core"
	"github.com/aretw0/compose/pkg/graph"
	"github.com/aretw0/compose/pkg/schema"
	"github.com/aretw0/compose/pkg/typed"
)

// --- Types ---

// Loader is a public alias for the typed loader.
type Loader[T any] = typed.Loader[T]

// Format selects the document format used by Serialize.
type Format = core.Format

const (
	JSON = core.FormatJSON
	YAML = core.FormatYAML
)

// --- Configuration ---

// Option defines a functional option for configuring a load.
type Option = platform.Option

// WithObjectName sets the stem of a folder's own marker document.
// Defaults to "object".
func WithObjectName(name string) Option {
	return platform.WithObjectName(name)
}

// WithOutputFormat selects the format written by Serialize.
func WithOutputFormat(format Format) Option {
	return platform.WithOutputFormat(format)
}

// WithCodec registers a codec for an extension such as ".toml".
func WithCodec(ext string, c codec.Codec) Option {
	return platform.WithCodec(ext, c)
}

// WithJSONFactory replaces the built-in JSON codec.
func WithJSONFactory(fn func() codec.Codec) Option {
	return platform.WithJSONFactory(fn)
}

// WithYAMLFactory replaces the built-in YAML codec.
func WithYAMLFactory(fn func() codec.Codec) Option {
	return platform.WithYAMLFactory(fn)
}

// WithStrict enables strict decoding in the built-in codecs.
func WithStrict(strict bool) Option {
	return platform.WithStrict(strict)
}

// WithFileSystem reads through fsys instead of the OS filesystem.
func WithFileSystem(fsys core.FileSystem) Option {
	return platform.WithFileSystem(fsys)
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithIgnore skips collection entries whose file name matches one of
// the doublestar patterns.
func WithIgnore(patterns ...string) Option {
	return platform.WithIgnore(patterns...)
}

// WithSchema uses a dedicated descriptor cache.
func WithSchema(c *schema.Cache) Option {
	return platform.WithSchema(c)
}

// --- Factory ---

// NewLoader creates a reusable loader for T.
func NewLoader[T any](opts ...Option) (*Loader[T], error) {
	return platform.NewLoader[T](opts...)
}

// NewBuilder creates an untyped graph builder.
func NewBuilder(opts ...Option) (*graph.Builder, error) {
	return platform.NewBuilder(opts...)
}

// --- Operations ---

// Load builds a T from the document or folder at path.
func Load[T any](path string, opts ...Option) (*T, error) {
	l, err := NewLoader[T](opts...)
	if err != nil {
		return nil, err
	}
	return l.Load(path)
}

// LoadExt is Load that also accepts path without its extension: it
// tries path, path.json and path.yaml as files, then path as a folder.
func LoadExt[T any](path string, opts ...Option) (*T, error) {
	l, err := NewLoader[T](opts...)
	if err != nil {
		return nil, err
	}
	return l.LoadExt(path)
}

// LoadCollection builds one T per document directly inside dir.
func LoadCollection[T any](dir string, opts ...Option) ([]T, error) {
	l, err := NewLoader[T](opts...)
	if err != nil {
		return nil, err
	}
	return l.LoadCollection(dir)
}

// Serialize writes v as a single document in the configured format.
func Serialize(v any, opts ...Option) (string, error) {
	return graph.Serialize(v, platform.Resolve(opts...))
}

// Watch loads path, then reloads it after every change until ctx is
// done, passing each result to fn.
func Watch[T any](ctx context.Context, path string, fn func(*T, error), opts ...Option) error {
	return platform.Watch(ctx, path, fn, opts...)
}

// --- Utils ---

// FindRoot looks upwards from startDir for the nearest folder holding a
// marker document.
func FindRoot(startDir string, opts ...Option) (string, error) {
	return platform.FindRoot(startDir, opts...)
}

// --- Errors ---

var (
	ErrNotFound               = core.ErrNotFound
	ErrUnsupportedFormat      = core.ErrUnsupportedFormat
	ErrDecode                 = core.ErrDecode
	ErrEmptyDecode            = core.ErrEmptyDecode
	ErrConstruction           = core.ErrConstruction
	ErrNamingCollision        = core.ErrNamingCollision
	ErrCollectionIncompatible = core.ErrCollectionIncompatible
)
