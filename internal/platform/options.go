package platform

import (
	"log/slog"

	"github.com/aretw0/compose/pkg/codec"
	"github.com/aretw0/compose/pkg/core"
	"github.com/aretw0/compose/pkg/graph"
	"github.com/aretw0/compose/pkg/schema"
)

// options holds the configuration collected from Option values before
// it is turned into graph.Options.
type options struct {
	graph  graph.Options
	codecs *codec.Set
	strict bool
}

// Option defines a functional option for configuring a load.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		graph:  graph.DefaultOptions(),
		codecs: codec.NewSet(),
	}
}

// Resolve applies opts over the defaults.
func Resolve(opts ...Option) graph.Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	g := o.graph
	if o.codecs.Len() > 0 {
		g.Codecs = o.codecs
	}
	if o.strict && g.NewJSON == nil {
		g.NewJSON = func() codec.Codec { return &codec.JSONCodec{Strict: true} }
	}
	if o.strict && g.NewYAML == nil {
		g.NewYAML = func() codec.Codec { return &codec.YAMLCodec{KnownFields: true} }
	}
	return g
}

// WithObjectName sets the stem of a composite's own marker document.
// Types implementing schema.ObjectNamer keep their own name.
func WithObjectName(name string) Option {
	return func(o *options) {
		o.graph.ObjectName = name
	}
}

// WithOutputFormat selects the format used by Serialize.
func WithOutputFormat(format core.Format) Option {
	return func(o *options) {
		o.graph.OutputFormat = format
	}
}

// WithCodec registers a custom codec for ext. Custom codecs are tried
// after the built-in ones, in registration order; registering the same
// extension again replaces the codec in place.
func WithCodec(ext string, c codec.Codec) Option {
	return func(o *options) {
		o.codecs.Add(ext, c)
	}
}

// WithJSONFactory replaces the built-in JSON codec.
func WithJSONFactory(fn func() codec.Codec) Option {
	return func(o *options) {
		o.graph.NewJSON = fn
	}
}

// WithYAMLFactory replaces the built-in YAML codec.
func WithYAMLFactory(fn func() codec.Codec) Option {
	return func(o *options) {
		o.graph.NewYAML = fn
	}
}

// WithStrict makes the built-in codecs strict: JSON numbers held in
// interface values decode as json.Number and YAML rejects unknown keys.
// Explicit factories take precedence.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithFileSystem reads the tree through fsys instead of the OS.
func WithFileSystem(fsys core.FileSystem) Option {
	return func(o *options) {
		o.graph.FS = fsys
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.graph.Logger = logger
	}
}

// WithIgnore adds doublestar patterns; collection entries whose file
// name matches one are skipped.
func WithIgnore(patterns ...string) Option {
	return func(o *options) {
		o.graph.Ignore = append(o.graph.Ignore, patterns...)
	}
}

// WithSchema uses c for type descriptors instead of the process-wide
// cache. Useful with descriptors registered through c.Register.
func WithSchema(c *schema.Cache) Option {
	return func(o *options) {
		o.graph.Schema = c
	}
}
