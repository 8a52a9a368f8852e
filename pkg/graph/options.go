package graph

import (
	"log/slog"

	"github.com/aretw0/compose/pkg/adapters/fs"
	"github.com/aretw0/compose/pkg/codec"
	"github.com/aretw0/compose/pkg/core"
	"github.com/aretw0/compose/pkg/schema"
)

// Options configures a load. They are read-only once a load begins.
type Options struct {
	// ObjectName is the stem of a composite's own marker document, used
	// when the type does not override it. Defaults to "object".
	ObjectName string
	// OutputFormat selects the document format used by Serialize.
	OutputFormat core.Format
	// NewJSON and NewYAML replace the built-in codecs when set.
	NewJSON func() codec.Codec
	NewYAML func() codec.Codec
	// Codecs holds custom codecs in registration order.
	Codecs *codec.Set
	// Ignore lists doublestar patterns; collection entries whose file
	// name matches any of them are skipped.
	Ignore []string

	FS     core.FileSystem
	Logger *slog.Logger
	Schema *schema.Cache
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		ObjectName:   core.DefaultObjectName,
		OutputFormat: core.FormatJSON,
	}
}

func (o Options) withDefaults() Options {
	if o.ObjectName == "" {
		o.ObjectName = core.DefaultObjectName
	}
	if o.OutputFormat == "" {
		o.OutputFormat = core.FormatJSON
	}
	if o.FS == nil {
		o.FS = fs.OS{}
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.Schema == nil {
		o.Schema = schema.Default()
	}
	return o
}

// Registry builds the codec registry described by the options.
func (o Options) Registry() *codec.Registry {
	return codec.NewRegistry(o.NewJSON, o.NewYAML, o.Codecs)
}
