package graph

import (
	"reflect"

	"github.com/aretw0/compose/pkg/codec"
	"github.com/aretw0/compose/pkg/core"
)

// loadOptions is the view of a builder handed to codecs with every
// document.
type loadOptions struct {
	b *Builder
}

var _ codec.LoadOptions = loadOptions{}

func (o loadOptions) ObjectName() string          { return o.b.opts.ObjectName }
func (o loadOptions) OutputFormat() core.Format   { return o.b.opts.OutputFormat }
func (o loadOptions) Registry() *codec.Registry   { return o.b.registry }
func (o loadOptions) FileSystem() core.FileSystem { return o.b.fsys }

func (o loadOptions) Build(t reflect.Type, path string) (reflect.Value, error) {
	return o.b.Build(t, path)
}
