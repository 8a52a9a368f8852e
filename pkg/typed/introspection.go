package typed

import (
	"github.com/aretw0/introspection"
)

// LoaderState exposes the loader's configuration and counters.
type LoaderState struct {
	Type         string   `json:"type"`
	ObjectName   string   `json:"object_name"`
	OutputFormat string   `json:"output_format"`
	Extensions   []string `json:"extensions"`
	Ignore       []string `json:"ignore,omitempty"`
	Loads        int64    `json:"loads"`
	Failures     int64    `json:"failures"`
	Filesystem   string   `json:"filesystem"`
}

// State implements introspection.Introspectable.
func (l *Loader[T]) State() any {
	opts := l.builder.Options()

	fsType := "filesystem"
	if comp, ok := opts.FS.(introspection.Component); ok {
		fsType = comp.ComponentType()
	}

	return LoaderState{
		Type:         l.typ.String(),
		ObjectName:   opts.ObjectName,
		OutputFormat: string(opts.OutputFormat),
		Extensions:   l.builder.Registry().MarkerExtensions(),
		Ignore:       opts.Ignore,
		Loads:        l.loads.Load(),
		Failures:     l.failed.Load(),
		Filesystem:   fsType,
	}
}

// ComponentType implements introspection.Component.
func (l *Loader[T]) ComponentType() string {
	return "loader"
}

var _ introspection.Introspectable = (*Loader[struct{}])(nil)
var _ introspection.Component = (*Loader[struct{}])(nil)
