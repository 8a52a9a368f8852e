// Package typed puts a generic face on the graph builder: a Loader[T]
// returns *T and []T instead of reflect values.
package typed

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/aretw0/compose/pkg/codec"
	"github.com/aretw0/compose/pkg/core"
	"github.com/aretw0/compose/pkg/graph"
)

// Loader builds values of type T. It is safe for concurrent use.
type Loader[T any] struct {
	builder *graph.Builder
	typ     reflect.Type

	loads  atomic.Int64
	failed atomic.Int64
}

// NewLoader creates a loader for T configured by opts.
func NewLoader[T any](opts graph.Options) (*Loader[T], error) {
	b, err := graph.NewBuilder(opts)
	if err != nil {
		return nil, err
	}
	return &Loader[T]{builder: b, typ: reflect.TypeFor[T]()}, nil
}

// Builder returns the underlying graph builder.
func (l *Loader[T]) Builder() *graph.Builder {
	return l.builder
}

// Load builds a T from the file or directory at path.
func (l *Loader[T]) Load(path string) (*T, error) {
	v, err := l.builder.Build(l.typ, path)
	if err != nil {
		l.failed.Add(1)
		return nil, err
	}
	l.loads.Add(1)

	// v is a nil interface when T is an interface and the document is empty.
	out := reflect.New(l.typ)
	out.Elem().Set(v)
	return out.Interface().(*T), nil
}

// LoadExt resolves path the way a user usually names a document: the
// path itself when it is a file, then path with each built-in extension
// appended, then path as a directory.
func (l *Loader[T]) LoadExt(path string) (*T, error) {
	return l.Load(l.ResolveExt(path))
}

// ResolveExt returns the location LoadExt would build from.
func (l *Loader[T]) ResolveExt(path string) string {
	fsys := l.builder.Options().FS
	if fsys.Stat(path) == core.KindFile {
		return path
	}
	for _, ext := range []string{codec.ExtJSON, codec.ExtYAML} {
		if candidate := path + ext; fsys.Stat(candidate) == core.KindFile {
			return candidate
		}
	}
	return path
}

// LoadCollection builds one T per eligible document directly inside dir,
// in listing order. The configured object name is excluded, as are
// ignored and empty documents. A missing dir yields an empty slice.
func (l *Loader[T]) LoadCollection(dir string) ([]T, error) {
	sink := graph.NewSliceSink[T](nil)
	objectName := l.builder.Options().ObjectName
	if err := l.builder.Assemble(l.typ, dir, objectName, sink); err != nil {
		l.failed.Add(1)
		return nil, fmt.Errorf("load collection %s: %w", dir, err)
	}
	l.loads.Add(1)
	return sink.Items(), nil
}

// Serialize flattens v into the configured output format.
func (l *Loader[T]) Serialize(v *T) (string, error) {
	if v == nil {
		return "", fmt.Errorf("serialize %s: nil value", l.typ)
	}
	return graph.Serialize(*v, l.builder.Options())
}
