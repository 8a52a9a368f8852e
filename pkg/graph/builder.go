// Package graph builds typed object graphs from directory trees.
//
// A location is either a leaf document, decoded directly by the codec
// matching its extension, or a directory holding a composite value: an
// optional marker document named after the object base name, plus one
// sibling file or subdirectory per externally stored property.
//
// Loading is one-way. Build reads the folder convention; Serialize
// writes a single flattened document and never splits a value back
// into files.
package graph

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"reflect"

	"github.com/aretw0/compose/pkg/codec"
	"github.com/aretw0/compose/pkg/core"
	"github.com/aretw0/compose/pkg/schema"
	"github.com/bmatcuk/doublestar/v4"
)

// Builder resolves locations into values. It keeps no state between
// calls, so one Builder may serve concurrent loads.
type Builder struct {
	opts     Options
	fsys     core.FileSystem
	registry *codec.Registry
	schemas  *schema.Cache
	logger   *slog.Logger
}

// NewBuilder validates opts and returns a Builder.
func NewBuilder(opts Options) (*Builder, error) {
	opts = opts.withDefaults()
	for _, pattern := range opts.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	return &Builder{
		opts:     opts,
		fsys:     opts.FS,
		registry: opts.Registry(),
		schemas:  opts.Schema,
		logger:   opts.Logger,
	}, nil
}

// Registry returns the codec registry used by the builder.
func (b *Builder) Registry() *codec.Registry {
	return b.registry
}

// Options returns the effective options, defaults applied.
func (b *Builder) Options() Options {
	return b.opts
}

// Build produces a value of type t from the file or directory at path.
//
// Files are decoded by the codec matching their extension. A document
// that decodes to nothing yields the zero value of t. Directories are
// instantiated and populated as described in the package documentation.
func (b *Builder) Build(t reflect.Type, path string) (reflect.Value, error) {
	switch b.fsys.Stat(path) {
	case core.KindFile:
		v, _, err := b.decodeFile(t, path)
		return v, err
	case core.KindDirectory:
		return b.buildDirectory(t, path)
	default:
		return reflect.Value{}, core.NewError(core.ErrNotFound, path, t.String(), nil)
	}
}

// decodeFile decodes the document at path into a fresh t. The boolean
// reports a document that decoded to nothing, in which case the zero
// value is returned.
func (b *Builder) decodeFile(t reflect.Type, path string) (reflect.Value, bool, error) {
	c, ok := b.registry.Resolve(filepath.Ext(path))
	if !ok {
		return reflect.Value{}, false, core.NewError(core.ErrUnsupportedFormat, path, t.String(), nil)
	}

	data, err := b.fsys.ReadFile(path)
	if err != nil {
		return reflect.Value{}, false, core.NewError(core.ErrDecode, path, t.String(), err)
	}

	ptr := reflect.New(t)
	doc := codec.Document{Path: path, Data: data, Options: loadOptions{b}}
	if err := c.Decode(doc, ptr.Interface()); err != nil {
		if errors.Is(err, codec.ErrEmptyDocument) {
			return reflect.Zero(t), true, nil
		}
		return reflect.Value{}, false, core.NewError(core.ErrDecode, path, t.String(), err)
	}

	v := ptr.Elem()
	if isNil(v) {
		return reflect.Zero(t), true, nil
	}
	return v, false, nil
}

func (b *Builder) buildDirectory(t reflect.Type, dir string) (reflect.Value, error) {
	base := t
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}

	desc, err := b.schemas.Of(base)
	if err != nil {
		return reflect.Value{}, core.NewError(core.ErrConstruction, dir, base.String(), err)
	}
	if !desc.Constructible {
		return reflect.Value{}, core.NewError(core.ErrConstruction, dir, base.String(),
			fmt.Errorf("a directory can only populate a struct or map, not a %s", base.Kind()))
	}
	inst := desc.New()

	objectName := desc.BaseName(b.opts.ObjectName)
	if p, ok := desc.Collision(objectName); ok {
		return reflect.Value{}, core.NewError(core.ErrNamingCollision, dir, base.String(),
			fmt.Errorf("object name %q matches property %s; implement schema.ObjectNamer to rename the object", objectName, p.Name))
	}

	// Every marker present replaces the instance outright; the last one wins.
	for _, ext := range b.registry.MarkerExtensions() {
		marker := b.fsys.Join(dir, objectName+ext)
		if b.fsys.Stat(marker) != core.KindFile {
			continue
		}

		b.logger.Debug("decoding marker", "path", marker, "type", base.String())
		v, empty, err := b.decodeFile(base, marker)
		if err != nil {
			return reflect.Value{}, err
		}
		if empty {
			return reflect.Value{}, core.NewError(core.ErrEmptyDecode, marker, base.String(), nil)
		}
		inst.Set(v)
	}

	if base.Kind() == reflect.Struct {
		for _, p := range desc.External() {
			if !p.Writable {
				continue
			}
			if err := b.resolveProperty(inst, p, dir, objectName); err != nil {
				return reflect.Value{}, err
			}
		}
	}

	if t.Kind() == reflect.Pointer {
		return inst.Addr(), nil
	}
	return inst, nil
}

func (b *Builder) resolveProperty(inst reflect.Value, p schema.Property, dir, objectName string) error {
	field, ok := fieldByIndex(inst, p.Index)
	if !ok {
		return nil
	}

	sub := b.fsys.Join(dir, p.Name)
	if p.Collection || b.fsys.Stat(sub) == core.KindDirectory {
		b.logger.Debug("assembling collection", "property", p.Name, "path", sub)

		sink, err := NewSink(p.Type, field)
		if err != nil {
			return &core.PropertyError{Property: p.Name, Path: sub, Err: err}
		}
		if err := b.Assemble(p.Elem, sub, objectName, sink); err != nil {
			return &core.PropertyError{Property: p.Name, Path: sub, Err: err}
		}

		result := sink.Finalize()
		if !result.Type().AssignableTo(field.Type()) {
			return &core.PropertyError{Property: p.Name, Path: sub,
				Err: fmt.Errorf("%w: %s cannot hold %s", core.ErrCollectionIncompatible, field.Type(), result.Type())}
		}
		field.Set(result)
		return nil
	}

	for _, ext := range b.registry.MarkerExtensions() {
		file := b.fsys.Join(dir, p.Name+ext)
		if b.fsys.Stat(file) != core.KindFile {
			continue
		}

		b.logger.Debug("resolving property", "property", p.Name, "path", file)
		v, err := b.Build(p.Type, file)
		if err != nil {
			return &core.PropertyError{Property: p.Name, Path: file, Err: err}
		}
		field.Set(v)
	}
	return nil
}

// fieldByIndex walks index like reflect.Value.FieldByIndex, allocating
// nil embedded pointers on the way. It reports false when the path
// crosses an embedded pointer that cannot be set.
func fieldByIndex(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, false
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, v.CanSet()
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Slice:
		return v.IsNil()
	}
	return false
}
