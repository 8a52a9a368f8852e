// Package schema derives the metadata the graph builder consumes from Go
// types: whether a type can be instantiated, its declared properties,
// which of them are stored outside the parent's own document, and the
// type's object base name override.
//
// Metadata is declared with struct tags:
//
//	type Project struct {
//		Name     string    `yaml:"name"`
//		Services []Service `yaml:"-" compose:"external,collection"`
//		Settings Settings  `yaml:"-" compose:"external"`
//		Notes    []Note    `yaml:"-" compose:"external,name=notes"`
//	}
//
// and the object base name is overridden by implementing ObjectNamer.
package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// TagName is the struct tag key read by Derive.
const TagName = "compose"

// ObjectNamer is implemented by types that store their own marker
// document under a stem other than the configured default.
type ObjectNamer interface {
	ComposeObjectName() string
}

var objectNamerType = reflect.TypeOf((*ObjectNamer)(nil)).Elem()

// Property describes one field of a struct type.
type Property struct {
	// Name is the file or subdirectory stem, used verbatim.
	Name string
	// Field is the Go field name.
	Field string
	Index []int
	Type  reflect.Type
	// Elem is the element type when Type is a slice, nil otherwise.
	Elem reflect.Type
	// External marks a value resolved from a sibling file or subdirectory
	// instead of the parent's marker document.
	External bool
	// Collection forces the subdirectory collection path even when no
	// subdirectory exists.
	Collection bool
	Writable   bool
}

// Descriptor describes a target type. It is immutable once derived.
type Descriptor struct {
	// Type is the described type as requested, possibly a pointer.
	Type reflect.Type
	// Constructible reports whether a zero value can be instantiated and
	// populated (structs and maps, or pointers to them).
	Constructible bool
	// ObjectName overrides the default object base name when non-empty.
	ObjectName string
	Properties []Property
}

// Derive builds the descriptor of t from its struct tags. Derivation is
// pure: the same type always yields an equal descriptor.
func Derive(t reflect.Type) (*Descriptor, error) {
	base := t
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}

	d := &Descriptor{
		Type:          t,
		Constructible: base.Kind() == reflect.Struct || base.Kind() == reflect.Map,
	}

	if reflect.PointerTo(base).Implements(objectNamerType) {
		namer := reflect.New(base).Interface().(ObjectNamer)
		d.ObjectName = namer.ComposeObjectName()
	}

	if base.Kind() != reflect.Struct {
		return d, nil
	}

	for _, f := range reflect.VisibleFields(base) {
		if f.Anonymous {
			continue
		}

		p := Property{
			Name:     f.Name,
			Field:    f.Name,
			Index:    f.Index,
			Type:     f.Type,
			Writable: f.IsExported(),
		}
		if f.Type.Kind() == reflect.Slice {
			p.Elem = f.Type.Elem()
		}

		tag, ok := f.Tag.Lookup(TagName)
		if ok {
			if tag == "-" {
				continue
			}
			if err := parseTag(tag, &p); err != nil {
				return nil, fmt.Errorf("%s.%s: %w", base, f.Name, err)
			}
		}

		d.Properties = append(d.Properties, p)
	}

	return d, nil
}

func parseTag(tag string, p *Property) error {
	for _, opt := range strings.Split(tag, ",") {
		opt = strings.TrimSpace(opt)
		switch {
		case opt == "":
		case opt == "external":
			p.External = true
		case opt == "collection":
			p.External = true
			p.Collection = true
		case strings.HasPrefix(opt, "name="):
			name := strings.TrimPrefix(opt, "name=")
			if name == "" {
				return fmt.Errorf("empty name in %s tag", TagName)
			}
			p.Name = name
		default:
			return fmt.Errorf("unknown %s tag option %q", TagName, opt)
		}
	}
	return nil
}

// External returns the externally stored properties in declaration order.
func (d *Descriptor) External() []Property {
	var props []Property
	for _, p := range d.Properties {
		if p.External {
			props = append(props, p)
		}
	}
	return props
}

// BaseName returns the type's object base name, falling back to def.
func (d *Descriptor) BaseName(def string) string {
	if d.ObjectName != "" {
		return d.ObjectName
	}
	return def
}

// Collision returns the external property whose name equals base,
// ignoring case.
func (d *Descriptor) Collision(base string) (Property, bool) {
	for _, p := range d.Properties {
		if p.External && strings.EqualFold(p.Name, base) {
			return p, true
		}
	}
	return Property{}, false
}

// New returns a settable zero value of the underlying (non-pointer)
// type. Maps are allocated.
func (d *Descriptor) New() reflect.Value {
	base := d.Type
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	v := reflect.New(base).Elem()
	if base.Kind() == reflect.Map {
		v.Set(reflect.MakeMap(base))
	}
	return v
}
