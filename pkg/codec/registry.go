package codec

import "github.com/aretw0/compose/pkg/core"

// Built-in extensions, in marker precedence order.
const (
	ExtJSON = ".json"
	ExtYAML = ".yaml"
)

// Set is an ordered mapping from extension to custom codec.
// The zero value is empty and ready to use.
type Set struct {
	entries []entry
}

type entry struct {
	ext   string
	codec Codec
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{}
}

// Add registers c under ext. Re-registering an extension replaces the
// codec but keeps its original position.
func (s *Set) Add(ext string, c Codec) *Set {
	ext = NormalizeExt(ext)
	for i := range s.entries {
		if s.entries[i].ext == ext {
			s.entries[i].codec = c
			return s
		}
	}
	s.entries = append(s.entries, entry{ext: ext, codec: c})
	return s
}

// Get returns the codec registered under ext.
func (s *Set) Get(ext string) (Codec, bool) {
	if s == nil {
		return nil, false
	}
	for _, e := range s.entries {
		if e.ext == ext {
			return e.codec, true
		}
	}
	return nil, false
}

// Extensions returns the registered extensions in registration order.
func (s *Set) Extensions() []string {
	if s == nil {
		return nil
	}
	exts := make([]string, len(s.entries))
	for i, e := range s.entries {
		exts[i] = e.ext
	}
	return exts
}

// Len returns the number of registered codecs.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	out := &Set{}
	if s != nil {
		out.entries = append(out.entries, s.entries...)
	}
	return out
}

// Registry resolves extensions to codecs: the two built-ins first, then
// the custom Set in registration order.
type Registry struct {
	json   Codec
	yaml   Codec
	custom *Set
}

// NewRegistry builds a registry. Nil factories fall back to JSON() and
// YAML(); a nil set means no custom codecs.
func NewRegistry(newJSON, newYAML func() Codec, custom *Set) *Registry {
	r := &Registry{custom: custom}
	if newJSON != nil {
		r.json = newJSON()
	} else {
		r.json = JSON()
	}
	if newYAML != nil {
		r.yaml = newYAML()
	} else {
		r.yaml = YAML()
	}
	return r
}

// Builtin returns the built-in codec for ext, if any.
func (r *Registry) Builtin(ext string) (Codec, bool) {
	switch ext {
	case ExtJSON:
		return r.json, true
	case ExtYAML:
		return r.yaml, true
	}
	return nil, false
}

// Resolve returns the codec for ext, consulting the built-ins before the
// custom codecs.
func (r *Registry) Resolve(ext string) (Codec, bool) {
	if c, ok := r.Builtin(ext); ok {
		return c, true
	}
	return r.custom.Get(ext)
}

// Known reports whether any codec handles ext.
func (r *Registry) Known(ext string) bool {
	_, ok := r.Resolve(ext)
	return ok
}

// MarkerExtensions lists the extensions tried when looking for a
// document by stem, in precedence order. Later entries win. Custom
// codecs registered under a built-in extension are shadowed and not
// listed again.
func (r *Registry) MarkerExtensions() []string {
	exts := []string{ExtJSON, ExtYAML}
	for _, ext := range r.custom.Extensions() {
		if _, ok := r.Builtin(ext); !ok {
			exts = append(exts, ext)
		}
	}
	return exts
}

// Encoder returns the codec used to serialize the given format.
func (r *Registry) Encoder(f core.Format) (Codec, bool) {
	switch f {
	case core.FormatJSON:
		return r.json, true
	case core.FormatYAML:
		return r.yaml, true
	}
	return nil, false
}
