package schema

import (
	"fmt"
	"reflect"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of derived descriptors kept by
// the default cache.
const DefaultCacheSize = 512

// Cache memoizes descriptors per type. Derived descriptors live in a
// bounded LRU; registered descriptors are kept for the cache's lifetime.
// It is safe for concurrent use.
type Cache struct {
	derived *lru.Cache[reflect.Type, *Descriptor]

	mu         sync.RWMutex
	registered map[reflect.Type]*Descriptor
}

// NewCache creates a cache holding up to size derived descriptors.
func NewCache(size int) (*Cache, error) {
	derived, err := lru.New[reflect.Type, *Descriptor](size)
	if err != nil {
		return nil, fmt.Errorf("schema cache: %w", err)
	}
	return &Cache{
		derived:    derived,
		registered: make(map[reflect.Type]*Descriptor),
	}, nil
}

var defaultCache = mustNewCache(DefaultCacheSize)

func mustNewCache(size int) *Cache {
	c, err := NewCache(size)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the process-wide cache.
func Default() *Cache {
	return defaultCache
}

// Of returns the descriptor of t from the default cache.
func Of(t reflect.Type) (*Descriptor, error) {
	return defaultCache.Of(t)
}

// Of returns the descriptor of t, deriving it on first use.
func (c *Cache) Of(t reflect.Type) (*Descriptor, error) {
	c.mu.RLock()
	d, ok := c.registered[t]
	c.mu.RUnlock()
	if ok {
		return d, nil
	}

	if d, ok := c.derived.Get(t); ok {
		return d, nil
	}

	d, err := Derive(t)
	if err != nil {
		return nil, err
	}
	c.derived.Add(t, d)
	return d, nil
}

// Override adjusts a descriptor during Register.
type Override func(*Descriptor) error

// WithObjectName overrides the object base name.
func WithObjectName(name string) Override {
	return func(d *Descriptor) error {
		d.ObjectName = name
		return nil
	}
}

// WithExternal marks the Go field named field as externally stored,
// optionally forcing the collection path.
func WithExternal(field string, collection bool) Override {
	return func(d *Descriptor) error {
		for i := range d.Properties {
			if d.Properties[i].Field == field {
				d.Properties[i].External = true
				d.Properties[i].Collection = collection
				return nil
			}
		}
		return fmt.Errorf("%s has no field %s", d.Type, field)
	}
}

// WithPropertyName changes the file stem of the Go field named field.
func WithPropertyName(field, name string) Override {
	return func(d *Descriptor) error {
		for i := range d.Properties {
			if d.Properties[i].Field == field {
				d.Properties[i].Name = name
				return nil
			}
		}
		return fmt.Errorf("%s has no field %s", d.Type, field)
	}
}

// Register derives the descriptor of t, applies overrides, and pins the
// result so later lookups return it. It is meant for types whose
// declarations cannot carry compose tags.
func (c *Cache) Register(t reflect.Type, overrides ...Override) (*Descriptor, error) {
	d, err := Derive(t)
	if err != nil {
		return nil, err
	}
	for _, o := range overrides {
		if err := o(d); err != nil {
			return nil, err
		}
	}

	c.mu.Lock()
	c.registered[t] = d
	c.mu.Unlock()
	c.derived.Remove(t)
	return d, nil
}

// Len returns the number of descriptors held.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.registered) + c.derived.Len()
}
