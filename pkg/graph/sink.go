package graph

import (
	"fmt"
	"reflect"

	"github.com/aretw0/compose/pkg/core"
)

// Sink accumulates the elements of an assembled collection and produces
// the value assigned to the property.
type Sink interface {
	Append(v reflect.Value) error
	Finalize() reflect.Value
}

type sliceSink struct {
	items reflect.Value
}

// NewSink returns a sink producing values of the slice type container,
// starting from the items already held by seed. Containers that are not
// slices are rejected with core.ErrCollectionIncompatible.
func NewSink(container reflect.Type, seed reflect.Value) (Sink, error) {
	if container.Kind() != reflect.Slice {
		return nil, fmt.Errorf("%w: %s is stored as a folder but is not a slice", core.ErrCollectionIncompatible, container)
	}

	items := reflect.MakeSlice(container, 0, 0)
	if seed.IsValid() && seed.Kind() == reflect.Slice && seed.Len() > 0 {
		if !seed.Type().ConvertibleTo(container) {
			return nil, fmt.Errorf("%w: cannot seed %s from %s", core.ErrCollectionIncompatible, container, seed.Type())
		}
		items = reflect.AppendSlice(items, seed.Convert(container))
	}
	return &sliceSink{items: items}, nil
}

func (s *sliceSink) Append(v reflect.Value) error {
	elem := s.items.Type().Elem()
	switch {
	case v.Type().AssignableTo(elem):
	case v.Type().ConvertibleTo(elem):
		v = v.Convert(elem)
	default:
		return fmt.Errorf("%w: cannot append %s to %s", core.ErrCollectionIncompatible, v.Type(), s.items.Type())
	}
	s.items = reflect.Append(s.items, v)
	return nil
}

func (s *sliceSink) Finalize() reflect.Value {
	return s.items
}

// SliceSink is the statically typed sink for []T.
type SliceSink[T any] struct {
	items []T
}

// NewSliceSink returns a sink seeded with a copy of seed.
func NewSliceSink[T any](seed []T) *SliceSink[T] {
	return &SliceSink[T]{items: append(make([]T, 0, len(seed)), seed...)}
}

func (s *SliceSink[T]) Append(v reflect.Value) error {
	item, ok := v.Interface().(T)
	if !ok {
		return fmt.Errorf("%w: cannot append %s to []%s", core.ErrCollectionIncompatible, v.Type(), reflect.TypeFor[T]())
	}
	s.items = append(s.items, item)
	return nil
}

func (s *SliceSink[T]) Finalize() reflect.Value {
	return reflect.ValueOf(s.items)
}

// Items returns the accumulated elements.
func (s *SliceSink[T]) Items() []T {
	return s.items
}
