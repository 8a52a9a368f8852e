package platform

import (
	"github.com/aretw0/compose/pkg/graph"
	"github.com/aretw0/compose/pkg/typed"
)

// NewBuilder creates a graph builder from functional options.
func NewBuilder(opts ...Option) (*graph.Builder, error) {
	return graph.NewBuilder(Resolve(opts...))
}

// NewLoader creates a typed loader from functional options.
//
//	loader, err := platform.NewLoader[Project](platform.WithObjectName("project"))
func NewLoader[T any](opts ...Option) (*typed.Loader[T], error) {
	return typed.NewLoader[T](Resolve(opts...))
}
