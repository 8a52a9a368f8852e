package lifecycle

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/compose/pkg/adapters/fs"
	"github.com/aretw0/compose/pkg/typed"
)

// ReloadEvent reports one load of a watched tree. Value is nil when Err
// is set.
type ReloadEvent[T any] struct {
	Path  string
	Value *T
	Err   error
}

func (e ReloadEvent[T]) String() string {
	if e.Err != nil {
		return fmt.Sprintf("reload %s failed: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("reloaded %s", e.Path)
}

// Source is a lifecycle.Source that loads a tree once on Start and again
// after every burst of changes below it, emitting a ReloadEvent each time.
type Source[T any] struct {
	loader *typed.Loader[T]
	path   string
	out    chan lifecycle.Event
	latest atomic.Pointer[T]
}

// NewSource creates a source reloading path with loader.
func NewSource[T any](loader *typed.Loader[T], path string) *Source[T] {
	return &Source[T]{
		loader: loader,
		path:   path,
		out:    make(chan lifecycle.Event),
	}
}

var _ lifecycle.Source = (*Source[struct{}])(nil)

func (s *Source[T]) Events() <-chan lifecycle.Event {
	return s.out
}

// Latest returns the last value that loaded without error, or nil.
func (s *Source[T]) Latest() *T {
	return s.latest.Load()
}

func (s *Source[T]) Start(ctx context.Context) error {
	logger := s.loader.Builder().Options().Logger

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)

		if !s.emit(ctx) {
			return nil
		}
		return fs.Watch(ctx, s.path, "", logger, func(changed []string) {
			logger.Debug("reloading", "path", s.path, "changed", len(changed))
			s.emit(ctx)
		})
	}, lifecycle.WithErrorHandler(func(err error) {
		logger.Error("reload source stopped", "path", s.path, "error", err)
	}))
	return nil
}

// emit loads the tree and delivers the event. It reports false when ctx
// ended first.
func (s *Source[T]) emit(ctx context.Context) bool {
	v, err := s.loader.Load(s.path)
	if err == nil {
		s.latest.Store(v)
	}

	select {
	case s.out <- ReloadEvent[T]{Path: s.path, Value: v, Err: err}:
		return true
	case <-ctx.Done():
		return false
	}
}
