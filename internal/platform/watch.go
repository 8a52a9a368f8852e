package platform

import (
	"context"

	"github.com/aretw0/compose/pkg/adapters/fs"
)

// Watch loads path into a T and hands the result to fn, then loads it
// again after every burst of changes below path until ctx is done.
// Load errors are delivered to fn rather than stopping the watch.
//
// Changes are observed on the OS filesystem, so path must be a real
// path even when WithFileSystem routes reads elsewhere.
func Watch[T any](ctx context.Context, path string, fn func(*T, error), opts ...Option) error {
	loader, err := NewLoader[T](opts...)
	if err != nil {
		return err
	}
	logger := loader.Builder().Options().Logger

	fn(loader.Load(path))

	return fs.Watch(ctx, path, "", logger, func(changed []string) {
		logger.Debug("reloading", "path", path, "changed", len(changed))
		fn(loader.Load(path))
	})
}
