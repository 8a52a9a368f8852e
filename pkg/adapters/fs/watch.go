package fs

import (
	"context"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// DebounceInterval is how long Watch waits for a burst of events to
// settle before calling back.
const DebounceInterval = 50 * time.Millisecond

// Watch observes root and calls fn with the changed paths once per burst
// of filesystem events. When root is a directory it is watched
// recursively, including subdirectories created later; when root is a
// file its parent directory is watched and only that file is reported.
//
// pattern is a doublestar pattern matched against slash-separated paths
// relative to the watched directory; empty matches everything. Watch
// blocks until ctx is done and then returns nil.
func Watch(ctx context.Context, root, pattern string, logger *slog.Logger, fn func(paths []string)) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}

	dir := root
	if !info.IsDir() {
		dir = filepath.Dir(root)
		if pattern == "" {
			pattern = filepath.Base(root)
		}
	}
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid watch pattern %q", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if info.IsDir() {
		if err := addRecursive(watcher, dir); err != nil {
			return err
		}
	} else if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	pending := make(map[string]struct{})
	timer := time.NewTimer(DebounceInterval)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if info.IsDir() && event.Has(fsnotify.Create) {
				if st, err := os.Stat(event.Name); err == nil && st.IsDir() {
					if err := addRecursive(watcher, event.Name); err != nil {
						logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
				}
			}

			if !matches(dir, pattern, event.Name) {
				continue
			}
			logger.Debug("watch event", "path", event.Name, "op", event.Op.String())
			pending[event.Name] = struct{}{}
			timer.Reset(DebounceInterval)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", "error", err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			clear(pending)
			fn(paths)
		}
	}
}

func matches(dir, pattern, name string) bool {
	if pattern == "" {
		return true
	}
	rel, err := filepath.Rel(dir, name)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	ok, _ := doublestar.Match(pattern, filepath.ToSlash(rel))
	return ok
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" && path != root {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}
