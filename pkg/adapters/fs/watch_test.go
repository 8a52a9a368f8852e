package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatch(t *testing.T, root, pattern string) (<-chan []string, context.CancelFunc, <-chan error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan []string, 16)
	done := make(chan error, 1)

	go func() {
		done <- Watch(ctx, root, pattern, nil, func(paths []string) {
			events <- paths
		})
	}()

	// Give the watcher time to register.
	time.Sleep(100 * time.Millisecond)
	return events, cancel, done
}

func waitPaths(t *testing.T, events <-chan []string) []string {
	t.Helper()
	select {
	case paths := <-events:
		return paths
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for watch callback")
		return nil
	}
}

func TestWatch_Directory(t *testing.T) {
	tmpDir := t.TempDir()
	events, cancel, done := startWatch(t, tmpDir, "**/*.yaml")

	target := filepath.Join(tmpDir, "object.yaml")
	require.NoError(t, os.WriteFile(target, []byte("a: 1\n"), 0644))

	paths := waitPaths(t, events)
	assert.Contains(t, paths, target)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatch_NewSubdirectory(t *testing.T) {
	tmpDir := t.TempDir()
	events, cancel, _ := startWatch(t, tmpDir, "")
	defer cancel()

	sub := filepath.Join(tmpDir, "items")
	require.NoError(t, os.Mkdir(sub, 0755))
	waitPaths(t, events)

	// Let the new directory be registered before writing into it.
	time.Sleep(100 * time.Millisecond)
	target := filepath.Join(sub, "a.json")
	require.NoError(t, os.WriteFile(target, []byte("{}"), 0644))

	deadline := time.After(3 * time.Second)
	for {
		select {
		case paths := <-events:
			for _, p := range paths {
				if p == target {
					return
				}
			}
		case <-deadline:
			t.Fatal("change inside new subdirectory was not reported")
		}
	}
}

func TestWatch_SingleFile(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "config.yaml")
	other := filepath.Join(tmpDir, "other.yaml")
	require.NoError(t, os.WriteFile(target, []byte("a: 1\n"), 0644))

	events, cancel, _ := startWatch(t, target, "")
	defer cancel()

	require.NoError(t, os.WriteFile(other, []byte("b: 2\n"), 0644))
	require.NoError(t, os.WriteFile(target, []byte("a: 2\n"), 0644))

	paths := waitPaths(t, events)
	assert.Contains(t, paths, target)
	assert.NotContains(t, paths, other)
}

func TestWatch_Errors(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing"), "", nil, func([]string) {})
	assert.Error(t, err)

	err = Watch(context.Background(), t.TempDir(), "[", nil, func([]string) {})
	assert.Error(t, err)
}
