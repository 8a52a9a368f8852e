// Package fs provides the filesystem accessors the graph builder reads
// through: the local disk (OS), any io/fs.FS (IOFS), and a Recorder
// that counts the calls made through another accessor. It also watches
// trees for changes.
package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/compose/pkg/core"
)

// OS reads the local filesystem.
type OS struct{}

var _ core.FileSystem = OS{}

func (OS) Stat(path string) core.Kind {
	info, err := os.Stat(path)
	if err != nil {
		return core.KindAbsent
	}
	if info.IsDir() {
		return core.KindDirectory
	}
	return core.KindFile
}

func (OS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ListFiles returns the regular files directly inside dir, sorted by
// name. Symlinks are followed.
func (OS) ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		full := filepath.Join(dir, e.Name())
		if e.Type()&os.ModeSymlink != 0 {
			info, err := os.Stat(full)
			if err != nil || info.IsDir() {
				continue
			}
		}
		files = append(files, full)
	}
	return files, nil
}

func (OS) Join(elem ...string) string {
	return filepath.Join(elem...)
}

// TempFilePrefix names the scratch files WriteFile renames into place.
const TempFilePrefix = "compose-tmp-"

// WriteFile replaces path with data in one rename, creating parent
// directories. Readers see either the old or the new content.
func (OS) WriteFile(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	tmp, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
