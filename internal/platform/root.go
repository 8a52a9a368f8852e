package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindRoot looks upwards from startDir for the nearest directory holding
// an object marker document, that is the configured object name with
// any marker extension (object.json, object.yaml, then custom codecs).
// It returns the absolute path of that directory.
func FindRoot(startDir string, opts ...Option) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	o := Resolve(opts...)
	exts := o.Registry().MarkerExtensions()

	dir := abs
	for {
		for _, ext := range exts {
			if isFile(filepath.Join(dir, o.ObjectName+ext)) {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no %s marker above %s", o.ObjectName, abs)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
