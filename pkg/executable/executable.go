// Package executable locates external programs and runs them.
package executable

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when a program cannot be located.
var ErrNotFound = errors.New("executable not found")

// suffixes tried after the bare name when searching PATH.
var suffixes = []string{"", ".sh", ".ps1", ".cmd", ".exe", ".bat"}

// Executable is a program resolved to a file on disk.
type Executable struct {
	Path   string
	Logger *slog.Logger
}

// Find resolves name to an executable file. A name that already points
// at a file is used as is; otherwise each PATH entry is searched with
// the common script and binary suffixes.
func Find(name string, logger *slog.Logger) (*Executable, error) {
	if isFile(name) {
		return &Executable{Path: name, Logger: logger}, nil
	}

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			continue
		}
		for _, suffix := range suffixes {
			candidate := filepath.Join(dir, name+suffix)
			if isFile(candidate) {
				return &Executable{Path: candidate, Logger: logger}, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Run executes the program in dir (the current directory when empty)
// and returns its standard output. Standard error is attached to the
// returned error when the program fails.
func (e *Executable) Run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	if e.Logger != nil {
		e.Logger.Debug("executing", "path", e.Path, "args", args, "dir", dir)
	}

	cmd := exec.CommandContext(ctx, e.Path, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), fmt.Errorf("%s failed: %w\nOutput: %s", filepath.Base(e.Path), err, strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
