package fs

import (
	"sync"

	"github.com/aretw0/compose/pkg/core"
)

// Recorder wraps a FileSystem and keeps a log of every path it was
// asked about. It is handy for tracing which files a load touched.
type Recorder struct {
	FS core.FileSystem

	mu    sync.Mutex
	stats []string
	reads []string
	lists []string
}

// NewRecorder wraps fsys.
func NewRecorder(fsys core.FileSystem) *Recorder {
	return &Recorder{FS: fsys}
}

var _ core.FileSystem = (*Recorder)(nil)

func (r *Recorder) Stat(path string) core.Kind {
	r.mu.Lock()
	r.stats = append(r.stats, path)
	r.mu.Unlock()
	return r.FS.Stat(path)
}

func (r *Recorder) ReadFile(path string) ([]byte, error) {
	r.mu.Lock()
	r.reads = append(r.reads, path)
	r.mu.Unlock()
	return r.FS.ReadFile(path)
}

func (r *Recorder) ListFiles(dir string) ([]string, error) {
	r.mu.Lock()
	r.lists = append(r.lists, dir)
	r.mu.Unlock()
	return r.FS.ListFiles(dir)
}

func (r *Recorder) Join(elem ...string) string {
	return r.FS.Join(elem...)
}

// Reads returns the paths read so far, in call order.
func (r *Recorder) Reads() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.reads...)
}

// Stats returns the paths classified so far, in call order.
func (r *Recorder) Stats() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.stats...)
}

// Lists returns the directories listed so far, in call order.
func (r *Recorder) Lists() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lists...)
}

// Reset forgets everything recorded.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats, r.reads, r.lists = nil, nil, nil
}
