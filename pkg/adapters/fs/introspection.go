package fs

import (
	"github.com/aretw0/introspection"
)

// RecorderState exposes the recorder's counters for observability.
type RecorderState struct {
	Stats int `json:"stats"`
	Reads int `json:"reads"`
	Lists int `json:"lists"`
}

// State implements introspection.Introspectable.
func (r *Recorder) State() any {
	r.mu.Lock()
	defer r.mu.Unlock()

	return RecorderState{
		Stats: len(r.stats),
		Reads: len(r.reads),
		Lists: len(r.lists),
	}
}

// ComponentType implements introspection.Component.
func (r *Recorder) ComponentType() string {
	return "filesystem"
}

var _ introspection.Introspectable = (*Recorder)(nil)
var _ introspection.Component = (*Recorder)(nil)
