package graph

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/aretw0/compose/pkg/core"
	"github.com/bmatcuk/doublestar/v4"
)

// Assemble builds one element of type elem per eligible file directly
// inside dir and appends it to sink, in the order the filesystem lists
// them. A file is eligible when a codec handles its extension, its stem
// differs from objectName (the enclosing object's own marker) and it
// matches no ignore pattern. Documents that decode to nothing are
// skipped. A missing dir leaves the sink untouched.
func (b *Builder) Assemble(elem reflect.Type, dir, objectName string, sink Sink) error {
	if b.fsys.Stat(dir) != core.KindDirectory {
		return nil
	}

	files, err := b.fsys.ListFiles(dir)
	if err != nil {
		return fmt.Errorf("listing %s: %w", dir, err)
	}

	for _, file := range files {
		name := filepath.Base(file)
		ext := filepath.Ext(name)
		if strings.TrimSuffix(name, ext) == objectName {
			continue
		}
		if !b.registry.Known(ext) {
			continue
		}
		if b.ignored(name) {
			b.logger.Debug("ignoring collection entry", "path", file)
			continue
		}

		v, empty, err := b.decodeFile(elem, file)
		if err != nil {
			return err
		}
		if empty {
			continue
		}
		if err := sink.Append(v); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) ignored(name string) bool {
	for _, pattern := range b.opts.Ignore {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
