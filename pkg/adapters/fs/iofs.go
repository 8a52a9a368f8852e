package fs

import (
	iofs "io/fs"
	"path"

	"github.com/aretw0/compose/pkg/core"
)

// IOFS adapts an io/fs.FS (embed.FS, fstest.MapFS, os.DirFS) to
// core.FileSystem. Paths are slash-separated and relative to the FS
// root, "." being the root itself.
type IOFS struct {
	FS iofs.FS
}

var _ core.FileSystem = IOFS{}

func (f IOFS) Stat(name string) core.Kind {
	info, err := iofs.Stat(f.FS, name)
	if err != nil {
		return core.KindAbsent
	}
	if info.IsDir() {
		return core.KindDirectory
	}
	return core.KindFile
}

func (f IOFS) ReadFile(name string) ([]byte, error) {
	return iofs.ReadFile(f.FS, name)
}

func (f IOFS) ListFiles(dir string) ([]string, error) {
	entries, err := iofs.ReadDir(f.FS, dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, path.Join(dir, e.Name()))
	}
	return files, nil
}

func (f IOFS) Join(elem ...string) string {
	return path.Join(elem...)
}
