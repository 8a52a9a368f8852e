package core

// FileSystem is the accessor the graph builder reads through.
// Adhering to this interface keeps the builder independent of the
// underlying storage (local disk, embedded fs.FS, test fixtures).
//
// Implementations are not expected to guard against the tree changing
// between a Stat and a later ReadFile.
type FileSystem interface {
	// Stat classifies path as a file, a directory, or absent.
	Stat(path string) Kind

	// ReadFile returns the full contents of the file at path.
	ReadFile(path string) ([]byte, error)

	// ListFiles returns the direct file entries of dir (not
	// subdirectories) as joined paths, sorted by name.
	ListFiles(dir string) ([]string, error)

	// Join joins path elements using the accessor's separator.
	Join(elem ...string) string
}
