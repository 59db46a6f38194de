package filesystem

import (
	"os"
	"path/filepath"
)

// osDirectory implements Directory for the OS filesystem
type osDirectory struct {
	path string
}

func (d *osDirectory) Path() string { return d.path }

func (d *osDirectory) Names() ([]string, error) {
	f, err := os.Open(d.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil && names == nil {
		names = []string{}
	}
	return names, err
}

// OSFileSystem implements Provider for the OS filesystem
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	return os.Stat(path)
}

func (p *OSFileSystem) Lstat(path string) (FileInfo, error) {
	return os.Lstat(path)
}

func (p *OSFileSystem) Readlink(path string) (string, error) {
	return os.Readlink(path)
}

func (p *OSFileSystem) RealPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// Open verifies the path can be opened as a directory. Entries are read
// lazily by Names so that a failure part-way is reported separately.
func (p *OSFileSystem) Open(path string) (Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	f.Close()
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &os.PathError{Op: "open", Path: path, Err: errNotDir}
	}
	return &osDirectory{path: path}, nil
}
