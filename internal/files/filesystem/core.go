package filesystem

import (
	"io/fs"
	"path"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/jmgilman/go/fs/core"
)

// billyUnwrapper is implemented by the jmgilman billy providers, which hide
// their symlink support behind the wrapped go-billy filesystem.
type billyUnwrapper interface {
	Unwrap() billy.Filesystem
}

// coreDirectory implements Directory over core.FS
type coreDirectory struct {
	path string
	fsys core.FS
}

func (d *coreDirectory) Path() string { return d.path }

func (d *coreDirectory) Names() ([]string, error) {
	entries, err := d.fsys.ReadDir(corePath(d.path))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// CoreFileSystem implements Provider over a core.FS backend.
// Paths are interpreted relative to the backend root.
//
// Lstat and Readlink are taken from core.MetadataFS and core.SymlinkFS when
// the backend implements them, otherwise from the unwrapped go-billy
// filesystem. A backend with neither treats every entry as a non-link.
type CoreFileSystem struct {
	fsys     core.FS
	lstat    func(string) (fs.FileInfo, error)
	readlink func(string) (string, error)
}

// NewCoreFileSystem creates a provider backed by fsys
func NewCoreFileSystem(fsys core.FS) *CoreFileSystem {
	c := &CoreFileSystem{fsys: fsys}

	if u, ok := fsys.(billyUnwrapper); ok {
		bfs := u.Unwrap()
		c.lstat = bfs.Lstat
		c.readlink = bfs.Readlink
	}
	if m, ok := fsys.(core.MetadataFS); ok {
		c.lstat = m.Lstat
	}
	if s, ok := fsys.(core.SymlinkFS); ok {
		c.readlink = s.Readlink
	}

	return c
}

// corePath maps a caller path onto the backend root
func corePath(name string) string {
	return path.Clean("/" + filepath.ToSlash(name))
}

func (c *CoreFileSystem) Stat(name string) (FileInfo, error) {
	info, err := c.fsys.Stat(corePath(name))
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: underlying(err)}
	}
	return info, nil
}

func (c *CoreFileSystem) Lstat(name string) (FileInfo, error) {
	if c.lstat == nil {
		return c.Stat(name)
	}
	info, err := c.lstat(corePath(name))
	if err != nil {
		return nil, &fs.PathError{Op: "lstat", Path: name, Err: underlying(err)}
	}
	return info, nil
}

func (c *CoreFileSystem) Readlink(name string) (string, error) {
	if c.readlink == nil {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: ErrUnsupported}
	}
	target, err := c.readlink(corePath(name))
	if err != nil {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: underlying(err)}
	}
	return target, nil
}

func (c *CoreFileSystem) RealPath(name string) (string, error) {
	resolved, err := resolvePath(corePath(name), c.Lstat, c.Readlink)
	if err != nil {
		return "", &fs.PathError{Op: "realpath", Path: name, Err: underlying(err)}
	}
	return resolved, nil
}

func (c *CoreFileSystem) Open(name string) (Directory, error) {
	info, err := c.Stat(name)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: underlying(err)}
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: name, Err: errNotDir}
	}
	return &coreDirectory{path: name, fsys: c.fsys}, nil
}

var _ Provider = (*CoreFileSystem)(nil)
