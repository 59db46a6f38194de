package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	attrs   Attributes
}

func (f *memoryFileInfo) Name() string           { return f.name }
func (f *memoryFileInfo) Size() int64            { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode      { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time     { return f.modTime }
func (f *memoryFileInfo) IsDir() bool            { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}       { return nil }
func (f *memoryFileInfo) Attributes() Attributes { return f.attrs }

// memoryNode is one entry of the in-memory tree
type memoryNode struct {
	info     memoryFileInfo
	target   string   // symlink target
	children []string // entry names in insertion order, directories only

	statErr     error
	readlinkErr error
	openErr     error
	enumErr     error
	enumAfter   int
}

// memoryDirectory implements Directory for the in-memory filesystem
type memoryDirectory struct {
	path string
	node *memoryNode
}

func (d *memoryDirectory) Path() string { return d.path }

func (d *memoryDirectory) Names() ([]string, error) {
	names := append([]string(nil), d.node.children...)
	if d.node.enumErr != nil {
		if d.node.enumAfter < len(names) {
			names = names[:d.node.enumAfter]
		}
		if names == nil {
			names = []string{}
		}
		return names, &fs.PathError{Op: "readdirent", Path: d.path, Err: d.node.enumErr}
	}
	return names, nil
}

// MemoryFileSystem implements Provider for in-memory testing.
// Relative paths are resolved against the root, which acts as the working directory.
// Entries are enumerated in insertion order.
type MemoryFileSystem struct {
	nodes     map[string]*memoryNode // map of absolute path -> node
	root      string
	nextInode uint64
	now       time.Time
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean("/" + filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		nodes:     make(map[string]*memoryNode),
		root:      root,
		nextInode: 1,
		now:       time.Now(),
	}
	mfs.nodes["/"] = mfs.newNode("/", fs.ModeDir|0755, 0)
	mfs.ensureDirectoriesExist(path.Join(root, "x"))

	return mfs
}

func (mfs *MemoryFileSystem) newNode(absPath string, mode fs.FileMode, size int64) *memoryNode {
	links := uint64(1)
	if mode.IsDir() {
		links = 2
	}
	node := &memoryNode{
		info: memoryFileInfo{
			name:    path.Base(absPath),
			size:    size,
			mode:    mode,
			modTime: mfs.now,
			attrs: Attributes{
				Inode:      mfs.nextInode,
				Links:      links,
				Blocks:     (size + 511) / 512,
				AccessTime: mfs.now,
				ChangeTime: mfs.now,
			},
		},
	}
	mfs.nextInode++
	return node
}

// abs maps a caller path onto the virtual tree without resolving symlinks
func (mfs *MemoryFileSystem) abs(name string) string {
	name = filepath.ToSlash(name)
	if !path.IsAbs(name) {
		name = path.Join(mfs.root, name)
	}
	return path.Clean(name)
}

func (mfs *MemoryFileSystem) put(absPath string, node *memoryNode) {
	mfs.ensureDirectoriesExist(absPath)
	if _, exists := mfs.nodes[absPath]; !exists {
		parent := mfs.nodes[path.Dir(absPath)]
		parent.children = append(parent.children, path.Base(absPath))
	}
	mfs.nodes[absPath] = node
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if _, exists := mfs.nodes[dir]; exists {
		return
	}
	mfs.ensureDirectoriesExist(dir)
	parent := mfs.nodes[path.Dir(dir)]
	parent.children = append(parent.children, path.Base(dir))
	mfs.nodes[dir] = mfs.newNode(dir, fs.ModeDir|0755, 4096)
}

// AddFile adds a regular file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, mfs.now)
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.abs(filePath)
	node := mfs.newNode(absPath, 0644, int64(len(content)))
	node.info.modTime = modTime
	mfs.put(absPath, node)
}

// AddDir adds an empty directory
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.abs(dirPath)
	if _, exists := mfs.nodes[absPath]; exists {
		return
	}
	mfs.put(absPath, mfs.newNode(absPath, fs.ModeDir|0755, 4096))
}

// AddSymlink adds a symbolic link pointing at target
func (mfs *MemoryFileSystem) AddSymlink(linkPath string, target string) {
	absPath := mfs.abs(linkPath)
	node := mfs.newNode(absPath, fs.ModeSymlink|0777, int64(len(target)))
	node.target = target
	mfs.put(absPath, node)
}

// AddNode adds an entry with an arbitrary mode, e.g. a FIFO or device
func (mfs *MemoryFileSystem) AddNode(nodePath string, mode fs.FileMode) {
	absPath := mfs.abs(nodePath)
	mfs.put(absPath, mfs.newNode(absPath, mode, 0))
}

func (mfs *MemoryFileSystem) mustNode(nodePath string) *memoryNode {
	node, exists := mfs.nodes[mfs.abs(nodePath)]
	if !exists {
		panic(fmt.Sprintf("memory filesystem: no entry at %s", nodePath))
	}
	return node
}

// SetMode replaces the type and permission bits of an entry
func (mfs *MemoryFileSystem) SetMode(nodePath string, mode fs.FileMode) {
	mfs.mustNode(nodePath).info.mode = mode
}

// SetOwner sets the numeric owner and group of an entry
func (mfs *MemoryFileSystem) SetOwner(nodePath string, uid, gid uint32) {
	node := mfs.mustNode(nodePath)
	node.info.attrs.UID = uid
	node.info.attrs.GID = gid
}

// SetSize sets the byte size and allocated 512-byte blocks of an entry
func (mfs *MemoryFileSystem) SetSize(nodePath string, size, blocks int64) {
	node := mfs.mustNode(nodePath)
	node.info.size = size
	node.info.attrs.Blocks = blocks
}

// SetLinks sets the hard link count of an entry
func (mfs *MemoryFileSystem) SetLinks(nodePath string, links uint64) {
	mfs.mustNode(nodePath).info.attrs.Links = links
}

// SetInode sets the inode number of an entry
func (mfs *MemoryFileSystem) SetInode(nodePath string, inode uint64) {
	mfs.mustNode(nodePath).info.attrs.Inode = inode
}

// SetTimes sets the modification, access and status change times of an entry
func (mfs *MemoryFileSystem) SetTimes(nodePath string, mtime, atime, ctime time.Time) {
	node := mfs.mustNode(nodePath)
	node.info.modTime = mtime
	node.info.attrs.AccessTime = atime
	node.info.attrs.ChangeTime = ctime
}

// FailStat makes Stat and Lstat of the entry fail with err
func (mfs *MemoryFileSystem) FailStat(nodePath string, err error) {
	mfs.mustNode(nodePath).statErr = err
}

// FailReadlink makes Readlink of the entry fail with err
func (mfs *MemoryFileSystem) FailReadlink(nodePath string, err error) {
	mfs.mustNode(nodePath).readlinkErr = err
}

// FailOpen makes Open of the directory fail with err
func (mfs *MemoryFileSystem) FailOpen(dirPath string, err error) {
	mfs.mustNode(dirPath).openErr = err
}

// FailEnumeration makes enumeration of the directory stop with err after
// the first n names
func (mfs *MemoryFileSystem) FailEnumeration(dirPath string, n int, err error) {
	node := mfs.mustNode(dirPath)
	node.enumErr = err
	node.enumAfter = n
}

// rawLstat looks up an already-resolved absolute path
func (mfs *MemoryFileSystem) rawLstat(absPath string) (FileInfo, error) {
	node, exists := mfs.nodes[absPath]
	if !exists {
		return nil, &fs.PathError{Op: "lstat", Path: absPath, Err: fs.ErrNotExist}
	}
	return &node.info, nil
}

func (mfs *MemoryFileSystem) rawReadlink(absPath string) (string, error) {
	node, exists := mfs.nodes[absPath]
	if !exists {
		return "", &fs.PathError{Op: "readlink", Path: absPath, Err: fs.ErrNotExist}
	}
	if node.info.mode&fs.ModeSymlink == 0 {
		return "", &fs.PathError{Op: "readlink", Path: absPath, Err: errNotSymlink}
	}
	if node.readlinkErr != nil {
		return "", &fs.PathError{Op: "readlink", Path: absPath, Err: node.readlinkErr}
	}
	return node.target, nil
}

func (mfs *MemoryFileSystem) resolve(absPath string) (string, error) {
	return resolvePath(absPath, mfs.rawLstat, mfs.rawReadlink)
}

// lookup resolves every component except the last one
func (mfs *MemoryFileSystem) lookup(op, name string) (string, *memoryNode, error) {
	absPath := mfs.abs(name)
	if absPath != "/" {
		parent, err := mfs.resolve(path.Dir(absPath))
		if err != nil {
			return "", nil, &fs.PathError{Op: op, Path: name, Err: underlying(err)}
		}
		absPath = path.Join(parent, path.Base(absPath))
	}
	node, exists := mfs.nodes[absPath]
	if !exists {
		return "", nil, &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	if node.statErr != nil {
		return "", nil, &fs.PathError{Op: op, Path: name, Err: node.statErr}
	}
	return absPath, node, nil
}

// Stat implements Provider.Stat
func (mfs *MemoryFileSystem) Stat(name string) (FileInfo, error) {
	resolved, err := mfs.resolve(mfs.abs(name))
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: underlying(err)}
	}
	_, node, err := mfs.lookup("stat", resolved)
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: underlying(err)}
	}
	return &node.info, nil
}

// Lstat implements Provider.Lstat
func (mfs *MemoryFileSystem) Lstat(name string) (FileInfo, error) {
	_, node, err := mfs.lookup("lstat", name)
	if err != nil {
		return nil, err
	}
	return &node.info, nil
}

// Readlink implements Provider.Readlink
func (mfs *MemoryFileSystem) Readlink(name string) (string, error) {
	absPath, _, err := mfs.lookup("readlink", name)
	if err != nil {
		return "", err
	}
	target, err := mfs.rawReadlink(absPath)
	if err != nil {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: underlying(err)}
	}
	return target, nil
}

// RealPath implements Provider.RealPath
func (mfs *MemoryFileSystem) RealPath(name string) (string, error) {
	resolved, err := mfs.resolve(mfs.abs(name))
	if err != nil {
		return "", &fs.PathError{Op: "realpath", Path: name, Err: underlying(err)}
	}
	return resolved, nil
}

// Open implements Provider.Open
func (mfs *MemoryFileSystem) Open(name string) (Directory, error) {
	resolved, err := mfs.resolve(mfs.abs(name))
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: underlying(err)}
	}
	node := mfs.nodes[resolved]
	if node.openErr != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: node.openErr}
	}
	if !node.info.mode.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: name, Err: errNotDir}
	}
	return &memoryDirectory{path: name, node: node}, nil
}

// underlying strips path decoration so errors can be re-wrapped with the caller's path
func underlying(err error) error {
	if pe, ok := err.(*fs.PathError); ok {
		return pe.Err
	}
	return err
}

var (
	_ Provider = (*MemoryFileSystem)(nil)
	_ Provider = (*OSFileSystem)(nil)
)
