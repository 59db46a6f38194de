package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// Directory is an open directory being enumerated.
type Directory interface {
	// Path returns the path the directory was opened with
	Path() string

	// Names returns the entry names in enumeration order, excluding "." and "..".
	// A non-nil error together with a non-nil slice means enumeration failed
	// part-way and the returned names are the ones read before the failure.
	Names() ([]string, error)
}

// Provider answers metadata and enumeration queries for paths.
// Errors are *fs.PathError values whenever the backend can produce them.
type Provider interface {
	// Stat returns file information, following symbolic links
	Stat(path string) (FileInfo, error)

	// Lstat returns file information without following a final symbolic link
	Lstat(path string) (FileInfo, error)

	// Readlink returns the target of a symbolic link
	Readlink(path string) (string, error)

	// RealPath returns the absolute path with every symbolic link and
	// "."/".." component resolved
	RealPath(path string) (string, error)

	// Open opens a directory for enumeration
	Open(path string) (Directory, error)
}
