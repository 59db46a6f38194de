package filesystem

import (
	"errors"
	"syscall"
)

var (
	// errNotDir is reported when a non-directory is opened for enumeration.
	errNotDir error = syscall.ENOTDIR

	// errTooManyLinks is reported when symlink resolution exceeds maxSymlinkHops.
	errTooManyLinks error = syscall.ELOOP

	// errNotSymlink is reported by Readlink on a non-symlink.
	errNotSymlink error = syscall.EINVAL

	// ErrUnsupported is returned when the backend cannot answer a query.
	ErrUnsupported = errors.New("operation not supported")
)

// maxSymlinkHops bounds symlink resolution, matching Linux's MAXSYMLINKS.
const maxSymlinkHops = 40
