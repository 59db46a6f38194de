// Package filesystem provides the filesystem query capability used by the
// listing engine.
//
// Provider answers Stat, Lstat, Readlink and RealPath queries and opens
// directories for enumeration. POSIX attributes that fs.FileInfo does not
// expose (inode, link count, owner ids, allocated blocks, atime, ctime) are
// extracted with AttributesOf.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory tree with controllable metadata and failures, for testing
//   - CoreFileSystem: Adapter for github.com/jmgilman/go/fs/core backends such as go-billy
package filesystem
