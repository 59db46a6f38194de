package filesystem

import (
	"time"
)

// Attributes holds the POSIX metadata that fs.FileInfo does not expose directly.
type Attributes struct {
	Inode uint64
	Links uint64
	UID   uint32
	GID   uint32

	// Blocks is the allocated storage in 512-byte units.
	Blocks int64

	AccessTime time.Time
	ChangeTime time.Time
}

// attributer is implemented by FileInfo values that carry their own attributes.
type attributer interface {
	Attributes() Attributes
}

// AttributesOf extracts Attributes from info.
// In-memory infos report their own attributes, OS infos are decoded from the
// platform stat structure, anything else gets portable defaults.
func AttributesOf(info FileInfo) Attributes {
	if a, ok := info.(attributer); ok {
		return a.Attributes()
	}
	if attrs, ok := platformAttributes(info); ok {
		return attrs
	}
	return defaultAttributes(info)
}

// defaultAttributes reads ModTime once; some backends report a fresh clock
// value on every call.
func defaultAttributes(info FileInfo) Attributes {
	mtime := info.ModTime()
	return Attributes{
		Links:      1,
		Blocks:     (info.Size() + 511) / 512,
		AccessTime: mtime,
		ChangeTime: mtime,
	}
}
