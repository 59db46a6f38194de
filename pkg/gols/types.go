package gols

import (
	"io/fs"
	"time"
)

// FileInfo is a snapshot of one filesystem entry taken at collection time.
// It is read-only once collected.
type FileInfo struct {
	// Name is the display name (the operand as given, or the entry name).
	Name string

	// Path is the raw path used to query the entry.
	Path string

	// Mode holds the file type and permission bits.
	Mode fs.FileMode

	// Owner and Group hold the resolved name or the decimal id.
	Owner string
	Group string

	Size int64

	// Blocks is the allocated size in units of the configured block size.
	Blocks int64

	// RawBlocks is the allocated size in 512-byte units as reported by the filesystem.
	RawBlocks int64

	Links uint64
	Inode uint64

	// Time is the mtime, atime or ctime depending on ListConfig.TimeMode.
	Time time.Time

	// LinkTarget is nil unless the entry is a symbolic link whose target was read.
	// An empty target is a valid, distinct value.
	LinkTarget *string
}

// IsDir reports whether the entry is a directory.
func (f FileInfo) IsDir() bool {
	return f.Mode.IsDir()
}

// IsSymlink reports whether the entry is a symbolic link.
func (f FileInfo) IsSymlink() bool {
	return f.Mode&fs.ModeSymlink != 0
}

// OutputMode selects the Layout Engine arrangement.
type OutputMode int

const (
	// OutputDefault is resolved to OutputColumnsDown or OutputOnePerLine
	// depending on whether stdout is a terminal.
	OutputDefault OutputMode = iota
	OutputOnePerLine
	OutputColumnsDown
	OutputColumnsAcross
	OutputCommaSeparated
)

// TimeMode selects which timestamp is collected.
type TimeMode int

const (
	TimeModified TimeMode = iota
	TimeAccessed
	TimeStatusChanged
)

// ClassifyMode selects the suffix appended to names.
type ClassifyMode int

const (
	ClassifyNone ClassifyMode = iota
	ClassifyDirs
	ClassifyAll
)

// SortMode selects the primary sort key.
type SortMode int

const (
	// SortUnsorted preserves enumeration order.
	SortUnsorted SortMode = iota
	SortName
	SortSize
	SortTime
)

// HiddenMode controls which dot entries are listed.
type HiddenMode int

const (
	HiddenOmit HiddenMode = iota
	// HiddenAlmostAll shows dotfiles except "." and "..".
	HiddenAlmostAll
	HiddenAll
)

// DirMode controls whether directories are entered.
type DirMode int

const (
	DirNoEnter DirMode = iota
	DirEnter
	DirRecurse
)

// LinkMode controls symbolic link following.
type LinkMode int

const (
	// LinkDefault is resolved to LinkFollowOperand after flag processing.
	LinkDefault LinkMode = iota
	LinkFollowNever
	LinkFollowOperand
	LinkFollowAll
)

// ColorMode controls styling of entry names.
type ColorMode int

const (
	ColorNever ColorMode = iota
	ColorAuto
	ColorAlways
)

// LongFormat holds the long-form (-l/-g/-n/-o) toggles.
type LongFormat struct {
	Enabled    bool
	NumericIDs bool
	NoOwner    bool
	NoGroup    bool
}

// ListConfig is the full listing configuration.
// It must not be mutated once listing has started.
type ListConfig struct {
	Output OutputMode
	Long   LongFormat

	ShowInode     bool
	ShowBlocks    bool
	PrintableOnly bool
	Reverse       bool

	// BlockSize is the unit for block counts: 512, or 1024 with -k.
	BlockSize int64

	// Width is the output width in columns used by the column layouts.
	Width int

	Time     TimeMode
	Classify ClassifyMode
	Sort     SortMode
	Hidden   HiddenMode
	Dir      DirMode
	Link     LinkMode
	Color    ColorMode
}

// DefaultListConfig returns the configuration used when no flags are given.
func DefaultListConfig() ListConfig {
	return ListConfig{
		Output:    OutputDefault,
		BlockSize: DefaultBlockSize,
		Width:     DefaultWidth,
		Time:      TimeModified,
		Classify:  ClassifyNone,
		Sort:      SortName,
		Hidden:    HiddenOmit,
		Dir:       DirEnter,
		Link:      LinkDefault,
		Color:     ColorNever,
	}
}
