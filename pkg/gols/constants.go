package gols

import "time"

// Exit codes:
//   - 0: Success
//   - 1: At least one entry could not be listed
//   - 2: CLI usage error (unknown flag, bad flag value)
//   - 3: Internal panic
//   - 10: Invalid configuration file
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitUsageError   = 2
	ExitPanic        = 3
	ExitConfigError  = 10
)

const (
	// DefaultBlockSize is the block unit for block counts without -k.
	DefaultBlockSize = 512

	// KibiBlockSize is the block unit selected by -k.
	KibiBlockSize = 1024

	// RawBlockSize is the unit in which filesystems report allocated storage.
	RawBlockSize = 512

	// DefaultWidth is the output width when neither COLUMNS nor a terminal provides one.
	DefaultWidth = 80

	// RecentWindow is how far back a timestamp may be and still render with
	// a clock time instead of a year in long form.
	RecentWindow = 6 * 30 * 24 * time.Hour

	// ColumnGutter is the number of spaces between columns.
	ColumnGutter = 2
)
