package gols

import (
	"errors"
	"strings"
)

// Sentinel errors for listing failures.
// These enable callers to distinguish error kinds using errors.Is().
var (
	// ErrQueryFailed indicates a path could not be stat-ed.
	ErrQueryFailed = errors.New("query failed")

	// ErrLoopDetected indicates a directory is already on the recursion stack.
	ErrLoopDetected = errors.New("detected directory loop")

	// ErrLinkReadFailed indicates a symbolic link target could not be read.
	ErrLinkReadFailed = errors.New("cannot read symbolic link")

	// ErrEnumerationFailed indicates a directory could not be opened or read.
	ErrEnumerationFailed = errors.New("enumeration failed")

	// ErrListingFailed is returned after a listing during which at least one
	// error was reported. The individual errors have already been logged.
	ErrListingFailed = errors.New("listing incomplete")

	// ErrInvalidConfig indicates the configuration file or a flag value is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUsage indicates the command line could not be parsed.
	ErrUsage = errors.New("usage error")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrListingFailed):
		return ExitGeneralError
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	}

	// cobra reports flag parsing problems as plain errors
	errStr := err.Error()
	if strings.HasPrefix(errStr, "unknown flag") ||
		strings.HasPrefix(errStr, "unknown shorthand flag") ||
		strings.HasPrefix(errStr, "invalid argument") ||
		strings.Contains(errStr, "flag needs an argument") {
		return ExitUsageError
	}

	return ExitGeneralError
}
