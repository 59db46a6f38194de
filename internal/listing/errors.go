package listing

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/vvka-141/gols/pkg/gols"
)

// PathError records a listing failure for one path.
// Kind is one of the gols sentinel errors; Err is the underlying cause, if any.
type PathError struct {
	Kind error
	Path string
	Err  error
}

func (e *PathError) Error() string {
	switch {
	case e.Err == nil:
		return fmt.Sprintf("'%s': %s", e.Path, e.Kind)
	case errors.Is(e.Kind, gols.ErrLinkReadFailed):
		return fmt.Sprintf("'%s': %s: %s", e.Path, e.Kind, systemText(e.Err))
	default:
		return fmt.Sprintf("'%s': %s", e.Path, systemText(e.Err))
	}
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *PathError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// systemText strips the operation and path that *fs.PathError adds, leaving
// the system error text.
func systemText(err error) string {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}

// ErrorAccumulator reports failures as they happen and remembers that one
// occurred. It never stops a traversal.
type ErrorAccumulator struct {
	log   gols.Logger
	count int
}

// NewErrorAccumulator creates an accumulator reporting through log.
func NewErrorAccumulator(log gols.Logger) *ErrorAccumulator {
	return &ErrorAccumulator{log: log}
}

// Report logs err and marks the traversal as failed.
func (a *ErrorAccumulator) Report(err error) {
	a.count++
	a.log.Error("%s", err.Error())
}

// Failed reports whether any error was reported.
func (a *ErrorAccumulator) Failed() bool {
	return a.count > 0
}

// Count returns the number of reported errors.
func (a *ErrorAccumulator) Count() int {
	return a.count
}
