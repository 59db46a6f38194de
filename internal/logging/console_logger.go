// Package logging provides concrete implementations of the gols.Logger interface.
package logging

import (
	"fmt"
	"io"
	"sync"
)

// ConsoleLogger writes diagnostics to a writer (stderr in production),
// each line prefixed with the program name.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	w       io.Writer
	program string
	verbose bool
	mu      sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(w io.Writer, program string, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		w:       w,
		program: program,
		verbose: verbose,
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("[VERBOSE] ", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write("", format, args)
}

func (l *ConsoleLogger) write(tag, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	fmt.Fprintf(l.w, "%s: %s%s\n", l.program, tag, msg)
}
