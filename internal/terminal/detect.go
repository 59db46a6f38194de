// Package terminal detects output terminal properties and styles entry names.
package terminal

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/vvka-141/gols/pkg/gols"
)

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the column count of the terminal behind f.
// The second result is false when f is not a terminal or its size is unknown.
func TerminalWidth(f *os.File) (int, bool) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

// ParseColumns parses a COLUMNS value. Only positive decimal integers are accepted.
func ParseColumns(value string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// ResolveWidth picks the output width.
//
// Precedence:
//   - numeric COLUMNS value
//   - explicit width (flag), when positive
//   - terminal width, when detect reports one
//   - configured width, when positive
//   - gols.DefaultWidth
func ResolveWidth(columns string, explicit int, detect func() (int, bool), configured int) int {
	if n, ok := ParseColumns(columns); ok {
		return n
	}
	if explicit > 0 {
		return explicit
	}
	if detect != nil {
		if n, ok := detect(); ok {
			return n
		}
	}
	if configured > 0 {
		return configured
	}
	return gols.DefaultWidth
}

// ColorEnabled decides whether names are styled.
// In auto mode colour requires a terminal and an unset NO_COLOR.
func ColorEnabled(mode gols.ColorMode, isTerminal bool) bool {
	switch mode {
	case gols.ColorAlways:
		return true
	case gols.ColorAuto:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return isTerminal
	default:
		return false
	}
}
