package terminal

import (
	"io"
	"io/fs"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette, close to the common dircolors defaults.
var (
	ColorDirectory  = lipgloss.Color("33")  // Blue
	ColorSymlink    = lipgloss.Color("37")  // Cyan
	ColorExecutable = lipgloss.Color("34")  // Green
	ColorFIFO       = lipgloss.Color("178") // Yellow
	ColorDevice     = lipgloss.Color("172") // Orange
	ColorSocket     = lipgloss.Color("170") // Magenta
)

// Styles renders entry names according to their file type.
type Styles struct {
	directory  lipgloss.Style
	symlink    lipgloss.Style
	executable lipgloss.Style
	fifo       lipgloss.Style
	device     lipgloss.Style
	socket     lipgloss.Style
}

// NewStyles creates styles rendering for w. When force is set the ANSI 256
// colour profile is used regardless of what w supports.
func NewStyles(w io.Writer, force bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if force {
		r.SetColorProfile(termenv.ANSI256)
	}
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return &Styles{
		directory:  base.Foreground(ColorDirectory).Bold(true),
		symlink:    base.Foreground(ColorSymlink).Bold(true),
		executable: base.Foreground(ColorExecutable).Bold(true),
		fifo:       base.Foreground(ColorFIFO),
		device:     base.Foreground(ColorDevice).Bold(true),
		socket:     base.Foreground(ColorSocket).Bold(true),
	}
}

// Render styles name for an entry with the given mode. Regular
// non-executable files are returned unchanged.
func (s *Styles) Render(mode fs.FileMode, name string) string {
	switch {
	case mode.IsDir():
		return s.directory.Render(name)
	case mode&fs.ModeSymlink != 0:
		return s.symlink.Render(name)
	case mode&fs.ModeNamedPipe != 0:
		return s.fifo.Render(name)
	case mode&fs.ModeSocket != 0:
		return s.socket.Render(name)
	case mode&fs.ModeDevice != 0:
		return s.device.Render(name)
	case mode&0100 != 0:
		return s.executable.Render(name)
	default:
		return name
	}
}
