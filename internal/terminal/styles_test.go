package terminal

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStyles_ForcedProfileEmitsEscapes(t *testing.T) {
	s := NewStyles(&bytes.Buffer{}, true)

	out := s.Render(fs.ModeDir|0755, "src")
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "src")
	assert.Equal(t, 3, lipgloss.Width(out), "escapes take no cells")
}

func TestStyles_RegularFileUnchanged(t *testing.T) {
	s := NewStyles(&bytes.Buffer{}, true)
	assert.Equal(t, "notes.txt", s.Render(0644, "notes.txt"))
}

func TestStyles_UnforcedBufferIsPlain(t *testing.T) {
	s := NewStyles(&bytes.Buffer{}, false)
	assert.Equal(t, "src", s.Render(fs.ModeDir|0755, "src"))
	assert.Equal(t, "run.sh", s.Render(0755, "run.sh"))
}
