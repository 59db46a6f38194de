package listing

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/gols/pkg/gols"
)

// Arrange writes the formatted lines of one batch to w.
// Column layouts measure cells in terminal columns and never pad the last
// cell of a row.
func Arrange(w io.Writer, lines []string, mode gols.OutputMode, width int) error {
	if len(lines) == 0 {
		return nil
	}

	var b strings.Builder
	switch mode {
	case gols.OutputCommaSeparated:
		b.WriteString(strings.Join(lines, ", "))
		b.WriteByte('\n')
	case gols.OutputColumnsDown, gols.OutputColumnsAcross:
		grid(&b, lines, mode == gols.OutputColumnsAcross, width)
	default:
		for _, line := range lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Grid returns the number of columns and rows used for n cells of the given
// widest cell width.
func Grid(n, longest, width int) (cols, rows int) {
	if n == 0 {
		return 0, 0
	}
	longest = max(longest, 1)
	cols = max(1, width/(longest+gols.ColumnGutter))
	rows = (n + cols - 1) / cols
	return cols, rows
}

func grid(b *strings.Builder, lines []string, across bool, width int) {
	cellWidths := make([]int, len(lines))
	longest := 0
	for i, line := range lines {
		cellWidths[i] = lipgloss.Width(line)
		longest = max(longest, cellWidths[i])
	}
	cols, rows := Grid(len(lines), longest, width)
	pitch := max(longest, 1) + gols.ColumnGutter

	for r := 0; r < rows; r++ {
		row := make([]int, 0, cols)
		for c := 0; c < cols; c++ {
			idx := c*rows + r
			if across {
				idx = r*cols + c
			}
			if idx >= len(lines) {
				break
			}
			row = append(row, idx)
		}
		for i, idx := range row {
			b.WriteString(lines[idx])
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", pitch-cellWidths[idx]))
			}
		}
		b.WriteByte('\n')
	}
}
