package listing

import (
	"unicode/utf8"

	"github.com/vvka-141/gols/pkg/gols"
)

// Widths holds the column widths of one batch: the digit counts of the
// numeric fields and the character lengths of owner and group.
type Widths struct {
	Inode  int
	Blocks int
	Links  int
	Owner  int
	Group  int
	Size   int
}

// ComputeWidths returns the maximum widths over entries. An empty batch
// yields all zeros.
func ComputeWidths(entries []gols.FileInfo) Widths {
	var w Widths
	for _, fi := range entries {
		w.Inode = max(w.Inode, digits(fi.Inode))
		w.Blocks = max(w.Blocks, digits(nonNegative(fi.Blocks)))
		w.Links = max(w.Links, digits(fi.Links))
		w.Owner = max(w.Owner, runeLen(fi.Owner))
		w.Group = max(w.Group, runeLen(fi.Group))
		w.Size = max(w.Size, digits(nonNegative(fi.Size)))
	}
	return w
}

// digits returns the number of decimal digits of n; zero has one digit.
func digits(n uint64) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

func nonNegative(n int64) uint64 {
	if n < 0 {
		return 0
	}
	return uint64(n)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
