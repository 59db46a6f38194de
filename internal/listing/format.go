package listing

import (
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/vvka-141/gols/internal/terminal"
	"github.com/vvka-141/gols/pkg/gols"
)

const (
	recentLayout = "Jan _2 15:04"
	oldLayout    = "Jan _2  2006"
)

// Formatter renders one entry as a single line without a newline.
type Formatter struct {
	cfg    *gols.ListConfig
	now    time.Time
	styles *terminal.Styles
}

// NewFormatter creates a formatter. now is the reference for recent
// timestamps; styles may be nil to disable colour.
func NewFormatter(cfg *gols.ListConfig, now time.Time, styles *terminal.Styles) *Formatter {
	return &Formatter{cfg: cfg, now: now, styles: styles}
}

// Format renders fi using the widths of its batch.
func (f *Formatter) Format(fi gols.FileInfo, w Widths) string {
	var b strings.Builder

	if f.cfg.ShowInode {
		b.WriteString(padLeft(strconv.FormatUint(fi.Inode, 10), w.Inode))
		b.WriteByte(' ')
	}
	if f.cfg.ShowBlocks {
		b.WriteString(padLeft(strconv.FormatInt(fi.Blocks, 10), w.Blocks))
		b.WriteByte(' ')
	}
	if f.cfg.Long.Enabled {
		b.WriteString(ModeString(fi.Mode))
		b.WriteByte(' ')
		b.WriteString(padLeft(strconv.FormatUint(fi.Links, 10), w.Links))
		b.WriteByte(' ')
		// An omitted owner or group keeps its separator as an empty field.
		if !f.cfg.Long.NoOwner {
			b.WriteString(f.text(padRight(fi.Owner, w.Owner)))
		}
		b.WriteByte(' ')
		if !f.cfg.Long.NoGroup {
			b.WriteString(f.text(padRight(fi.Group, w.Group)))
		}
		b.WriteByte(' ')
		b.WriteString(padLeft(strconv.FormatInt(fi.Size, 10), w.Size))
		b.WriteString("  ")
		b.WriteString(FormatTime(fi.Time, f.now))
		b.WriteString("  ")
	}

	name := f.text(fi.Name)
	if f.styles != nil {
		name = f.styles.Render(fi.Mode, name)
	}
	b.WriteString(name)
	b.WriteString(ClassifySuffix(f.cfg.Classify, fi.Mode))

	if f.cfg.Long.Enabled && fi.LinkTarget != nil {
		b.WriteString(" -> ")
		b.WriteString(f.text(*fi.LinkTarget))
	}

	return b.String()
}

func (f *Formatter) text(s string) string {
	if f.cfg.PrintableOnly {
		return Printable(s)
	}
	return s
}

// ModeString renders the type character followed by the nine permission bits.
func ModeString(mode fs.FileMode) string {
	const rwx = "rwxrwxrwx"
	buf := []byte("----------")
	buf[0] = typeChar(mode)
	perm := mode.Perm()
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			buf[i+1] = rwx[i]
		}
	}
	return string(buf)
}

func typeChar(mode fs.FileMode) byte {
	switch {
	case mode.IsDir():
		return 'd'
	case mode&fs.ModeSymlink != 0:
		return 'l'
	case mode&fs.ModeNamedPipe != 0:
		return 'p'
	case mode&fs.ModeSocket != 0:
		return 's'
	case mode&fs.ModeCharDevice != 0:
		return 'c'
	case mode&fs.ModeDevice != 0:
		return 'b'
	default:
		return '-'
	}
}

// FormatTime renders t with a clock time when it is less than six months
// older than now, otherwise with the year. Future times count as recent.
func FormatTime(t, now time.Time) string {
	if now.Sub(t) < gols.RecentWindow {
		return t.Local().Format(recentLayout)
	}
	return t.Local().Format(oldLayout)
}

// ClassifySuffix returns the indicator appended to a name.
func ClassifySuffix(mode gols.ClassifyMode, fm fs.FileMode) string {
	if mode == gols.ClassifyNone {
		return ""
	}
	if fm.IsDir() {
		return "/"
	}
	if mode != gols.ClassifyAll {
		return ""
	}
	switch {
	case fm&0100 != 0:
		return "*"
	case fm&fs.ModeNamedPipe != 0:
		return "|"
	case fm&fs.ModeSymlink != 0:
		return "@"
	}
	return ""
}

// Printable replaces every byte outside printable ASCII with '?'.
func Printable(s string) string {
	buf := []byte(s)
	for i, c := range buf {
		if c < 0x20 || c > 0x7e {
			buf[i] = '?'
		}
	}
	return string(buf)
}

func padLeft(s string, width int) string {
	if n := width - len(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

func padRight(s string, width int) string {
	if n := width - runeLen(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
