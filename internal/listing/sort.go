package listing

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vvka-141/gols/pkg/gols"
)

// NameOrder compares two names, returning a negative, zero or positive value.
type NameOrder func(a, b string) int

// ByteOrder compares names byte by byte, as the C locale does.
func ByteOrder(a, b string) int {
	return strings.Compare(a, b)
}

// LocaleOrder returns the name order for a locale such as "en_US.UTF-8".
// The C and POSIX locales, and anything that does not parse as a language
// tag, use ByteOrder.
func LocaleOrder(locale string) NameOrder {
	tag, ok := localeTag(locale)
	if !ok {
		return ByteOrder
	}
	c := collate.New(tag)
	return func(a, b string) int {
		if r := c.CompareString(a, b); r != 0 {
			return r
		}
		// collation may consider distinct names equal
		return strings.Compare(a, b)
	}
}

// LocaleFromEnv returns the collation locale following the usual
// LC_ALL, LC_COLLATE, LANG precedence.
func LocaleFromEnv(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_COLLATE", "LANG"} {
		if v := getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func localeTag(locale string) (language.Tag, bool) {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// Comparator orders entries according to a ListConfig.
type Comparator struct {
	mode    gols.SortMode
	reverse bool
	names   NameOrder
}

// NewComparator creates a comparator for cfg. A nil names uses ByteOrder.
func NewComparator(cfg *gols.ListConfig, names NameOrder) Comparator {
	if names == nil {
		names = ByteOrder
	}
	return Comparator{
		mode:    cfg.Sort,
		reverse: cfg.Reverse && cfg.Sort != gols.SortUnsorted,
		names:   names,
	}
}

// Compare returns a negative value when a sorts before b.
// Size and time order put larger and newer entries first; ties fall back
// to name order.
func (c Comparator) Compare(a, b gols.FileInfo) int {
	r := c.compare(a, b)
	if c.reverse {
		return -r
	}
	return r
}

func (c Comparator) compare(a, b gols.FileInfo) int {
	switch c.mode {
	case gols.SortUnsorted:
		return 0
	case gols.SortSize:
		if a.Size != b.Size {
			if a.Size > b.Size {
				return -1
			}
			return 1
		}
	case gols.SortTime:
		if !a.Time.Equal(b.Time) {
			if a.Time.After(b.Time) {
				return -1
			}
			return 1
		}
	}
	return c.names(a.Name, b.Name)
}

// SortBatch keeps entries ordered as they are inserted.
// Entries that compare equal keep their insertion order.
type SortBatch struct {
	cmp     Comparator
	entries []gols.FileInfo
}

// NewSortBatch creates an empty batch ordered by cmp.
func NewSortBatch(cmp Comparator) *SortBatch {
	return &SortBatch{cmp: cmp}
}

// Insert places fi after every entry that does not sort after it.
func (b *SortBatch) Insert(fi gols.FileInfo) {
	if b.cmp.mode == gols.SortUnsorted {
		b.entries = append(b.entries, fi)
		return
	}
	i := sort.Search(len(b.entries), func(i int) bool {
		return b.cmp.Compare(fi, b.entries[i]) < 0
	})
	b.entries = append(b.entries, gols.FileInfo{})
	copy(b.entries[i+1:], b.entries[i:])
	b.entries[i] = fi
}

// Entries returns the ordered entries.
func (b *SortBatch) Entries() []gols.FileInfo {
	return b.entries
}

// Len returns the number of entries in the batch.
func (b *SortBatch) Len() int {
	return len(b.entries)
}
