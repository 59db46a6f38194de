package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/vvka-141/gols/pkg/gols"
)

// letterOption describes one single-letter listing option.
type letterOption struct {
	letter rune
	name   string
	usage  string
}

// letterOptions lists the listing options in help order.
var letterOptions = []letterOption{
	{'A', "almost-all", "list dotfiles except . and .."},
	{'a', "all", "list all entries including . and .."},
	{'C', "columns", "list entries in columns, filled down"},
	{'x', "across", "list entries in columns, filled across"},
	{'m', "commas", "list entries separated by commas"},
	{'1', "one-per-line", "list one entry per line"},
	{'l', "long", "use the long listing format"},
	{'g', "no-owner", "long format without the owner column"},
	{'o', "no-group", "long format without the group column"},
	{'n', "numeric-uid-gid", "long format with numeric owner and group ids"},
	{'i', "inode", "print the inode number of each entry"},
	{'s', "size", "print the allocated size of each entry in blocks"},
	{'k', "kibibytes", "use 1024-byte blocks"},
	{'q', "hide-control-chars", "print ? instead of non-printable characters"},
	{'H', "dereference-command-line", "follow symbolic links named on the command line"},
	{'L', "dereference", "follow all symbolic links"},
	{'R', "recursive", "list subdirectories recursively"},
	{'d', "directory", "list directories themselves, not their contents"},
	{'S', "sort-size", "sort by size, largest first"},
	{'t', "sort-time", "sort by time, newest first"},
	{'f', "unsorted", "do not sort; implies -a and disables -r"},
	{'r', "reverse", "reverse the sort order"},
	{'c', "ctime", "use the status change time"},
	{'u', "atime", "use the access time"},
	{'F', "classify", "append an indicator (one of /*|@) to entries"},
	{'p', "indicator-slash", "append / to directories"},
}

// letterValue is a boolean pflag.Value that records the order in which
// listing options are given.
type letterValue struct {
	letter rune
	seq    *[]rune
}

func (v *letterValue) String() string { return "false" }

func (v *letterValue) Type() string { return "bool" }

func (v *letterValue) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*v.seq = append(*v.seq, v.letter)
	}
	return nil
}

// registerLetterFlags adds every listing option to fs, appending letters to
// seq as they are parsed.
func registerLetterFlags(fs *pflag.FlagSet, seq *[]rune) {
	for _, opt := range letterOptions {
		f := fs.VarPF(&letterValue{letter: opt.letter, seq: seq}, opt.name, string(opt.letter), opt.usage)
		f.NoOptDefVal = "true"
	}
}

// flagState tracks option interactions that depend on earlier options.
type flagState struct {
	linkExplicit bool
}

// Apply applies listing option letters to cfg in order. Later options
// override earlier ones.
func Apply(cfg *gols.ListConfig, letters []rune) error {
	var st flagState
	for _, r := range letters {
		if err := applyLetter(cfg, &st, r); err != nil {
			return err
		}
	}
	return nil
}

func applyLetter(cfg *gols.ListConfig, st *flagState, r rune) error {
	switch r {
	case 'A':
		cfg.Hidden = gols.HiddenAlmostAll
	case 'a':
		cfg.Hidden = gols.HiddenAll
	case 'C':
		setLayout(cfg, gols.OutputColumnsDown)
	case 'x':
		setLayout(cfg, gols.OutputColumnsAcross)
	case 'm':
		setLayout(cfg, gols.OutputCommaSeparated)
	case '1':
		cfg.Output = gols.OutputOnePerLine
	case 'l':
		setLong(cfg)
		neverFollow(cfg, st)
	case 'g':
		setLong(cfg)
		cfg.Long.NoOwner = true
	case 'o':
		setLong(cfg)
		cfg.Long.NoGroup = true
	case 'n':
		setLong(cfg)
		cfg.Long.NumericIDs = true
	case 'i':
		cfg.ShowInode = true
	case 's':
		cfg.ShowBlocks = true
	case 'k':
		cfg.BlockSize = gols.KibiBlockSize
	case 'q':
		cfg.PrintableOnly = true
	case 'H':
		cfg.Link = gols.LinkFollowOperand
		st.linkExplicit = true
	case 'L':
		cfg.Link = gols.LinkFollowAll
		st.linkExplicit = true
	case 'R':
		cfg.Dir = gols.DirRecurse
	case 'd':
		cfg.Dir = gols.DirNoEnter
		neverFollow(cfg, st)
	case 'S':
		if cfg.Sort != gols.SortUnsorted {
			cfg.Sort = gols.SortSize
		}
	case 't':
		if cfg.Sort != gols.SortUnsorted {
			cfg.Sort = gols.SortTime
		}
	case 'f':
		cfg.Sort = gols.SortUnsorted
		cfg.Hidden = gols.HiddenAll
	case 'r':
		cfg.Reverse = true
	case 'c':
		cfg.Time = gols.TimeStatusChanged
	case 'u':
		cfg.Time = gols.TimeAccessed
	case 'F':
		cfg.Classify = gols.ClassifyAll
		neverFollow(cfg, st)
	case 'p':
		cfg.Classify = gols.ClassifyDirs
	default:
		return fmt.Errorf("unknown option -%c: %w", r, gols.ErrInvalidConfig)
	}
	return nil
}

func setLayout(cfg *gols.ListConfig, mode gols.OutputMode) {
	cfg.Output = mode
	cfg.Long.Enabled = false
}

func setLong(cfg *gols.ListConfig) {
	cfg.Long.Enabled = true
	cfg.Output = gols.OutputOnePerLine
}

func neverFollow(cfg *gols.ListConfig, st *flagState) {
	if !st.linkExplicit {
		cfg.Link = gols.LinkFollowNever
	}
}

// Finalize resolves the modes left at their defaults once all options are
// applied. isTerminal reports whether stdout is a terminal.
func Finalize(cfg *gols.ListConfig, isTerminal bool) {
	if cfg.Sort == gols.SortUnsorted {
		cfg.Reverse = false
	}
	if cfg.Link == gols.LinkDefault {
		cfg.Link = gols.LinkFollowOperand
	}
	if cfg.Output == gols.OutputDefault {
		if isTerminal {
			cfg.Output = gols.OutputColumnsDown
		} else {
			cfg.Output = gols.OutputOnePerLine
		}
	}
}
