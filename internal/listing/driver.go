package listing

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/vvka-141/gols/internal/files/filesystem"
	"github.com/vvka-141/gols/internal/identity"
	"github.com/vvka-141/gols/internal/logging"
	"github.com/vvka-141/gols/internal/terminal"
	"github.com/vvka-141/gols/pkg/gols"
)

// Options carries the collaborators of a Driver.
type Options struct {
	Provider filesystem.Provider
	Resolver identity.Resolver
	Logger   gols.Logger

	// Now is the reference time for long-form timestamps. Zero means time.Now().
	Now time.Time

	// Styles colours entry names when non-nil.
	Styles *terminal.Styles

	// Names orders entry names. Nil means ByteOrder.
	Names NameOrder
}

// TraversalState is the mutable state of one Run.
type TraversalState struct {
	Guard  *LoopGuard
	Errors *ErrorAccumulator

	headers bool
	emitted bool
}

// Driver lists operands and directory trees.
type Driver struct {
	cfg  *gols.ListConfig
	out  io.Writer
	opts Options
	log  gols.Logger
	cmp  Comparator

	state     *TraversalState
	collector *Collector
	formatter *Formatter
}

// NewDriver creates a driver writing listings to out.
func NewDriver(cfg *gols.ListConfig, out io.Writer, opts Options) *Driver {
	if opts.Provider == nil {
		opts.Provider = filesystem.NewOSFileSystem()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNullLogger()
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	return &Driver{
		cfg:       cfg,
		out:       out,
		opts:      opts,
		log:       opts.Logger,
		cmp:       NewComparator(cfg, opts.Names),
		formatter: NewFormatter(cfg, opts.Now, opts.Styles),
	}
}

// State returns the state of the most recent Run, or nil before the first.
func (d *Driver) State() *TraversalState {
	return d.state
}

// Run lists operands, or "." when there are none. Per-path failures are
// reported through the logger and do not stop the listing; Run then returns
// gols.ErrListingFailed. Any other error means output could not be written.
func (d *Driver) Run(operands []string) error {
	if len(operands) == 0 {
		operands = []string{"."}
	}

	errs := NewErrorAccumulator(d.log)
	d.state = &TraversalState{
		Guard:   NewLoopGuard(d.opts.Provider),
		Errors:  errs,
		headers: d.cfg.Dir == gols.DirRecurse || len(operands) > 1,
	}
	d.collector = NewCollector(d.cfg, d.opts.Provider, d.opts.Resolver, errs)

	files := NewSortBatch(d.cmp)
	dirs := NewSortBatch(d.cmp)
	for _, op := range operands {
		info, err := d.query(op, d.followOperands())
		if err != nil {
			errs.Report(&PathError{Kind: gols.ErrQueryFailed, Path: op, Err: err})
			continue
		}
		fi := d.collector.Collect(op, op, info)
		if fi.IsDir() && d.cfg.Dir != gols.DirNoEnter {
			dirs.Insert(fi)
		} else {
			files.Insert(fi)
		}
	}

	if err := d.emit(files.Entries()); err != nil {
		return err
	}
	for _, dir := range dirs.Entries() {
		if err := d.listDir(dir.Path); err != nil {
			return err
		}
	}

	if errs.Failed() {
		return gols.ErrListingFailed
	}
	return nil
}

func (d *Driver) listDir(path string) error {
	errs := d.state.Errors

	dir, err := d.opts.Provider.Open(path)
	if err != nil {
		errs.Report(&PathError{Kind: gols.ErrEnumerationFailed, Path: path, Err: err})
		return nil
	}

	cycle, err := d.state.Guard.Enter(path)
	if err != nil {
		errs.Report(&PathError{Kind: gols.ErrQueryFailed, Path: path, Err: err})
		return nil
	}
	if cycle {
		d.log.Verbose("loop at %s, not entering", path)
		errs.Report(&PathError{Kind: gols.ErrLoopDetected, Path: path})
		return nil
	}
	defer d.state.Guard.Leave()
	d.log.Verbose("entering %s (depth %d)", path, d.state.Guard.Depth())

	if d.state.headers {
		if err := d.header(path); err != nil {
			return err
		}
	}

	names, enumErr := dir.Names()
	if d.cfg.Hidden == gols.HiddenAll {
		names = append([]string{".", ".."}, names...)
	}

	entries := NewSortBatch(d.cmp)
	subdirs := NewSortBatch(d.cmp)
	var raw int64
	for _, name := range names {
		if !d.visible(name) {
			continue
		}
		child := ChildPath(path, name)
		info, err := d.query(child, d.cfg.Link == gols.LinkFollowAll)
		if err != nil {
			errs.Report(&PathError{Kind: gols.ErrQueryFailed, Path: child, Err: err})
			continue
		}
		fi := d.collector.Collect(child, name, info)
		entries.Insert(fi)
		raw += fi.RawBlocks
		if d.cfg.Dir == gols.DirRecurse && fi.IsDir() && !isDotEntry(name) {
			subdirs.Insert(fi)
		}
	}

	if d.cfg.ShowBlocks || d.cfg.Long.Enabled {
		if _, err := fmt.Fprintf(d.out, "total %d\n", BlockCount(raw, d.cfg.BlockSize)); err != nil {
			return err
		}
		d.state.emitted = true
	}
	if err := d.emit(entries.Entries()); err != nil {
		return err
	}

	if enumErr != nil {
		errs.Report(&PathError{Kind: gols.ErrEnumerationFailed, Path: path, Err: enumErr})
	}

	for _, sub := range subdirs.Entries() {
		if err := d.listDir(sub.Path); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) header(path string) error {
	prefix := ""
	if d.state.emitted {
		prefix = "\n"
	}
	name := path
	if d.cfg.PrintableOnly {
		name = Printable(name)
	}
	d.state.emitted = true
	_, err := fmt.Fprintf(d.out, "%s%s:\n", prefix, name)
	return err
}

func (d *Driver) emit(entries []gols.FileInfo) error {
	if len(entries) == 0 {
		return nil
	}
	widths := ComputeWidths(entries)
	lines := make([]string, len(entries))
	for i, fi := range entries {
		lines[i] = d.formatter.Format(fi, widths)
	}
	d.state.emitted = true
	return Arrange(d.out, lines, d.layout(), d.cfg.Width)
}

func (d *Driver) layout() gols.OutputMode {
	if d.cfg.Long.Enabled || d.cfg.Output == gols.OutputDefault {
		return gols.OutputOnePerLine
	}
	return d.cfg.Output
}

func (d *Driver) followOperands() bool {
	switch d.cfg.Link {
	case gols.LinkFollowNever:
		return false
	default:
		return true
	}
}

// query stats path, following a symlink when follow is set. A dangling
// link is reported as the link itself.
func (d *Driver) query(path string, follow bool) (fs.FileInfo, error) {
	if !follow {
		return d.opts.Provider.Lstat(path)
	}
	info, err := d.opts.Provider.Stat(path)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return info, err
	}
	if linfo, lerr := d.opts.Provider.Lstat(path); lerr == nil && linfo.Mode()&fs.ModeSymlink != 0 {
		return linfo, nil
	}
	return nil, err
}

func (d *Driver) visible(name string) bool {
	switch d.cfg.Hidden {
	case gols.HiddenOmit:
		return !strings.HasPrefix(name, ".")
	case gols.HiddenAlmostAll:
		return !isDotEntry(name)
	default:
		return true
	}
}
