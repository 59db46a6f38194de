package listing

import (
	"io/fs"
	"strconv"
	"time"

	"github.com/vvka-141/gols/internal/files/filesystem"
	"github.com/vvka-141/gols/internal/identity"
	"github.com/vvka-141/gols/pkg/gols"
)

// Collector turns provider metadata into gols.FileInfo snapshots.
type Collector struct {
	cfg  *gols.ListConfig
	fs   filesystem.Provider
	ids  identity.Resolver
	errs *ErrorAccumulator
}

// NewCollector creates a collector. Link read failures are reported to errs.
func NewCollector(cfg *gols.ListConfig, fs filesystem.Provider, ids identity.Resolver, errs *ErrorAccumulator) *Collector {
	return &Collector{cfg: cfg, fs: fs, ids: ids, errs: errs}
}

// Collect builds the snapshot for an entry already queried as info.
// path is the raw query path and name the display name.
func (c *Collector) Collect(path, name string, info fs.FileInfo) gols.FileInfo {
	attrs := filesystem.AttributesOf(info)

	fi := gols.FileInfo{
		Name:      name,
		Path:      path,
		Mode:      info.Mode(),
		Size:      info.Size(),
		RawBlocks: attrs.Blocks,
		Blocks:    BlockCount(attrs.Blocks, c.cfg.BlockSize),
		Links:     attrs.Links,
		Inode:     attrs.Inode,
		Time:      SelectTime(c.cfg.Time, info, attrs),
		Owner:     c.owner(attrs.UID),
		Group:     c.group(attrs.GID),
	}

	if fi.IsSymlink() {
		target, err := c.fs.Readlink(path)
		if err != nil {
			c.errs.Report(&PathError{Kind: gols.ErrLinkReadFailed, Path: path, Err: err})
		} else {
			fi.LinkTarget = &target
		}
	}

	return fi
}

// Names are only looked up for long listings; other layouts never show them.
func (c *Collector) owner(uid uint32) string {
	if !c.cfg.Long.Enabled || c.cfg.Long.NumericIDs || c.ids == nil {
		return strconv.FormatUint(uint64(uid), 10)
	}
	name, err := c.ids.User(uid)
	if err != nil {
		return strconv.FormatUint(uint64(uid), 10)
	}
	return name
}

func (c *Collector) group(gid uint32) string {
	if !c.cfg.Long.Enabled || c.cfg.Long.NumericIDs || c.ids == nil {
		return strconv.FormatUint(uint64(gid), 10)
	}
	name, err := c.ids.Group(gid)
	if err != nil {
		return strconv.FormatUint(uint64(gid), 10)
	}
	return name
}

// SelectTime picks the timestamp named by mode.
func SelectTime(mode gols.TimeMode, info fs.FileInfo, attrs filesystem.Attributes) time.Time {
	switch mode {
	case gols.TimeAccessed:
		return attrs.AccessTime
	case gols.TimeStatusChanged:
		return attrs.ChangeTime
	default:
		return info.ModTime()
	}
}

// BlockCount converts 512-byte blocks to units of blockSize, rounding up.
func BlockCount(raw, blockSize int64) int64 {
	if blockSize <= 0 {
		blockSize = gols.DefaultBlockSize
	}
	bytes := raw * gols.RawBlockSize
	return (bytes + blockSize - 1) / blockSize
}
