package listing

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/gols/internal/files/filesystem"
	"github.com/vvka-141/gols/internal/logging"
	"github.com/vvka-141/gols/pkg/gols"
)

type run struct {
	stdout string
	stderr string
	err    error
	state  *TraversalState
}

func listConfig(mutate ...func(*gols.ListConfig)) gols.ListConfig {
	cfg := gols.DefaultListConfig()
	cfg.Output = gols.OutputOnePerLine
	for _, m := range mutate {
		m(&cfg)
	}
	return cfg
}

func runDriver(t *testing.T, cfg gols.ListConfig, mfs *filesystem.MemoryFileSystem, operands ...string) run {
	t.Helper()
	var stdout, stderr bytes.Buffer
	d := NewDriver(&cfg, &stdout, Options{
		Provider: mfs,
		Resolver: testIDs,
		Logger:   logging.NewConsoleLogger(&stderr, "ls", false),
		Now:      testNow,
	})
	err := d.Run(operands)
	return run{stdout: stdout.String(), stderr: stderr.String(), err: err, state: d.State()}
}

func TestDriver_SortExamples(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("b", "0123456789")
	mfs.AddFile("a", "abc")

	r := runDriver(t, listConfig(), mfs)
	require.NoError(t, r.err)
	assert.Equal(t, "a\nb\n", r.stdout)

	r = runDriver(t, listConfig(func(c *gols.ListConfig) { c.Sort = gols.SortSize }), mfs)
	assert.Equal(t, "b\na\n", r.stdout)

	r = runDriver(t, listConfig(func(c *gols.ListConfig) { c.Sort = gols.SortSize; c.Reverse = true }), mfs)
	assert.Equal(t, "a\nb\n", r.stdout)

	r = runDriver(t, listConfig(func(c *gols.ListConfig) { c.Sort = gols.SortUnsorted }), mfs)
	assert.Equal(t, "b\na\n", r.stdout, "unsorted keeps enumeration order")
}

func TestDriver_HiddenModes(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("visible", "")
	mfs.AddFile(".hidden", "")

	tests := []struct {
		mode gols.HiddenMode
		want string
	}{
		{gols.HiddenOmit, "visible\n"},
		{gols.HiddenAlmostAll, ".hidden\nvisible\n"},
		{gols.HiddenAll, ".\n..\n.hidden\nvisible\n"},
	}

	for _, tt := range tests {
		r := runDriver(t, listConfig(func(c *gols.ListConfig) { c.Hidden = tt.mode }), mfs)
		require.NoError(t, r.err)
		assert.Equal(t, tt.want, r.stdout, "hidden mode %d", tt.mode)
	}
}

func TestDriver_LineCountMatchesVisibleEntries(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	for _, n := range []string{"one", "two", ".three", "four", "five"} {
		mfs.AddFile(n, "")
	}
	mfs.AddDir("six")

	r := runDriver(t, listConfig(), mfs)
	require.NoError(t, r.err)
	assert.Equal(t, 5, strings.Count(r.stdout, "\n"))
}

func TestDriver_ClassifyDirectory(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddDir("bin")
	mfs.SetMode("bin", fs.ModeDir|0755)

	r := runDriver(t, listConfig(func(c *gols.ListConfig) { c.Classify = gols.ClassifyAll }), mfs)
	assert.Equal(t, "bin/\n", r.stdout, "directory check precedes executable check")
}

func TestDriver_LongFormWithTotal(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFileWithTime("recent", "hello", testNow.AddDate(0, 0, -10))
	mfs.AddFileWithTime("old", "", testNow.AddDate(0, 0, -200))
	mfs.SetOwner("recent", 1000, 100)
	mfs.SetOwner("old", 0, 0)
	mfs.AddSymlink("link", "recent")
	mfs.SetOwner("link", 1000, 100)
	mfs.SetTimes("link", testNow, testNow, testNow)

	r := runDriver(t, listConfig(func(c *gols.ListConfig) { c.Long.Enabled = true }), mfs)
	require.NoError(t, r.err)

	want := "total 2\n" +
		"lrwxrwxrwx 1 alice users 6  Oct 14 12:00  link -> recent\n" +
		"-rw-r--r-- 1 0     0     0  Mar 28  2026  old\n" +
		"-rw-r--r-- 1 alice users 5  Oct  4 12:00  recent\n"
	assert.Equal(t, want, r.stdout)
}

func TestDriver_BlocksAndKibi(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("a", "")
	mfs.SetSize("a", 1000, 2)
	mfs.AddFile("b", "")
	mfs.SetSize("b", 100, 1)

	r := runDriver(t, listConfig(func(c *gols.ListConfig) { c.ShowBlocks = true }), mfs)
	assert.Equal(t, "total 3\n2 a\n1 b\n", r.stdout)

	r = runDriver(t, listConfig(func(c *gols.ListConfig) { c.ShowBlocks = true; c.BlockSize = gols.KibiBlockSize }), mfs)
	assert.Equal(t, "total 2\n1 a\n1 b\n", r.stdout)
}

func TestDriver_InodeColumn(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("a", "")
	mfs.SetInode("a", 7)
	mfs.AddFile("b", "")
	mfs.SetInode("b", 1234)

	r := runDriver(t, listConfig(func(c *gols.ListConfig) { c.ShowInode = true }), mfs)
	assert.Equal(t, "   7 a\n1234 b\n", r.stdout)
}

func TestDriver_OperandsFilesBeforeDirectories(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("dir/inner", "")
	mfs.AddFile("zfile", "")
	mfs.AddFile("afile", "")

	r := runDriver(t, listConfig(), mfs, "dir", "zfile", "afile")
	require.NoError(t, r.err)
	assert.Equal(t, "afile\nzfile\n\ndir:\ninner\n", r.stdout)
}

func TestDriver_SingleDirectoryHasNoHeader(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("dir/inner", "")

	r := runDriver(t, listConfig(), mfs, "dir/")
	assert.Equal(t, "inner\n", r.stdout)
}

func TestDriver_DirectoryAsEntry(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("dir/inner", "")

	r := runDriver(t, listConfig(func(c *gols.ListConfig) { c.Dir = gols.DirNoEnter }), mfs, "dir")
	assert.Equal(t, "dir\n", r.stdout)
}

func TestDriver_Recursive(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("a", "")
	mfs.AddFile("sub/x", "")
	mfs.AddDir("sub/deeper")
	mfs.AddDir("empty")

	r := runDriver(t, listConfig(func(c *gols.ListConfig) { c.Dir = gols.DirRecurse; c.Hidden = gols.HiddenAll }), mfs)
	require.NoError(t, r.err)

	want := ".:\n.\n..\na\nempty\nsub\n" +
		"\n./empty:\n.\n..\n" +
		"\n./sub:\n.\n..\ndeeper\nx\n" +
		"\n./sub/deeper:\n.\n..\n"
	assert.Equal(t, want, r.stdout)
	assert.Equal(t, 0, r.state.Guard.Depth())
}

func TestDriver_LoopDetected(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("top/file", "")
	mfs.AddSymlink("top/again", ".")

	r := runDriver(t, listConfig(func(c *gols.ListConfig) {
		c.Dir = gols.DirRecurse
		c.Link = gols.LinkFollowAll
	}), mfs, "top")

	require.ErrorIs(t, r.err, gols.ErrListingFailed)
	assert.Equal(t, "top:\nagain\nfile\n", r.stdout)
	assert.Equal(t, "ls: 'top/again': detected directory loop\n", r.stderr)
	assert.Equal(t, 0, r.state.Guard.Depth())
}

func TestDriver_ContentsAreNotFollowedByDefault(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("real/x", "")
	mfs.AddSymlink("top/link", "../real")

	r := runDriver(t, listConfig(func(c *gols.ListConfig) {
		c.Dir = gols.DirRecurse
		c.Classify = gols.ClassifyDirs
	}), mfs, "top")
	require.NoError(t, r.err)
	assert.Equal(t, "top:\nlink\n", r.stdout, "a link to a directory is neither classified nor entered")
}

func TestDriver_OperandSymlinkFollowing(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("real/x", "")
	mfs.AddSymlink("link", "real")

	r := runDriver(t, listConfig(func(c *gols.ListConfig) { c.Link = gols.LinkFollowOperand }), mfs, "link")
	assert.Equal(t, "x\n", r.stdout)

	r = runDriver(t, listConfig(func(c *gols.ListConfig) { c.Link = gols.LinkFollowNever }), mfs, "link")
	assert.Equal(t, "link\n", r.stdout)
}

func TestDriver_DanglingOperandListsTheLink(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddSymlink("dangling", "nowhere")

	r := runDriver(t, listConfig(), mfs, "dangling")
	require.NoError(t, r.err)
	assert.Equal(t, "dangling\n", r.stdout)
}

func TestDriver_MissingOperandContinues(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("present", "")

	r := runDriver(t, listConfig(), mfs, "missing", "present")
	require.ErrorIs(t, r.err, gols.ErrListingFailed)
	assert.Equal(t, "present\n", r.stdout)
	assert.Equal(t, "ls: 'missing': file does not exist\n", r.stderr)
}

func TestDriver_EntryQueryFailure(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("a", "")
	mfs.AddFile("b", "")
	mfs.FailStat("a", fs.ErrPermission)

	r := runDriver(t, listConfig(), mfs)
	require.ErrorIs(t, r.err, gols.ErrListingFailed)
	assert.Equal(t, "b\n", r.stdout)
	assert.Equal(t, "ls: './a': permission denied\n", r.stderr)
}

func TestDriver_EnumerationFailureReportedAfterListing(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("d/a", "")
	mfs.AddFile("d/b", "")
	mfs.AddFile("d/c", "")
	mfs.AddDir("d/sub")
	mfs.FailEnumeration("d", 2, errors.New("input/output error"))

	r := runDriver(t, listConfig(func(c *gols.ListConfig) { c.Dir = gols.DirRecurse }), mfs, "d")
	require.ErrorIs(t, r.err, gols.ErrListingFailed)
	assert.Equal(t, "d:\na\nb\n", r.stdout)
	assert.Equal(t, "ls: 'd': input/output error\n", r.stderr)
}

func TestDriver_OpenFailureSkipsDirectory(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("locked/secret", "")
	mfs.AddFile("open/x", "")
	mfs.FailOpen("locked", fs.ErrPermission)

	r := runDriver(t, listConfig(), mfs, "locked", "open")
	require.ErrorIs(t, r.err, gols.ErrListingFailed)
	assert.Equal(t, "open:\nx\n", r.stdout)
	assert.Equal(t, "ls: 'locked': permission denied\n", r.stderr)
}

func TestDriver_LoopGuardReleasedAfterSiblingError(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("root/a/file", "")
	mfs.AddFile("root/b/file", "")
	mfs.FailEnumeration("root/a", 0, errors.New("input/output error"))

	r := runDriver(t, listConfig(func(c *gols.ListConfig) { c.Dir = gols.DirRecurse }), mfs, "root")
	require.ErrorIs(t, r.err, gols.ErrListingFailed)
	assert.Equal(t, "root:\na\nb\n\nroot/a:\n\nroot/b:\nfile\n", r.stdout)
	assert.Equal(t, 0, r.state.Guard.Depth())
}

func TestDriver_ColumnsAndComma(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	for _, n := range []string{"a", "b", "c", "d", "e"} {
		mfs.AddFile(n, "")
	}

	r := runDriver(t, listConfig(func(c *gols.ListConfig) { c.Output = gols.OutputColumnsDown; c.Width = 6 }), mfs)
	assert.Equal(t, "a  d\nb  e\nc\n", r.stdout)

	r = runDriver(t, listConfig(func(c *gols.ListConfig) { c.Output = gols.OutputCommaSeparated }), mfs)
	assert.Equal(t, "a, b, c, d, e\n", r.stdout)

	r = runDriver(t, listConfig(func(c *gols.ListConfig) {
		c.Output = gols.OutputColumnsAcross
		c.Long.Enabled = true
		c.Long.NoOwner = true
		c.Long.NoGroup = true
	}), mfs, "a", "b")
	assert.Equal(t, 2, strings.Count(r.stdout, "\n"), "long form is always one per line")
}

func TestDriver_RunResetsState(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("a", "")

	var stdout bytes.Buffer
	cfg := listConfig()
	d := NewDriver(&cfg, &stdout, Options{Provider: mfs, Now: testNow})

	require.ErrorIs(t, d.Run([]string{"missing"}), gols.ErrListingFailed)
	require.NoError(t, d.Run([]string{"a"}))
	assert.False(t, d.State().Errors.Failed())
}
