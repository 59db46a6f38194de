package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jmgilman/go/fs/billy"
	"github.com/spf13/cobra"

	"github.com/vvka-141/gols/internal/config"
	"github.com/vvka-141/gols/internal/files/filesystem"
	"github.com/vvka-141/gols/internal/identity"
	"github.com/vvka-141/gols/internal/listing"
	"github.com/vvka-141/gols/internal/logging"
	"github.com/vvka-141/gols/internal/terminal"
	"github.com/vvka-141/gols/pkg/gols"
)

// programName prefixes every diagnostic.
const programName = "ls"

// rootFlags holds the parsed command-line flags.
type rootFlags struct {
	letters    []rune
	color      string
	width      int
	configPath string
	root       string
	verbose    bool
	version    bool
}

var lsFlags rootFlags

var rootCmd = &cobra.Command{
	Use:   "ls [flags] [file...]",
	Short: "List directory contents",
	Long: `List information about the files named as operands, or the current
directory when none are given. Directories are listed by their contents.

Defaults may be kept in a YAML file (--config, $GOLS_CONFIG, or
<user config dir>/gols/config.yaml) with the keys flags, color and width.

Exit Codes:
  0  - Success
  1  - At least one entry could not be listed
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration file`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runList,
}

func init() {
	registerFlags()
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})
}

func registerFlags() {
	f := rootCmd.Flags()
	f.SortFlags = false
	registerLetterFlags(f, &lsFlags.letters)
	f.StringVar(&lsFlags.color, "color", "never", "colourize names: never, auto or always")
	f.IntVar(&lsFlags.width, "width", 0, "output width in columns (COLUMNS takes precedence)")
	f.StringVar(&lsFlags.configPath, "config", "", "path to the defaults file")
	f.StringVar(&lsFlags.root, "root", "", "resolve operands inside this directory")
	f.BoolVar(&lsFlags.verbose, "verbose", false, "trace the traversal on stderr")
	f.BoolVar(&lsFlags.version, "version", false, "print version information and exit")
}

// resetFlags restores every flag to its default. Used between test runs.
func resetFlags() {
	lsFlags = rootFlags{}
	rootCmd.ResetFlags()
	registerFlags()
}

// usageError marks command-line parsing failures.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() []error { return []error{gols.ErrUsage, e.err} }

// Execute runs the root command. Errors other than the listing summary are
// printed to stderr before being returned.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, gols.ErrListingFailed) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "%s: %v\n", programName, err)
		if errors.Is(err, gols.ErrUsage) {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "Try '%s --help' for more information.\n", programName)
		}
	}
	return err
}

func runList(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	if lsFlags.version {
		printVersionInfo(stdout)
		return nil
	}

	logger := logging.NewConsoleLogger(stderr, programName, lsFlags.verbose)

	defaults, err := loadDefaults(lsFlags.configPath, logger)
	if err != nil {
		return err
	}

	out, isTTY := outputTerminal(stdout)
	detect := func() (int, bool) {
		if out == nil {
			return 0, false
		}
		return terminal.TerminalWidth(out)
	}

	opts := settings{
		letters:      lsFlags.letters,
		color:        lsFlags.color,
		colorChanged: cmd.Flags().Changed("color"),
		width:        lsFlags.width,
		columns:      os.Getenv("COLUMNS"),
		isTerminal:   isTTY,
		detectWidth:  detect,
	}
	cfg, err := buildConfig(defaults, opts)
	if err != nil {
		return err
	}
	logger.Verbose("width %d, output mode %d, sort mode %d", cfg.Width, cfg.Output, cfg.Sort)

	provider, err := newProvider(lsFlags.root)
	if err != nil {
		return err
	}

	var styles *terminal.Styles
	if terminal.ColorEnabled(cfg.Color, isTTY) {
		styles = terminal.NewStyles(stdout, cfg.Color == gols.ColorAlways)
	}

	driver := listing.NewDriver(&cfg, stdout, listing.Options{
		Provider: provider,
		Resolver: identity.NewOSResolver(),
		Logger:   logger,
		Styles:   styles,
		Names:    listing.LocaleOrder(listing.LocaleFromEnv(os.Getenv)),
	})
	return driver.Run(args)
}

// loadDefaults reads the defaults file. A missing file yields nil defaults.
func loadDefaults(path string, logger gols.Logger) (*config.Defaults, error) {
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath()
	}
	if path == "" {
		return nil, nil
	}

	defaults, err := config.Load(path)
	if errors.Is(err, config.ErrConfigNotFound) {
		if explicit {
			return nil, fmt.Errorf("%s: %w: %w", path, err, gols.ErrInvalidConfig)
		}
		logger.Verbose("no defaults file at %s", path)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	logger.Verbose("loaded defaults from %s", path)
	return defaults, nil
}

// newProvider returns the OS filesystem, or a filesystem scoped to root.
func newProvider(root string) (filesystem.Provider, error) {
	if root == "" {
		return filesystem.NewOSFileSystem(), nil
	}
	scoped, err := billy.NewLocal().Chroot(root)
	if err != nil {
		return nil, fmt.Errorf("--root %s: %w", root, err)
	}
	return filesystem.NewCoreFileSystem(scoped), nil
}

// outputTerminal returns the file behind w and whether it is a terminal.
func outputTerminal(w io.Writer) (*os.File, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return nil, false
	}
	return f, terminal.IsTerminal(f)
}
