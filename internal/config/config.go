// Package config loads optional listing defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/gols/pkg/gols"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Defaults holds listing defaults applied before the command line.
type Defaults struct {
	// Flags are short-flag clusters such as "-F" or "-lF", applied in order
	// before the command-line flags.
	Flags []string `yaml:"flags"`

	// Color is one of "never", "auto" or "always".
	Color string `yaml:"color,omitempty"`

	// Width is used when COLUMNS is unset and stdout is not a terminal.
	Width int `yaml:"width,omitempty"`
}

const (
	// ConfigFileName is the file looked up under the user config directory.
	ConfigFileName = "config.yaml"

	// ConfigDirName is the per-application directory under the user config directory.
	ConfigDirName = "gols"

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "GOLS_CONFIG"
)

// DefaultPath returns the config file location: $GOLS_CONFIG when set,
// otherwise <UserConfigDir>/gols/config.yaml. It returns "" when no
// location can be determined.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, ConfigDirName, ConfigFileName)
}

// Load reads and validates the defaults file at configPath.
func Load(configPath string) (*Defaults, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Defaults
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", configPath, err, gols.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return &cfg, nil
}

// Validate checks flag clusters, colour mode and width.
func (d *Defaults) Validate() error {
	var errs []error

	for _, f := range d.Flags {
		if len(f) < 2 || f[0] != '-' || strings.HasPrefix(f, "--") {
			errs = append(errs, fmt.Errorf("flags entry %q is not a short-flag cluster: %w", f, gols.ErrInvalidConfig))
		}
	}

	if d.Color != "" {
		if _, err := ParseColorMode(d.Color); err != nil {
			errs = append(errs, fmt.Errorf("color: %w", gols.ErrInvalidConfig))
		}
	}

	if d.Width < 0 {
		errs = append(errs, fmt.Errorf("width cannot be negative: %w", gols.ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Letters returns the flag letters of all clusters in order.
func (d *Defaults) Letters() []rune {
	var letters []rune
	for _, f := range d.Flags {
		letters = append(letters, []rune(strings.TrimPrefix(f, "-"))...)
	}
	return letters
}

// ParseColorMode parses a --color value.
func ParseColorMode(value string) (gols.ColorMode, error) {
	switch strings.ToLower(value) {
	case "never", "no", "none":
		return gols.ColorNever, nil
	case "auto", "tty", "if-tty":
		return gols.ColorAuto, nil
	case "always", "yes", "force":
		return gols.ColorAlways, nil
	}
	return gols.ColorNever, fmt.Errorf("invalid color mode %q (want never, auto or always)", value)
}
