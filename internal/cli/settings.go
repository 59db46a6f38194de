package cli

import (
	"fmt"

	"github.com/vvka-141/gols/internal/config"
	"github.com/vvka-141/gols/internal/terminal"
	"github.com/vvka-141/gols/pkg/gols"
)

// settings collects the inputs of buildConfig that do not come from the
// defaults file.
type settings struct {
	letters      []rune
	color        string
	colorChanged bool
	width        int
	columns      string
	isTerminal   bool
	detectWidth  func() (int, bool)
}

// buildConfig merges the defaults file and the command line into a
// ListConfig. Option letters from the file are applied before those of the
// command line so the command line wins.
func buildConfig(defaults *config.Defaults, s settings) (gols.ListConfig, error) {
	cfg := gols.DefaultListConfig()
	if defaults == nil {
		defaults = &config.Defaults{}
	}

	letters := append(defaults.Letters(), s.letters...)
	if err := Apply(&cfg, letters); err != nil {
		return cfg, err
	}

	if defaults.Color != "" {
		mode, err := config.ParseColorMode(defaults.Color)
		if err != nil {
			return cfg, fmt.Errorf("color: %v: %w", err, gols.ErrInvalidConfig)
		}
		cfg.Color = mode
	}
	if s.colorChanged {
		mode, err := config.ParseColorMode(s.color)
		if err != nil {
			return cfg, &usageError{err: fmt.Errorf("--color: %w", err)}
		}
		cfg.Color = mode
	}

	if s.width < 0 {
		return cfg, &usageError{err: fmt.Errorf("--width: must not be negative")}
	}
	var detect func() (int, bool)
	if s.isTerminal {
		detect = s.detectWidth
	}
	cfg.Width = terminal.ResolveWidth(s.columns, s.width, detect, defaults.Width)

	Finalize(&cfg, s.isTerminal)
	return cfg, nil
}
