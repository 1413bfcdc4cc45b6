// Package config loads the optional YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goprimer/goprimer/pkg/ui"
)

// Config is the fully parsed configuration.
type Config struct {
	Theme Theme
	// Maximum height the screen may take up, in lines. Zero or negative
	// means no limit beyond the terminal height.
	MaxHeight int
	// Prefix for trace lines.
	TracePrefix string
}

// Theme holds the stylings of the screen elements.
type Theme struct {
	// Styling for section titles.
	Title ui.Styling
	// Styling for row labels.
	Label ui.Styling
	// Styling for buttons without the focus.
	Button ui.Styling
	// Styling for the focused button.
	FocusedButton ui.Styling
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Theme: Theme{
			Title:         ui.Bold,
			FocusedButton: ui.Inverse,
		},
		TracePrefix: "primer: ",
	}
}

// The YAML shape of the file. Pointers distinguish absent fields from empty
// ones, so that an absent field keeps its default.
type configFile struct {
	Theme struct {
		Title         *string `yaml:"title"`
		Label         *string `yaml:"label"`
		Button        *string `yaml:"button"`
		FocusedButton *string `yaml:"focused-button"`
	} `yaml:"theme"`
	MaxHeight   *int    `yaml:"max-height"`
	TracePrefix *string `yaml:"trace-prefix"`
}

// Load reads the configuration from the named file, applying it on top of
// the defaults. An empty name or a file that does not exist yields the
// defaults. Unknown keys and invalid styling words are errors.
func Load(fname string) (Config, error) {
	cfg := Default()
	if fname == "" {
		return cfg, nil
	}
	content, err := os.ReadFile(fname)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	var f configFile
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", fname, err)
	}

	if err := applyStyling(&cfg.Theme.Title, f.Theme.Title, "theme.title"); err != nil {
		return cfg, err
	}
	if err := applyStyling(&cfg.Theme.Label, f.Theme.Label, "theme.label"); err != nil {
		return cfg, err
	}
	if err := applyStyling(&cfg.Theme.Button, f.Theme.Button, "theme.button"); err != nil {
		return cfg, err
	}
	if err := applyStyling(&cfg.Theme.FocusedButton, f.Theme.FocusedButton, "theme.focused-button"); err != nil {
		return cfg, err
	}
	if f.MaxHeight != nil {
		cfg.MaxHeight = *f.MaxHeight
	}
	if f.TracePrefix != nil {
		cfg.TracePrefix = *f.TracePrefix
	}
	return cfg, nil
}

func applyStyling(dst *ui.Styling, src *string, key string) error {
	if src == nil {
		return nil
	}
	if *src == "" {
		*dst = nil
		return nil
	}
	styling := ui.ParseStyling(*src)
	if styling == nil {
		return fmt.Errorf("invalid styling for %s: %q", key, *src)
	}
	*dst = styling
	return nil
}
