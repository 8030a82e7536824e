package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds presentation settings for the CLI. The evaluation core is not
// configurable; only output formatting and the prompt are.
type Config struct {
	Locale    string `toml:"locale"`
	Precision int    `toml:"precision"`
	Prompt    string `toml:"prompt"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Locale:    "en-US",
		Precision: -1,
		Prompt:    "> ",
	}
}

// LoadConfig reads a TOML config file, layered over the defaults. With an
// empty path, ~/.prefixcalc.toml is used when present; a missing default
// file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".prefixcalc.toml")
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	return cfg, nil
}

// mergeFlags applies command-line overrides on top of the loaded config.
func (c *Config) mergeFlags() {
	if localeFlag != "" {
		c.Locale = localeFlag
	}
	if precisionFlag != -2 {
		c.Precision = precisionFlag
	}
}
