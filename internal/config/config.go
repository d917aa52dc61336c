// Package config handles TOML-based configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration.
type Config struct {
	Input            string `toml:"input"`
	PreviewThreshold int    `toml:"preview_threshold"`
	PreviewLength    int    `toml:"preview_length"`
	TimestampWindow  int    `toml:"timestamp_window"`
	TimestampMarker  string `toml:"timestamp_marker"`
	Color            bool   `toml:"color"`
	Debug            bool   `toml:"debug"`

	// Source is the file the values were read from, empty for defaults.
	Source string `toml:"-"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Input:            "finance_dump.html",
		PreviewThreshold: 1000,
		PreviewLength:    200,
		TimestampWindow:  5000,
		TimestampMarker:  "176",
		Color:            true,
		Debug:            false,
	}
}

// Path resolves the config file location: $XDG_CONFIG_HOME/dumpscan/config.toml,
// falling back to ~/.config/dumpscan/config.toml.
func Path() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "dumpscan", "config.toml"), nil
}

// Load reads the config file at Path over the defaults. A missing file,
// or no resolvable home directory, yields the defaults with Source empty.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile decodes the TOML file at path over the defaults. Keys the
// Config does not know are rejected.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return fmt.Errorf("input file cannot be empty")
	}
	if c.PreviewThreshold <= 0 {
		return fmt.Errorf("preview_threshold must be positive, got %d", c.PreviewThreshold)
	}
	if c.PreviewLength <= 0 {
		return fmt.Errorf("preview_length must be positive, got %d", c.PreviewLength)
	}
	if c.TimestampWindow <= 0 {
		return fmt.Errorf("timestamp_window must be positive, got %d", c.TimestampWindow)
	}
	if c.TimestampMarker == "" {
		return fmt.Errorf("timestamp_marker cannot be empty")
	}
	return nil
}
