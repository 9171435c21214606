// Package config loads the bitexpr command configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings read from the TOML configuration file.
type Config struct {
	// Prompt is shown by the REPL before each line.
	Prompt string `toml:"prompt"`
	// HistoryFile stores REPL history. Relative paths are resolved
	// against the user's home directory; empty disables history.
	HistoryFile string `toml:"history_file"`
	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Prompt:      "expr> ",
		HistoryFile: ".bitexpr_history",
	}
}

// DefaultPath returns the per-user configuration path.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "bitexpr", "config.toml"), nil
}

// Load reads the configuration at path over the defaults. A missing
// file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// HistoryPath returns the absolute history file path, or "" when
// history is disabled.
func (c Config) HistoryPath() string {
	if c.HistoryFile == "" || filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, c.HistoryFile)
}
