// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/valdemar/taskman/internal/store"
	"github.com/valdemar/taskman/internal/task"
)

const configFile = "config.toml"

// Config holds the tunable settings of taskman. Every field has a
// default; the config file only needs to name what it overrides.
type Config struct {
	TitleLimit       int    `toml:"title_limit"`
	DescriptionLimit int    `toml:"description_limit"`
	SaveFile         string `toml:"save_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TitleLimit:       task.TitleLimit,
		DescriptionLimit: task.DescriptionLimit,
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".taskman", configFile), nil
}

// Load reads the config file at path over the defaults. A missing file
// is not an error; the defaults apply unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// The shortening helper needs at least 3 characters to work with, so
// limits below that are unusable.
func (c Config) validate() error {
	if c.TitleLimit < 3 {
		return fmt.Errorf("title_limit must be at least 3, got %d", c.TitleLimit)
	}
	if c.DescriptionLimit < 3 {
		return fmt.Errorf("description_limit must be at least 3, got %d", c.DescriptionLimit)
	}
	return nil
}

// Limits returns the field limits as the task package expects them.
func (c Config) Limits() task.Limits {
	return task.Limits{Title: c.TitleLimit, Description: c.DescriptionLimit}
}

// ResolveSaveFile returns the savefile path, expanding a leading tilde
// and falling back to the default location when unset.
func (c Config) ResolveSaveFile() (string, error) {
	if c.SaveFile == "" {
		return store.DefaultPath()
	}
	if strings.HasPrefix(c.SaveFile, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, c.SaveFile[2:]), nil
	}
	return c.SaveFile, nil
}
