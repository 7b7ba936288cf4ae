// Package config loads the optional YAML configuration file.
//
// Everything in it has a sensible default, so a missing file is not an
// error; a present-but-broken file is, since silently ignoring it would
// hide typos from the user.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rowanhs/trackline/internal/progress"
)

// DefaultStateFile is the state document filename used when neither the
// config file nor the command line names one.
const DefaultStateFile = "trackline.json"

// Config holds the file-level settings. Command-line flags override it;
// it overrides the built-in defaults.
type Config struct {
	// StateFile is the path of the state document.
	StateFile string `yaml:"state_file"`
	// NotifyDays is the reminder look-ahead window in days.
	NotifyDays int `yaml:"notify_days"`
	// DefaultMode is the progress mode used when the state document does
	// not carry one.
	DefaultMode progress.Mode `yaml:"default_mode"`
	// Beep enables the terminal bell on reminder hits.
	Beep bool `yaml:"beep"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		StateFile:   DefaultStateFile,
		NotifyDays:  3,
		DefaultMode: progress.ModeWeight,
		Beep:        true,
	}
}

// DefaultPath returns the conventional config file location, or "" when
// the user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "trackline", "config.yaml")
}

// Load reads the config file at path, layering it over Default. A missing
// file (or an empty path) yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.StateFile == "" {
		return fmt.Errorf("state_file must not be empty")
	}
	if c.NotifyDays < 0 {
		return fmt.Errorf("notify_days must not be negative, got %d", c.NotifyDays)
	}
	if !c.DefaultMode.Valid() {
		return fmt.Errorf("unknown default_mode %q", c.DefaultMode)
	}
	return nil
}
