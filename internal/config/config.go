// Package config loads the outlay TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all outlay configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Report  ReportConfig  `toml:"report"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DBPath string `toml:"db_path,omitempty"`
}

// ReportConfig holds reporting defaults.
type ReportConfig struct {
	TrendWindow     int  `toml:"trend_window"`
	IncludeArchived bool `toml:"include_archived"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Report: ReportConfig{
			TrendWindow: 12,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "outlay")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "outlay")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// DBPath returns the database path from the OUTLAY_DB env var, then the
// config file, then the default under the home directory, in that order.
func DBPath(cfg Config) string {
	if p := os.Getenv("OUTLAY_DB"); p != "" {
		return p
	}
	if cfg.General.DBPath != "" {
		return cfg.General.DBPath
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".outlay", "outlay.db")
}
