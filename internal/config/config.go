// Package config loads the pcmconv YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all pcmconv settings.
type Config struct {
	Quality     string `yaml:"quality"` // "low_latency" or "high_quality"
	TargetRate  int    `yaml:"target_rate"`
	LibraryPath string `yaml:"library_path"`
	LogLevel    string `yaml:"log_level"`
}

// DefaultConfigDir returns the default config directory path.
func DefaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pcmconv")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// Default returns a Config matching the library defaults.
func Default() *Config {
	return &Config{
		Quality:    "low_latency",
		TargetRate: 48000,
		LogLevel:   "info",
	}
}

// Load reads and parses a YAML config file. Missing fields keep their
// defaults. A leading ~ in library_path is expanded to the home directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.LibraryPath = expandTilde(cfg.LibraryPath)

	return cfg, nil
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	switch c.Quality {
	case "low_latency", "high_quality":
	default:
		return fmt.Errorf("%w: quality must be \"low_latency\" or \"high_quality\", got %q", ErrInvalid, c.Quality)
	}

	if c.TargetRate <= 0 {
		return fmt.Errorf("%w: target_rate must be > 0", ErrInvalid)
	}

	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// SlogLevel returns log_level as a slog.Level. Unknown levels map to Info.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: log_level must be debug, info, warn, or error, got %q", ErrInvalid, s)
	}
}

// expandTilde replaces a leading ~ with the user's home directory.
func expandTilde(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
