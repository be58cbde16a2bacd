// Package config loads optional YAML settings for laporan.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the report root when --config is not given.
const FileName = "config.yaml"

// Config represents user settings. Zero values mean "use the default".
type Config struct {
	// Root is the directory holding <YYYY>/<YYYY-MM-DD>.txt reports.
	Root string `yaml:"root"`
	// LogLevel controls diagnostics written to stderr.
	LogLevel slog.Level `yaml:"log_level"`
	// RangeDays is the length of the default report window. Zero means one calendar month.
	RangeDays int `yaml:"range_days"`
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLevel: slog.LevelWarn,
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.RangeDays, validation.Min(0), validation.Max(3660)),
	)
}

// Load reads filename into cfg, expanding ${VAR} references, and validates the result.
func Load(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", filename, err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", filename, err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// LoadOptional behaves like Load but treats a missing file as "no overrides".
func LoadOptional(filename string, cfg *Config) error {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return Load(filename, cfg)
}

// DefaultPath returns the config file location inside root.
func DefaultPath(root string) string {
	return filepath.Join(root, FileName)
}
