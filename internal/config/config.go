// Package config holds tool constants and the signum.yaml configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the signum.yaml configuration.
type Config struct {
	// Color controls ANSI coloring of the class column: "auto" (default,
	// only when stdout is a terminal), "always", or "never".
	Color string `yaml:"color,omitempty"`

	// Trace enables per-operation trace lines from the checker.
	Trace bool `yaml:"trace,omitempty"`
}

// Default returns the configuration used when no signum.yaml exists.
func Default() Config {
	return Config{Color: ColorAuto}
}

// Load reads and validates a signum.yaml file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values. An empty Color means "auto".
func (c *Config) Validate() error {
	switch c.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
}
