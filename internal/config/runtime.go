// Package config provides centralized configuration for humanspan runtime values.
package config

import (
	"os"
	"strconv"

	"github.com/manav03panchal/humanspan/internal/logging"
)

// AppName is used for the config directory and environment variable prefix.
const AppName = "humanspan"

// RuntimeConfig holds all runtime configuration values. Values come from
// defaults, then the config file, then environment variables.
type RuntimeConfig struct {
	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	// Output configuration
	Output OutputConfig `yaml:"output" json:"output"`

	// Input configuration
	Input InputConfig `yaml:"input" json:"input"`

	// Units maps a canonical unit name to extra surface forms.
	// Example: {"week": ["wk"], "month": ["mos"]}
	Units map[string][]string `yaml:"units,omitempty" json:"units,omitempty"`

	// path is the file this config was loaded from, empty for defaults only.
	path string
}

// LoggingConfig holds logger configuration.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn or error.
	// Default: warn
	Level string `yaml:"level" json:"level"`

	// JSON switches log records to JSON.
	// Default: false
	JSON bool `yaml:"json" json:"json"`
}

// OutputConfig holds result formatting configuration.
type OutputConfig struct {
	// Format is the default output format: cli, json or plain.
	// Default: cli
	Format string `yaml:"format" json:"format"`

	// Color is the color mode: auto, always or never.
	// Default: auto
	Color string `yaml:"color" json:"color"`
}

// InputConfig holds limits applied to text before parsing.
type InputConfig struct {
	// MaxBytes is the longest accepted input, per argument or batch line.
	// Default: 4096
	MaxBytes int `yaml:"max_bytes" json:"max_bytes"`
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Logging: LoggingConfig{
			Level: "warn",
			JSON:  false,
		},
		Output: OutputConfig{
			Format: "cli",
			Color:  "auto",
		},
		Input: InputConfig{
			MaxBytes: 4096,
		},
	}
}

// Path returns the file the config was loaded from, or "".
func (c *RuntimeConfig) Path() string {
	return c.path
}

// loadFromEnv loads configuration overrides from environment variables.
// Invalid values are logged and ignored.
func (c *RuntimeConfig) loadFromEnv() {
	if v := os.Getenv("HUMANSPAN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("HUMANSPAN_LOG_JSON"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.JSON = b
		} else {
			logging.Warn("ignoring invalid environment value", "var", "HUMANSPAN_LOG_JSON", "value", v)
		}
	}
	if v := os.Getenv("HUMANSPAN_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("HUMANSPAN_COLOR"); v != "" {
		c.Output.Color = v
	}
	if v := os.Getenv("HUMANSPAN_MAX_INPUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Input.MaxBytes = n
		} else {
			logging.Warn("ignoring invalid environment value", "var", "HUMANSPAN_MAX_INPUT", "value", v)
		}
	}
}
