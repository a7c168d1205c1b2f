package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	herrors "github.com/manav03panchal/humanspan/internal/errors"
	"github.com/manav03panchal/humanspan/internal/logging"
	"github.com/manav03panchal/humanspan/internal/parser"
)

// FileName is the config file name inside the config directory.
const FileName = "config.yaml"

// DefaultPath returns the default config file location
// ($XDG_CONFIG_HOME/humanspan/config.yaml).
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, FileName)
}

// Load builds the effective configuration: defaults, then the YAML file at
// path, then environment overrides. An empty path means HUMANSPAN_CONFIG or
// DefaultPath; a missing file at the default location is not an error, a
// missing explicit file is.
func Load(path string) (*RuntimeConfig, error) {
	explicit := path != ""
	if !explicit {
		if env := os.Getenv("HUMANSPAN_CONFIG"); env != "" {
			path = env
			explicit = true
		} else {
			path = DefaultPath()
		}
	}

	cfg := DefaultRuntimeConfig()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := cfg.decode(data); err != nil {
			return nil, herrors.WithContextf(err, "loading %s", path)
		}
		cfg.path = path
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// Defaults only.
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", herrors.ErrConfigNotFound, path)
	default:
		return nil, herrors.NewSystemErrorWithOp("read config", "cannot read "+path, err)
	}

	cfg.loadFromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *RuntimeConfig) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %v", herrors.ErrInvalidConfig, err)
	}
	return nil
}

// Validate checks every configured value.
func (c *RuntimeConfig) Validate() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", herrors.ErrInvalidConfig, err)
	}
	switch c.Output.Format {
	case "cli", "json", "plain":
	default:
		return fmt.Errorf("%w: output.format %q", herrors.ErrInvalidFormat, c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: output.color %q", herrors.ErrInvalidConfig, c.Output.Color)
	}
	if c.Input.MaxBytes <= 0 {
		return fmt.Errorf("%w: input.max_bytes must be positive", herrors.ErrInvalidConfig)
	}
	if _, err := c.UnitTable(); err != nil {
		return err
	}
	return nil
}

// LoggerConfig converts the logging section into a logging.Config.
func (c *RuntimeConfig) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.Logging.Level); err == nil {
		cfg.Level = level
	}
	cfg.JSON = c.Logging.JSON
	cfg.AddSource = cfg.Level == slog.LevelDebug
	return cfg
}

// UnitTable builds the parser's synonym table including configured extras.
func (c *RuntimeConfig) UnitTable() (*parser.UnitTable, error) {
	if len(c.Units) == 0 {
		return parser.DefaultUnitTable(), nil
	}
	extra := make(map[parser.Unit][]string, len(c.Units))
	for name, words := range c.Units {
		u, err := parser.ParseUnit(strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			return nil, fmt.Errorf("%w: units: %v", herrors.ErrInvalidConfig, err)
		}
		extra[u] = append(extra[u], words...)
	}
	return parser.NewUnitTable(extra)
}

// Marshal renders the configuration as YAML.
func (c *RuntimeConfig) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
