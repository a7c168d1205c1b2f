// Package runtime provides application runtime context for humanspan.
package runtime

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/manav03panchal/humanspan/internal/config"
	herrors "github.com/manav03panchal/humanspan/internal/errors"
	"github.com/manav03panchal/humanspan/internal/logging"
	"github.com/manav03panchal/humanspan/internal/output"
	"github.com/manav03panchal/humanspan/internal/parser"
	"github.com/manav03panchal/humanspan/internal/validate"
)

// Context holds the application runtime context.
type Context struct {
	Config    *config.RuntimeConfig
	Parser    *parser.Parser
	Formatter *output.Formatter
	Logger    *slog.Logger

	// Debug mode
	Debug bool
}

// Options configures the runtime context. Empty Format and ColorMode fall
// back to the loaded configuration.
type Options struct {
	ConfigPath string
	Format     string
	ColorMode  string
	Debug      bool

	// Writer receives command output (default: stdout).
	Writer io.Writer
	// LogOutput receives log records (default: stderr).
	LogOutput io.Writer
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		Writer:    os.Stdout,
		LogOutput: os.Stderr,
	}
}

// New creates a new runtime context: it loads configuration, initializes
// logging, builds the unit table and wires the parser and formatter.
func New(opts Options) (*Context, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, herrors.WithContext(err, "loading configuration")
	}

	// Flags win over file and environment
	if opts.Format != "" {
		cfg.Output.Format = opts.Format
	}
	if opts.ColorMode != "" {
		cfg.Output.Color = opts.ColorMode
	}
	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	colorMode, err := output.ParseColorMode(cfg.Output.Color)
	if err != nil {
		return nil, err
	}

	logCfg := cfg.LoggerConfig()
	if opts.Debug {
		logCfg = logging.DebugConfig()
	}
	if opts.LogOutput != nil {
		logCfg.Output = opts.LogOutput
	}
	logging.Init(logCfg)
	logger := logging.Logger()

	units, err := cfg.UnitTable()
	if err != nil {
		return nil, err
	}

	formatter := output.NewFormatter()
	formatter.Format = format
	formatter.ColorMode = colorMode
	if opts.Writer != nil {
		formatter.Writer = opts.Writer
	}

	if path := cfg.Path(); path != "" {
		logger.Debug("config loaded", "path", path)
	}

	return &Context{
		Config:    cfg,
		Parser:    parser.NewParser(parser.WithUnitTable(units), parser.WithLogger(logger)),
		Formatter: formatter,
		Logger:    logger,
		Debug:     opts.Debug,
	}, nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// PlainFormatter returns a plain formatter.
func (c *Context) PlainFormatter() *output.PlainFormatter {
	return output.NewPlainFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// ValidateInput sanitizes text and enforces the configured size limit.
func (c *Context) ValidateInput(text string) (string, error) {
	return validate.Input(text, c.Config.Input.MaxBytes)
}

// PrintResult writes one parse result in the configured format.
func (c *Context) PrintResult(input string, r parser.DurationResult) error {
	switch c.Formatter.Format {
	case output.FormatJSON:
		return WrapOutputError(c.JSONFormatter().PrintResult(input, r), "write result")
	case output.FormatPlain:
		c.PlainFormatter().PrintResult(r)
	default:
		c.CLIFormatter().PrintResult(input, r)
	}
	return nil
}

// PrintTrace writes a parse trace in the configured format.
func (c *Context) PrintTrace(tr parser.Trace) error {
	switch c.Formatter.Format {
	case output.FormatJSON:
		return WrapOutputError(c.JSONFormatter().PrintTrace(tr), "write trace")
	case output.FormatPlain:
		c.PlainFormatter().PrintTrace(tr)
	default:
		c.CLIFormatter().PrintTrace(tr)
	}
	return nil
}

// PrintBatch writes batch results in the configured format.
func (c *Context) PrintBatch(runID string, items []output.BatchItem) error {
	switch c.Formatter.Format {
	case output.FormatJSON:
		return WrapOutputError(c.JSONFormatter().PrintBatch(runID, items), "write batch")
	case output.FormatPlain:
		c.PlainFormatter().PrintBatch(items)
	default:
		c.CLIFormatter().PrintBatch(items)
	}
	return nil
}

// PrintUnits writes the active unit table in the configured format.
func (c *Context) PrintUnits() error {
	table := c.Parser.Units()
	switch c.Formatter.Format {
	case output.FormatJSON:
		return WrapOutputError(c.JSONFormatter().PrintUnits(table), "write units")
	case output.FormatPlain:
		c.PlainFormatter().PrintUnits(table)
	default:
		c.CLIFormatter().PrintUnits(table)
	}
	return nil
}

// Debugf logs a debug message if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		c.Logger.Debug(fmt.Sprintf(format, args...))
	}
}
