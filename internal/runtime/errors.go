package runtime

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"

	herrors "github.com/manav03panchal/humanspan/internal/errors"
	"github.com/manav03panchal/humanspan/internal/logging"
	"github.com/manav03panchal/humanspan/internal/output"
	"github.com/manav03panchal/humanspan/internal/parser"
)

// Common output errors.
var (
	ErrBrokenPipe = errors.New("output closed by reader")
	ErrDiskFull   = errors.New("disk full: unable to write output")
)

// OutputError reports a failed write of command output.
type OutputError struct {
	Op      string // what was being written, e.g. "write batch"
	wrapped error
	kind    error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.wrapped)
}

// Unwrap exposes both the classified sentinel and the underlying error.
func (e *OutputError) Unwrap() []error {
	if e.kind != nil {
		return []error{e.kind, e.wrapped}
	}
	return []error{e.wrapped}
}

// IsBrokenPipe checks if an error means the reading end of stdout went away,
// as with "humanspan batch big.txt | head".
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrBrokenPipe) || errors.Is(err, syscall.EPIPE) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "broken pipe")
}

// IsDiskFullError checks if an error indicates a disk full condition.
// It checks for ENOSPC (Linux/macOS) and common disk full error patterns.
func IsDiskFullError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrDiskFull) || errors.Is(err, syscall.ENOSPC) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	for _, pattern := range []string{
		"no space left on device",
		"disk full",
		"not enough space",
	} {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// WrapOutputError wraps a write error as an OutputError, tagging broken
// pipes and full disks. The result is classified as a system error. A nil
// error stays nil.
func WrapOutputError(err error, op string) error {
	if err == nil {
		return nil
	}
	oe := &OutputError{Op: op, wrapped: err}
	switch {
	case IsBrokenPipe(err):
		oe.kind = ErrBrokenPipe
	case IsDiskFullError(err):
		oe.kind = ErrDiskFull
	}
	return herrors.WithCategory(oe, herrors.CategorySystem)
}

// GetSuggestion returns a suggestion for an error. Errors without a specific
// suggestion get a generic one for their category.
func GetSuggestion(err error) string {
	if IsDiskFullError(err) {
		return "Free up disk space and try again."
	}
	if s := herrors.GetSuggestion(err); s != "" {
		return s
	}
	return herrors.GetCategorySuggestion(err)
}

// FormatError formats an error for the terminal. Unrecognized durations get
// the list of valid examples; other errors are formatted by category.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	var dpe *parser.DurationParseError
	if errors.As(err, &dpe) {
		return dpe.FormatWithExamples()
	}
	msg := herrors.FormatByCategory(err)
	if IsDiskFullError(err) {
		msg += "\n" + GetSuggestion(err)
	}
	return msg
}

// ErrorResponse builds the JSON error payload for err.
func ErrorResponse(err error) output.ErrorResponse {
	resp := output.ErrorResponse{
		Status:     "error",
		Error:      err.Error(),
		Category:   herrors.GetCategory(err).String(),
		Suggestion: GetSuggestion(err),
		Examples:   herrors.GetExamples(err),
	}
	if se, ok := herrors.AsSystemError(err); ok {
		resp.Op = se.Op
	}
	var dpe *parser.DurationParseError
	if errors.As(err, &dpe) {
		resp.Suggestion = dpe.Suggestion
		resp.Examples = dpe.Examples
	}
	return resp
}

// PrintError writes err in the configured format: a JSON object on the
// output writer for JSON output, otherwise a formatted message on w.
func (c *Context) PrintError(w io.Writer, err error) {
	if err == nil || IsBrokenPipe(err) {
		return
	}
	c.Logger.Debug("command failed",
		logging.KeyError, err.Error(),
		"category", herrors.GetCategory(err).String(),
		"chain", herrors.Chain(err),
		"root", herrors.RootCause(err).Error(),
	)
	if c.IsJSON() {
		_ = c.JSONFormatter().PrintError(ErrorResponse(err))
		return
	}
	stderr := &output.Formatter{Writer: w, Format: c.Formatter.Format, ColorMode: c.Formatter.ColorMode}
	output.NewCLIFormatter(stderr).Error(FormatError(err))
}
