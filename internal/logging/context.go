package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// contextKey is a type for context keys used by this package.
type contextKey int

const (
	runIDKey contextKey = iota
)

// GenerateRunID creates a new unique ID for one batch run.
func GenerateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// WithRunID returns a new context with the given run ID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// NewRunContext creates a new context with a generated run ID.
func NewRunContext(ctx context.Context) context.Context {
	return WithRunID(ctx, GenerateRunID())
}

// RunIDFromContext extracts the run ID from the context.
// Returns empty string if no run ID is set.
func RunIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return ""
}

// LoggerFromContext returns a logger tagged with the run ID from context.
// If no run ID is in the context, returns the default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := Logger()
	if runID := RunIDFromContext(ctx); runID != "" {
		logger = logger.With(KeyRunID, runID)
	}
	return logger
}
