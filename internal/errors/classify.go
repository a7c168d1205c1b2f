package errors

import (
	"errors"
	"io/fs"
	"syscall"
)

// Category represents the type of error for display and handling purposes.
type Category int

const (
	// CategoryUnknown is the default for unclassified errors.
	CategoryUnknown Category = iota
	// CategoryUser indicates an error the user can fix (bad input, bad config).
	CategoryUser
	// CategorySystem indicates a system-level error (unreadable file, closed pipe).
	CategorySystem
	// CategoryInternal indicates an internal bug or unexpected state.
	CategoryInternal
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryUser:
		return "user"
	case CategorySystem:
		return "system"
	case CategoryInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Classify determines the category of an error.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}

	// Check for our typed errors first
	if IsUserError(err) {
		return CategoryUser
	}
	if IsSystemError(err) {
		return CategorySystem
	}

	if isUserLevel(err) {
		return CategoryUser
	}
	if isSystemLevel(err) {
		return CategorySystem
	}

	return CategoryUnknown
}

// isUserLevel checks for sentinel errors caused by input or configuration.
func isUserLevel(err error) bool {
	return errors.Is(err, ErrIllegalWord) ||
		errors.Is(err, ErrUnknownUnit) ||
		errors.Is(err, ErrUnidentified) ||
		errors.Is(err, ErrInputTooLarge) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrConfigNotFound)
}

// isSystemLevel checks if an error is a system-level error.
func isSystemLevel(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.EACCES, syscall.EPERM: // Permission denied
			return true
		case syscall.ENOENT: // No such file or directory
			return true
		case syscall.EIO: // I/O error
			return true
		case syscall.EPIPE: // Broken pipe
			return true
		}
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return true
	}

	return errors.Is(err, ErrPermissionDenied)
}

// ClassifiedError wraps an error with its classification.
type ClassifiedError struct {
	Err      error
	Category Category
}

func (e *ClassifiedError) Error() string {
	return e.Err.Error()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

// WithCategory wraps an error with an explicit category.
func WithCategory(err error, category Category) error {
	if err == nil {
		return nil
	}
	return &ClassifiedError{
		Err:      err,
		Category: category,
	}
}

// GetCategory returns the category of an error.
// If the error was wrapped with WithCategory, returns that category.
// Otherwise, uses Classify to determine the category.
func GetCategory(err error) Category {
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.Category
	}
	return Classify(err)
}

// FormatByCategory returns a user-appropriate error message based on category.
func FormatByCategory(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	switch GetCategory(err) {
	case CategoryUser:
		if suggestion := GetSuggestion(err); suggestion != "" {
			return msg + "\n\nTry: " + suggestion
		}
		return msg

	case CategorySystem:
		if suggestion := GetSuggestion(err); suggestion != "" {
			return "System error: " + msg + "\n\n" + suggestion
		}
		return "System error: " + msg

	case CategoryInternal:
		return "Internal error: " + msg

	default:
		return msg
	}
}
