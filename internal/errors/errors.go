// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// calculation, invalid input) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types implement the Unwrap() method to support errors.Is() and errors.As().
package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between algorithms.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorInput    = 5   // Indicates an argument violated a documented precondition.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ErrInvalidArgument is the root of every precondition failure reported by
// the algebra, semiring, fibonacci and paths packages.
var ErrInvalidArgument = errors.New("invalid argument")

// Precondition sentinels. Each one wraps ErrInvalidArgument, so callers can
// match either the specific condition or the whole class.
var (
	ErrNonPositiveExponent = fmt.Errorf("%w: exponent must be >= 1", ErrInvalidArgument)
	ErrNegativeExponent    = fmt.Errorf("%w: exponent must be >= 0", ErrInvalidArgument)
	ErrExponentOverflow    = fmt.Errorf("%w: exponent out of range", ErrInvalidArgument)
	ErrEmptyMatrix         = fmt.Errorf("%w: matrix is empty", ErrInvalidArgument)
	ErrNotSquare           = fmt.Errorf("%w: matrix is not square", ErrInvalidArgument)
	ErrDimensionMismatch   = fmt.Errorf("%w: matrix dimension mismatch", ErrInvalidArgument)
	ErrInvalidNumeral      = fmt.Errorf("%w: invalid numeral", ErrInvalidArgument)
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError encapsulates a calculation error while preserving the
// original cause, so the orchestration layer can report which engine failed
// without losing errors.Is matching on the cause.
type CalculationError struct {
	// Engine names the calculator or engine that failed.
	Engine string
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message, prefixed by the engine name when known.
func (e CalculationError) Error() string {
	if e.Engine != "" {
		return fmt.Sprintf("%s: %v", e.Engine, e.Cause)
	}
	return e.Cause.Error()
}

// Unwrap returns the original wrapped error.
func (e CalculationError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil if err is nil.
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsInvalidArgument reports whether err stems from a violated precondition.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// ValidationError represents a violated precondition on a single argument.
// Kind is one of the precondition sentinels above; Unwrap exposes it so that
// errors.Is(err, ErrNotSquare) and errors.Is(err, ErrInvalidArgument) both hold.
type ValidationError struct {
	// Field is the name of the argument that failed validation.
	Field string
	// Message describes why validation failed.
	Message string
	// Value is the invalid value (optional, may be nil).
	Value any
	// Kind is the sentinel classifying the failure.
	Kind error
}

// Error returns the error message for a ValidationError.
func (e ValidationError) Error() string {
	msg := e.Message
	if msg == "" && e.Kind != nil {
		msg = e.Kind.Error()
	}
	if e.Field != "" {
		if e.Value != nil {
			return fmt.Sprintf("validation error for '%s' (%v): %s", e.Field, e.Value, msg)
		}
		return fmt.Sprintf("validation error for '%s': %s", e.Field, msg)
	}
	return fmt.Sprintf("validation error: %s", msg)
}

// Unwrap returns the sentinel kind, or ErrInvalidArgument when none was set.
func (e ValidationError) Unwrap() error {
	if e.Kind == nil {
		return ErrInvalidArgument
	}
	return e.Kind
}

// NewValidationError creates a new ValidationError classified by kind.
//
// Parameters:
//   - kind: The precondition sentinel (e.g. ErrNotSquare).
//   - field: The name of the argument that failed validation.
//   - message: A description of why validation failed.
//   - value: The invalid value (optional).
//
// Returns:
//   - error: A new ValidationError instance.
func NewValidationError(kind error, field, message string, value any) error {
	return ValidationError{Field: field, Message: message, Value: value, Kind: kind}
}
