package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for fixbench.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the run exceeded its deadline.
	ExitErrorMismatch = 3   // Indicates a golden vector no longer reproduces.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorAccuracy = 5   // Indicates a tier-ordering or accuracy bound violation.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
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

// EvaluationError reports a failure while evaluating a catalog operation,
// keeping the operation name and the underlying cause.
type EvaluationError struct {
	// Op is the catalog name of the operation, e.g. "sin/64/fast".
	Op string
	// Cause is the underlying error.
	Cause error
}

// Error returns the operation name followed by the cause message.
func (e EvaluationError) Error() string {
	if e.Op == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e EvaluationError) Unwrap() error { return e.Cause }

// TimeoutError represents a run timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// DeterminismError reports a golden vector whose recorded output no longer
// matches what the current build computes. All values are raw bit patterns.
type DeterminismError struct {
	Op    string
	Input []int64
	Want  int64
	Got   int64
}

// Error returns a formatted message with the inputs and both outputs in hex.
func (e DeterminismError) Error() string {
	return fmt.Sprintf("determinism error for %s%s: want %#x, got %#x", e.Op, formatInputs(e.Input), e.Want, e.Got)
}

func formatInputs(in []int64) string {
	s := "("
	for i, v := range in {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%#x", v)
	}
	return s + ")"
}

// AccuracyError reports that a tier exceeded its accuracy bound, typically a
// cheaper tier measuring more accurate than a precise sibling would allow.
type AccuracyError struct {
	// Op is the function family, e.g. "sqrt/64".
	Op string
	// Tier is the offending tier name.
	Tier string
	// MaxErr is the measured maximum error.
	MaxErr float64
	// Bound is the limit it was checked against.
	Bound float64
}

// Error returns a formatted message describing the violation.
func (e AccuracyError) Error() string {
	return fmt.Sprintf("accuracy error for %s (%s): max error %.3g exceeds bound %.3g", e.Op, e.Tier, e.MaxErr, e.Bound)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
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

// ExitCode maps an error to the process exit status without printing anything.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var (
		configErr     ConfigError
		validationErr ValidationError
		timeoutErr    TimeoutError
		detErr        DeterminismError
		accErr        AccuracyError
	)
	switch {
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &detErr):
		return ExitErrorMismatch
	case errors.As(err, &accErr):
		return ExitErrorAccuracy
	default:
		return ExitErrorGeneric
	}
}
