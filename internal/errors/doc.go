// Package apperrors defines structured application error types for fixbench,
// allowing for a clear distinction between error classes (configuration,
// evaluation, determinism, accuracy) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Types that carry a cause implement Unwrap() to support errors.Is() and errors.As().
// The kernel packages never return errors; these types belong to the tooling.
package apperrors
