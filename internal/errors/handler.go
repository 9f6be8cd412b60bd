package apperrors

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the ANSI sequences used when printing errors. A nil
// provider prints plain text.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

type noColors struct{}

func (noColors) Red() string    { return "" }
func (noColors) Yellow() string { return "" }
func (noColors) Reset() string  { return "" }

// HandleRunError prints a one-line diagnostic for err to out and returns the
// exit code that corresponds to it. A nil err returns ExitSuccess and prints
// nothing.
//
// Parameters:
//   - err: The error returned by the run, possibly nil.
//   - duration: How long the run took before failing. Zero omits the suffix.
//   - out: Destination for the diagnostic.
//   - colors: Color sequences, or nil for plain output.
//
// Returns:
//   - int: The process exit code.
func HandleRunError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = noColors{}
	}
	code := ExitCode(err)
	suffix := ""
	if duration > 0 {
		suffix = fmt.Sprintf(" after %s", duration.Round(time.Microsecond))
	}

	var timeoutErr TimeoutError
	switch code {
	case ExitErrorTimeout:
		if errors.As(err, &timeoutErr) {
			fmt.Fprintf(out, "%sTimeout: %v%s%s\n", colors.Yellow(), timeoutErr, suffix, colors.Reset())
		} else {
			fmt.Fprintf(out, "%sTimeout: run exceeded its deadline%s%s\n", colors.Yellow(), suffix, colors.Reset())
		}
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sCanceled%s%s\n", colors.Yellow(), suffix, colors.Reset())
	case ExitErrorConfig:
		fmt.Fprintf(out, "%sConfiguration error: %v%s\n", colors.Red(), err, colors.Reset())
	case ExitErrorMismatch:
		fmt.Fprintf(out, "%sDeterminism failure: %v%s\n", colors.Red(), err, colors.Reset())
	case ExitErrorAccuracy:
		fmt.Fprintf(out, "%sAccuracy failure: %v%s\n", colors.Red(), err, colors.Reset())
	default:
		fmt.Fprintf(out, "%sError: %v%s%s\n", colors.Red(), err, suffix, colors.Reset())
	}
	return code
}
