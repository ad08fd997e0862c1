package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the highlight used for durations. It lives here
// so that cli can depend on this package and not the other way around.
type ColorProvider interface {
	Yellow() string
	Reset() string
}

// DefaultColorProvider highlights nothing.
type DefaultColorProvider struct{}

func (d DefaultColorProvider) Yellow() string { return "" }
func (d DefaultColorProvider) Reset() string  { return "" }

// rejections maps each precondition sentinel to the label printed for it.
var rejections = []struct {
	kind  error
	label string
}{
	{ErrNonPositiveExponent, "exponent"},
	{ErrNegativeExponent, "exponent"},
	{ErrExponentOverflow, "exponent"},
	{ErrEmptyMatrix, "matrix"},
	{ErrNotSquare, "matrix"},
	{ErrDimensionMismatch, "matrix"},
	{ErrInvalidNumeral, "numeral"},
}

// RejectionLabel names the input an invalid-argument error is about:
// "exponent", "matrix", "numeral", or "input" for other ErrInvalidArgument
// errors. It returns "" when err is not an invalid-argument error.
func RejectionLabel(err error) string {
	if !IsInvalidArgument(err) {
		return ""
	}
	for _, r := range rejections {
		if errors.Is(err, r.kind) {
			return r.label
		}
	}
	return "input"
}

// HandleCalculationError prints the status line for a failed power,
// Fibonacci or shortest-path run and returns the matching exit code.
// Deadlines and cancellation take precedence over the failing engine;
// precondition failures exit with ExitErrorInput.
//
// Parameters:
//   - err: The failure; nil yields ExitSuccess and prints nothing.
//   - duration: Elapsed time, printed when positive.
//   - out: Destination of the status line.
//   - colors: Duration highlight; nil disables it.
//
// Returns:
//   - int: The exit code.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	elapsed := ""
	if duration > 0 {
		elapsed = fmt.Sprintf(" after %s%s%s", colors.Yellow(), duration, colors.Reset())
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "Status: Failure (Timeout). The execution limit was reached%s.\n", elapsed)
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sStatus: Canceled%s.%s\n", colors.Yellow(), elapsed, colors.Reset())
		return ExitErrorCanceled
	case IsInvalidArgument(err):
		fmt.Fprintf(out, "Status: Rejected (%s). Invalid input: %v\n", RejectionLabel(err), err)
		return ExitErrorInput
	}

	var calcErr CalculationError
	if errors.As(err, &calcErr) && calcErr.Engine != "" {
		fmt.Fprintf(out, "Status: Failure in engine %s%s: %v\n", calcErr.Engine, elapsed, calcErr.Cause)
		return ExitErrorGeneric
	}
	fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
	return ExitErrorGeneric
}
