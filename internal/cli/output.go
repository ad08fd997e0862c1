package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/agbru/powkit/internal/semiring"
	"github.com/agbru/powkit/internal/ui"
)

const (
	// TruncationLimit is the digit count above which results are shortened
	// unless verbose output was requested.
	TruncationLimit = 100
	// DisplayEdges is the number of leading and trailing digits kept when a
	// result is shortened.
	DisplayEdges = 25
)

// ColorProvider adapts the active ui theme to apperrors.ColorProvider.
type ColorProvider struct{}

// Yellow returns the warning color.
func (ColorProvider) Yellow() string { return ui.CurrentTheme().Warning }

// Reset returns the reset sequence.
func (ColorProvider) Reset() string { return ui.CurrentTheme().Reset }

// FormatExecutionDuration picks µs, ms or the default representation
// depending on the magnitude of d.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "< 1µs"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.String()
	}
}

// formatNumberString inserts thousands separators into a decimal string.
func formatNumberString(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	b.Grow(len(sign) + len(s) + (len(s)-1)/3)
	b.WriteString(sign)
	head := len(s) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(s[:head])
	for i := head; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatBigInt renders v in decimal, shortened to its edges when it has
// more than TruncationLimit digits and verbose is false.
func FormatBigInt(v *big.Int, verbose bool) string {
	s := v.String()
	digits := len(strings.TrimPrefix(s, "-"))
	if verbose || digits <= TruncationLimit {
		return s
	}
	return s[:len(s)-digits+DisplayEdges] + "..." + s[len(s)-DisplayEdges:]
}

// DisplayResult prints label = value, followed by size details when
// details is set.
//
// Parameters:
//   - out: The output writer.
//   - label: The left-hand side, e.g. "F(100)".
//   - result: The value to print.
//   - duration: The time the computation took.
//   - verbose: Print the value in full regardless of its size.
//   - details: Print bit length, digit count and timing.
func DisplayResult(out io.Writer, label string, result *big.Int, duration time.Duration, verbose, details bool) {
	t := ui.CurrentTheme()
	s := result.String()
	digits := len(strings.TrimPrefix(s, "-"))
	truncated := !verbose && digits > TruncationLimit

	value := formatNumberString(s)
	if truncated {
		value = FormatBigInt(result, false)
	}
	fmt.Fprintf(out, "%s = %s\n", t.Paint(t.Bold, label), t.Paint(t.Value, value))
	if truncated {
		fmt.Fprintf(out, "(Tip: use the %s option to display the full value)\n", t.Paint(t.Warning, "-v"))
	}
	if !details {
		return
	}
	fmt.Fprintf(out, "%s\n", t.Paint(t.Heading, "--- Details ---"))
	fmt.Fprintf(out, "Binary size      : %s bits\n", formatNumberString(strconv.Itoa(result.BitLen())))
	fmt.Fprintf(out, "Number of digits : %s\n", formatNumberString(strconv.Itoa(digits)))
	if digits > 6 {
		fmt.Fprintf(out, "Scientific       : %.6e\n", new(big.Float).SetInt(result))
	}
	fmt.Fprintf(out, "Time             : %s\n", t.Paint(t.Muted, FormatExecutionDuration(duration)))
}

// FormatWeight renders a path weight: ∞ for semiring.Inf, integers without
// a fractional part, other values in %g.
func FormatWeight(w semiring.Weight) string {
	switch {
	case math.IsInf(w, 1):
		return "∞"
	case math.IsInf(w, -1):
		return "-∞"
	case w == math.Trunc(w) && math.Abs(w) < 1e15:
		return strconv.FormatInt(int64(w), 10)
	default:
		return strconv.FormatFloat(w, 'g', -1, 64)
	}
}

// FormatReachable renders a reachability entry.
func FormatReachable(b bool) string {
	if b {
		return "1"
	}
	return "·"
}

// DisplayMatrix prints m as a right-aligned table with row and column
// indices, formatting each entry with format.
func DisplayMatrix[T any](out io.Writer, title string, m semiring.Matrix[T], format func(T) string) error {
	t := ui.CurrentTheme()
	if title != "" {
		fmt.Fprintln(out, t.Paint(t.Heading, title))
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\t")
	for j := range m {
		fmt.Fprintf(tw, "%d\t", j)
	}
	fmt.Fprintln(tw)
	for i, row := range m {
		fmt.Fprintf(tw, "%d\t", i)
		for _, v := range row {
			fmt.Fprintf(tw, "%s\t", format(v))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WeightMatrixJSON converts m into a JSON-friendly form where missing edges
// are null.
func WeightMatrixJSON(m semiring.Matrix[semiring.Weight]) [][]*float64 {
	out := make([][]*float64, len(m))
	for i, row := range m {
		out[i] = make([]*float64, len(row))
		for j, w := range row {
			if !math.IsInf(w, 0) && !math.IsNaN(w) {
				v := w
				out[i][j] = &v
			}
		}
	}
	return out
}
