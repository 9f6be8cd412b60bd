// # Naming Conventions
//
// Functions in this package follow consistent naming patterns:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayEval], [DisplayGoldenReport], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Example: [FormatQuietEval].

package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/agbru/fixpoint/internal/accuracy"
	"github.com/agbru/fixpoint/internal/catalog"
	apperrors "github.com/agbru/fixpoint/internal/errors"
	"github.com/agbru/fixpoint/internal/format"
	"github.com/agbru/fixpoint/internal/ui"
)

// MaxReportedMismatches caps the drifted vectors listed by DisplayGoldenReport.
const MaxReportedMismatches = 20

// EvalResult is one evaluation of an op on decimal inputs.
type EvalResult struct {
	Op  catalog.Op
	In  []float64
	Raw []int64
	Out int64
	// Value is Out converted back to a decimal.
	Value float64
	Ref   float64
	Err   float64
}

// ResolveOp finds name at width w and tier t. An unset width means 64 bits
// and an unset tier means precise. Ops that have only an exact implementation
// are returned whatever tier was asked for.
func ResolveOp(cat *catalog.Catalog, name string, w catalog.Width, t catalog.Tier) (catalog.Op, error) {
	if w == catalog.AnyWidth {
		w = catalog.Width64
	}
	if t == catalog.AnyTier {
		t = catalog.TierPrecise
	}
	op, err := cat.Lookup(name, w, t)
	if err == nil {
		return op, nil
	}
	if exact, exactErr := cat.Lookup(name, w, catalog.TierExact); exactErr == nil {
		return exact, nil
	}
	return catalog.Op{}, err
}

// EvalOp converts the inputs to raw bits, evaluates op and scores the result
// against its reference. Inputs the width cannot represent are rejected.
func EvalOp(op catalog.Op, in ...float64) (EvalResult, error) {
	if len(in) < op.Arity() {
		return EvalResult{}, apperrors.ValidationError{
			Field:   "y",
			Message: fmt.Sprintf("%s takes %d operands", op.Name, op.Arity()),
		}
	}
	in = in[:op.Arity()]
	limit := op.Width.MaxDouble()
	r := EvalResult{Op: op, In: in, Raw: make([]int64, len(in))}
	for i, v := range in {
		if math.IsNaN(v) || math.Abs(v) >= limit {
			return EvalResult{}, apperrors.ValidationError{
				Field:   []string{"x", "y"}[i],
				Message: fmt.Sprintf("%g is outside the %d-bit range ±%g", v, op.Width, limit),
			}
		}
		r.Raw[i] = op.Width.FromDouble(v)
	}

	r.Out = op.Eval(r.Raw...)
	r.Value = op.Width.ToDouble(r.Out)
	dec := make([]float64, len(r.Raw))
	for i, raw := range r.Raw {
		dec[i] = op.Width.ToDouble(raw)
	}
	r.Ref = op.Reference(dec...)
	y := 0.0
	if len(dec) > 1 {
		y = dec[1]
	}
	r.Err = op.Metric.Error(dec[0], y, r.Value, r.Ref)
	return r, nil
}

// DisplayEval prints the inputs, the raw and decimal result, the reference
// and the error.
func DisplayEval(out io.Writer, r EvalResult) {
	w := int(r.Op.Width)
	fmt.Fprintf(out, "%s%s%s\n", ui.TierColor(r.Op.Tier.String()), r.Op.Key(), ui.ColorReset())
	for i, raw := range r.Raw {
		fmt.Fprintf(out, "  %s = %s%s%s (%s)\n", []string{"x", "y"}[i],
			ui.ColorBlue(), format.FormatFixed(raw, r.Op.Width.Shift()), ui.ColorReset(), format.FormatRaw(raw, w))
	}
	fmt.Fprintf(out, "  result    = %s%s%s (%s)\n",
		ui.ColorGreen(), format.FormatFixed(r.Out, r.Op.Width.Shift()), ui.ColorReset(), format.FormatRaw(r.Out, w))
	fmt.Fprintf(out, "  reference = %s%.12g%s\n", ui.ColorGrey(), r.Ref, ui.ColorReset())
	fmt.Fprintf(out, "  %s error = %s\n", r.Op.Metric.Kind, format.FormatError(r.Err))
}

// FormatQuietEval returns the raw hex result and its decimal value on one
// line, for scripts.
func FormatQuietEval(r EvalResult) string {
	return fmt.Sprintf("%s %s", format.FormatRaw(r.Out, int(r.Op.Width)), format.FormatFixed(r.Out, r.Op.Width.Shift()))
}

// DisplayGoldenReport summarizes a golden replay.
func DisplayGoldenReport(out io.Writer, path string, total int, mismatches []apperrors.DeterminismError) {
	if len(mismatches) == 0 {
		fmt.Fprintf(out, "%s%d vectors from %s reproduce bit for bit.%s\n", ui.ColorGreen(), total, path, ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "%s%d of %d vectors from %s drifted:%s\n", ui.ColorRed(), len(mismatches), total, path, ui.ColorReset())
	for i, m := range mismatches {
		if i == MaxReportedMismatches {
			fmt.Fprintf(out, "  ... and %d more\n", len(mismatches)-i)
			break
		}
		fmt.Fprintf(out, "  %v\n", m)
	}
}

// DisplayBasicValues prints each op's hand-picked inputs with the result, the
// reference and the error.
func DisplayBasicValues(out io.Writer, ops []catalog.Op) {
	fmt.Fprintf(out, "\n--- Basic Values ---\n")
	for _, op := range ops {
		basics := accuracy.EvaluateBasic(op)
		if len(basics) == 0 {
			continue
		}
		fmt.Fprintf(out, "%s%s%s\n", ui.TierColor(op.Tier.String()), op.Key(), ui.ColorReset())
		for _, b := range basics {
			fmt.Fprintf(out, "  %s(%s) = %-14.10g ref %-14.10g error %s\n",
				op.Name, formatWorst(b.In), b.Out, b.Ref, format.FormatError(b.Err))
		}
	}
}
