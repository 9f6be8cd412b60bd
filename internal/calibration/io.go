package calibration

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/agbru/fixpoint/internal/format"
	"github.com/agbru/fixpoint/internal/ui"
)

// PrintCalibrationResults formats the calibrated iteration counts as a table.
func PrintCalibrationResults(out io.Writer, p *CalibrationProfile, path string) {
	fmt.Fprintf(out, "\n--- Calibration Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %sOperation%s\t│ %sIterations%s\n", ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())
	fmt.Fprintf(tw, "  %s\t┼%s\n", strings.Repeat("─", 20), strings.Repeat("─", 14))
	for _, k := range p.Keys() {
		n := strconv.Itoa(p.Iterations[k])
		fmt.Fprintf(tw, "  %s%s%s\t│ %s%s%s\n", ui.ColorBlue(), k, ui.ColorReset(), ui.ColorYellow(), format.FormatNumberString(n), ui.ColorReset())
	}
	tw.Flush()
	fmt.Fprintf(out, "%sCalibration saved%s to %s (target %s, took %s)\n",
		ui.ColorGreen(), ui.ColorReset(), path, p.Target, p.CalibrationTime)
}

// PrintMeasurements prints one throughput line per measurement, in order.
// The table is laid out uncolored and the operation keys are tinted after,
// since escape sequences of different lengths would skew the columns.
func PrintMeasurements(out io.Writer, ms []Measurement) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Operation\tThroughput\tns/op\tbest pass\t\n")
	for _, m := range ms {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
			m.Op.Key(),
			format.FormatMops(m.Mops),
			format.FormatPerOp(m.Best, int(m.Ops())),
			format.FormatExecutionDuration(m.Best))
	}
	tw.Flush()

	lines := strings.SplitAfter(buf.String(), "\n")
	fmt.Fprint(out, lines[0])
	for i, m := range ms {
		key := m.Op.Key()
		fmt.Fprint(out, strings.Replace(lines[i+1], key, ui.TierColor(m.Op.Tier.String())+key+ui.ColorReset(), 1))
	}
}
