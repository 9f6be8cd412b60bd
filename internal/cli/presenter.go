package cli

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/agbru/fixpoint/internal/calibration"
	apperrors "github.com/agbru/fixpoint/internal/errors"
	"github.com/agbru/fixpoint/internal/format"
	"github.com/agbru/fixpoint/internal/metrics"
	"github.com/agbru/fixpoint/internal/orchestration"
	"github.com/agbru/fixpoint/internal/ui"
)

// CLIProgressReporter renders job progress with a spinner.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress implements orchestration.ProgressReporter.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numJobs int, out io.Writer) {
	DisplayProgress(wg, progressChan, numJobs, out)
}

// CLIResultPresenter renders results as colorized terminal tables.
type CLIResultPresenter struct{}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// tint wraps the first occurrence of s in line with color. Tables are laid out
// uncolored first so that escape sequences do not skew tabwriter columns.
func tint(line, s, color string) string {
	if color == "" {
		return line
	}
	return strings.Replace(line, s, color+s+ui.ColorReset(), 1)
}

func status(r orchestration.JobResult) (string, string) {
	switch {
	case r.Err != nil:
		return "failed", ui.ColorRed()
	case r.Accuracy.Exact():
		return "exact", ui.ColorGreen()
	default:
		return "ok", ""
	}
}

// PresentAccuracyTable prints one row per op: samples, average and maximum
// error. With details it adds the skipped count, the worst input and the
// sweep duration.
func (CLIResultPresenter) PresentAccuracyTable(results []orchestration.JobResult, details bool, out io.Writer) {
	fmt.Fprintf(out, "\n--- Accuracy Summary ---\n")

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	header := "Operation\tSamples\tAvg error\tMax error\tStatus"
	if details {
		header += "\tSkipped\tWorst input\tDuration"
	}
	fmt.Fprintln(tw, header+"\t")
	for _, r := range results {
		st, _ := status(r)
		row := []string{
			r.Op.Key(),
			format.FormatNumberString(strconv.Itoa(r.Accuracy.Tested)),
			format.FormatError(r.Accuracy.AvgErr()),
			format.FormatError(r.Accuracy.MaxErr),
			st,
		}
		if details {
			row = append(row,
				strconv.Itoa(r.Accuracy.Skipped),
				formatWorst(r.Accuracy.WorstDecimal()),
				format.FormatExecutionDuration(r.Duration))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}
	tw.Flush()

	lines := strings.SplitAfter(buf.String(), "\n")
	fmt.Fprint(out, ui.ColorBold()+strings.TrimRight(lines[0], "\n")+ui.ColorReset()+"\n")
	for i, r := range results {
		line := tint(lines[i+1], r.Op.Key(), ui.TierColor(r.Op.Tier.String()))
		st, color := status(r)
		fmt.Fprint(out, tint(line, "  "+st, color))
		if r.Err != nil && details {
			fmt.Fprintf(out, "    %s%v%s\n", ui.ColorRed(), r.Err, ui.ColorReset())
		}
	}
}

func formatWorst(in []float64) string {
	if len(in) == 0 {
		return "-"
	}
	parts := make([]string, len(in))
	for i, v := range in {
		parts[i] = strconv.FormatFloat(v, 'g', 10, 64)
	}
	return strings.Join(parts, ", ")
}

// PresentTierViolations lists families whose cheaper tiers measured more
// accurate than their precise siblings allow.
func (CLIResultPresenter) PresentTierViolations(violations []apperrors.AccuracyError, out io.Writer) {
	fmt.Fprintf(out, "\n%sTier ordering violations:%s\n", ui.ColorRed(), ui.ColorReset())
	for _, v := range violations {
		fmt.Fprintf(out, "  %s%s%s (%s): max error %s exceeds %s\n",
			ui.ColorYellow(), v.Op, ui.ColorReset(), v.Tier,
			format.FormatError(v.MaxErr), format.FormatError(v.Bound))
	}
}

// PresentBenchmarkTable prints throughput per op. Failed jobs are listed
// below the table.
func (CLIResultPresenter) PresentBenchmarkTable(results []orchestration.JobResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Benchmark Summary ---\n")
	ms := make([]calibration.Measurement, 0, len(results))
	var failed []orchestration.JobResult
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
			continue
		}
		ms = append(ms, r.Bench)
	}
	calibration.PrintMeasurements(out, ms)
	for _, r := range failed {
		fmt.Fprintf(out, "%s%s failed: %v%s\n", ui.ColorRed(), r.Op.Key(), r.Err, ui.ColorReset())
	}
}

// HandleError prints err and returns the matching exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleRunError(err, duration, out, ui.ColorProvider{})
}

// DisplayMemoryStats shows what the run allocated. The kernel itself does not
// allocate, so the figures are those of the tooling around it.
func DisplayMemoryStats(delta metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(delta.HeapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(delta.TotalAlloc))
	fmt.Fprintf(out, "  Heap objects:    %s\n", format.FormatNumberString(strconv.FormatUint(delta.Mallocs, 10)))
	fmt.Fprintf(out, "  GC cycles:       %d\n", delta.NumGC)
}
