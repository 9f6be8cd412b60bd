package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/fixpoint/internal/catalog"
	"github.com/agbru/fixpoint/internal/config"
	"github.com/agbru/fixpoint/internal/format"
	"github.com/agbru/fixpoint/internal/sysmon"
	"github.com/agbru/fixpoint/internal/ui"
)

// PrintExecutionConfig displays the selection and sweep parameters of a run.
func PrintExecutionConfig(cfg config.AppConfig, ops []catalog.Op, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Mode %s%s%s over %s%d%s operations (op=%s, width=%s, tier=%s), timeout %s%s%s.\n",
		ui.ColorMagenta(), cfg.Mode(), ui.ColorReset(),
		ui.ColorMagenta(), len(ops), ui.ColorReset(),
		cfg.Ops, cfg.Width, cfg.Tier,
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	if cfg.Mode() == config.ModeAccuracy {
		fmt.Fprintf(out, "Sweep: %s%s%s samples per domain, seed %s%#x%s, %s%d%s workers.\n",
			ui.ColorBlue(), format.FormatNumberString(fmt.Sprint(cfg.Samples)), ui.ColorReset(),
			ui.ColorBlue(), cfg.Seed, ui.ColorReset(),
			ui.ColorBlue(), cfg.Workers, ui.ColorReset())
	}
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorBlue(), runtime.NumCPU(), ui.ColorReset(), ui.ColorBlue(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}

// PrintBenchHeader describes the host a benchmark runs on.
func PrintBenchHeader(host sysmon.Host, out io.Writer) {
	fmt.Fprintf(out, "Host: %s%s%s, %d logical CPUs", ui.ColorBlue(), host, ui.ColorReset(), host.LogicalCPUs)
	if host.TotalMemory > 0 {
		fmt.Fprintf(out, ", %s RAM", format.FormatBytes(host.TotalMemory))
	}
	fmt.Fprintln(out)
}
