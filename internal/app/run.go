package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/agbru/fixpoint/internal/calibration"
	"github.com/agbru/fixpoint/internal/catalog"
	"github.com/agbru/fixpoint/internal/cli"
	apperrors "github.com/agbru/fixpoint/internal/errors"
	"github.com/agbru/fixpoint/internal/golden"
	"github.com/agbru/fixpoint/internal/logging"
	"github.com/agbru/fixpoint/internal/metrics"
	"github.com/agbru/fixpoint/internal/orchestration"
	"github.com/agbru/fixpoint/internal/sysmon"
	"github.com/agbru/fixpoint/internal/tui"
)

// selectOps resolves --op, --width and --tier against the catalog.
func (a *Application) selectOps() ([]catalog.Op, int) {
	ops, err := orchestration.SelectOps(a.Config, a.Catalog)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return nil, apperrors.ExitErrorConfig
	}
	return ops, apperrors.ExitSuccess
}

// reporter returns the progress reporter and its writer. Quiet runs show no
// progress.
func (a *Application) reporter(out io.Writer) (orchestration.ProgressReporter, io.Writer) {
	if a.Config.Quiet {
		return orchestration.NullProgressReporter{}, io.Discard
	}
	return cli.CLIProgressReporter{}, out
}

// runAccuracy sweeps every selected op and checks tier ordering.
func (a *Application) runAccuracy(ctx context.Context, out io.Writer) int {
	ops, code := a.selectOps()
	if code != apperrors.ExitSuccess {
		return code
	}
	ev := orchestration.AccuracyEvaluator{Samples: a.Config.Samples, Seed: a.Config.Seed}
	if a.Config.TUI {
		return a.runTUI(ctx, ops, ev, a.Config.Workers, false)
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, ops, out)
	}
	a.Logger.Debug("accuracy sweep starting",
		logging.Int("ops", len(ops)),
		logging.Int("samples", a.Config.Samples),
		logging.Uint64("seed", a.Config.Seed))

	mc := metrics.NewMemoryCollector()
	before := mc.Snapshot()
	reporter, progressOut := a.reporter(out)
	results := orchestration.ExecuteJobs(ctx, ops, ev, a.Config.Workers, reporter, progressOut)
	a.record(results, false)

	code = orchestration.AnalyzeAccuracyResults(results, a.Config.Slack, a.Config.Details, cli.CLIResultPresenter{}, out)
	if a.Config.Details {
		cli.DisplayBasicValues(out, ops)
		cli.DisplayMemoryStats(mc.Snapshot().Since(before), out)
	}
	return code
}

// runBench measures throughput. Jobs run one at a time so that they do not
// compete for cores.
func (a *Application) runBench(ctx context.Context, out io.Writer) int {
	ops, code := a.selectOps()
	if code != apperrors.ExitSuccess {
		return code
	}

	profile, code := a.benchProfile(ctx, ops, out)
	if code != apperrors.ExitSuccess {
		return code
	}
	ev := orchestration.BenchmarkEvaluator{Profile: profile, Seed: a.Config.Seed}
	if a.Config.TUI {
		return a.runTUI(ctx, ops, ev, 1, true)
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, ops, out)
		cli.PrintBenchHeader(sysmon.Describe(), out)
	}
	reporter, progressOut := a.reporter(out)
	results := orchestration.ExecuteJobs(ctx, ops, ev, 1, reporter, progressOut)
	a.record(results, true)
	return orchestration.AnalyzeBenchmarkResults(results, cli.CLIResultPresenter{}, out)
}

// benchProfile calibrates and saves a new profile under --calibrate, and
// loads the saved one otherwise. A missing or foreign profile is replaced by
// an empty one, which makes every op fall back to the built-in estimate.
func (a *Application) benchProfile(ctx context.Context, ops []catalog.Op, out io.Writer) (*calibration.CalibrationProfile, int) {
	path := a.Config.CalibrationProfile
	if path == "" {
		path = calibration.GetDefaultProfilePath()
	}

	if !a.Config.Calibrate {
		profile, loaded := calibration.LoadOrCreateProfile(path)
		a.Logger.Debug("calibration profile", logging.String("path", path), logging.String("loaded", fmt.Sprint(loaded)))
		return profile, apperrors.ExitSuccess
	}

	if !a.Config.Quiet {
		fmt.Fprintf(out, "Calibrating %d operations (target %s per pass)...\n", len(ops), a.Config.BenchTarget)
	}
	start := time.Now()
	profile, err := calibration.CalibrateAll(ctx, ops, a.Config.BenchTarget, a.Config.Seed, func(done int) {
		a.Logger.Debug("calibrated", logging.Int("done", done), logging.Int("total", len(ops)))
	})
	if err != nil {
		return nil, cli.CLIResultPresenter{}.HandleError(err, time.Since(start), out)
	}
	if err := profile.SaveProfile(path); err != nil {
		a.Logger.Error("could not save calibration profile", err, logging.String("path", path))
	}
	if !a.Config.Quiet {
		calibration.PrintCalibrationResults(out, profile, path)
	}
	return profile, apperrors.ExitSuccess
}

// runVerifyGolden replays a golden file against this build.
func (a *Application) runVerifyGolden(out io.Writer) int {
	path := a.Config.VerifyGolden
	f, err := golden.ReadFile(path)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	mismatches, err := golden.Verify(f, a.Catalog)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %s no longer matches this catalog: %v\n", path, err)
		return apperrors.ExitErrorMismatch
	}
	a.metrics.AddGoldenMismatches(len(mismatches))
	cli.DisplayGoldenReport(out, path, len(f.Vectors), mismatches)
	if len(mismatches) > 0 {
		return apperrors.ExitErrorMismatch
	}
	return apperrors.ExitSuccess
}

// runTUI runs the jobs under the dashboard instead of the spinner.
func (a *Application) runTUI(ctx context.Context, ops []catalog.Op, ev orchestration.Evaluator, workers int, bench bool) int {
	code, results := tui.Run(ctx, tui.Session{
		Ops:       ops,
		Evaluator: ev,
		Workers:   workers,
		Slack:     a.Config.Slack,
		Bench:     bench,
		Version:   Version,
		Host:      sysmon.Describe().String(),
	})
	a.record(results, bench)
	return code
}

// record feeds successful results to the metrics registry.
func (a *Application) record(results []orchestration.JobResult, bench bool) {
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if bench {
			a.metrics.ObserveBenchmark(r.Bench)
		} else {
			a.metrics.ObserveAccuracy(r.Accuracy)
		}
	}
}
