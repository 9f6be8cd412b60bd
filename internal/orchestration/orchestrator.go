package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/fixpoint/internal/accuracy"
	"github.com/agbru/fixpoint/internal/calibration"
	"github.com/agbru/fixpoint/internal/catalog"
	apperrors "github.com/agbru/fixpoint/internal/errors"
)

const tracerName = "github.com/agbru/fixpoint/internal/orchestration"

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. Updates that find the buffer full are dropped rather than block a
// job.
const ProgressBufferMultiplier = 5

// AccuracyEvaluator runs seeded accuracy sweeps.
type AccuracyEvaluator struct {
	Samples int
	Seed    uint64
}

// Name implements Evaluator.
func (AccuracyEvaluator) Name() string { return "accuracy" }

// Evaluate implements Evaluator.
func (e AccuracyEvaluator) Evaluate(ctx context.Context, op catalog.Op, report func(float64)) (JobResult, error) {
	res, err := accuracy.Evaluate(ctx, op, accuracy.Options{Samples: e.Samples, Seed: e.Seed, Progress: report})
	return JobResult{Accuracy: res}, err
}

// BenchmarkEvaluator measures throughput. Iteration counts come from Profile
// when it covers the op, otherwise from the built-in estimate.
type BenchmarkEvaluator struct {
	Profile *calibration.CalibrationProfile
	Seed    uint64
}

// Name implements Evaluator.
func (BenchmarkEvaluator) Name() string { return "benchmark" }

// Evaluate implements Evaluator.
func (e BenchmarkEvaluator) Evaluate(ctx context.Context, op catalog.Op, report func(float64)) (JobResult, error) {
	m, err := calibration.Measure(ctx, op, calibration.ResolveIterations(e.Profile, op), e.Seed)
	report(1)
	return JobResult{Bench: m}, err
}

// ExecuteJobs evaluates every op with at most workers jobs in flight and
// returns the results in op order. A failing job does not cancel the others;
// its error is recorded in its result. Each job runs inside a trace span.
func ExecuteJobs(ctx context.Context, ops []catalog.Op, ev Evaluator, workers int, reporter ProgressReporter, out io.Writer) []JobResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]JobResult, len(ops))
	progressChan := make(chan ProgressUpdate, len(ops)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(ops), out)

	tracer := otel.Tracer(tracerName)
	var g errgroup.Group
	g.SetLimit(workers)

	for i, op := range ops {
		idx := i
		g.Go(func() error {
			jobCtx, span := tracer.Start(ctx, ev.Name()+" "+op.Key(), trace.WithAttributes(
				attribute.String("fixbench.op", op.Name),
				attribute.Int("fixbench.width", int(op.Width)),
				attribute.String("fixbench.tier", op.Tier.String()),
			))
			defer span.End()

			report := func(v float64) {
				select {
				case progressChan <- ProgressUpdate{JobIndex: idx, Value: v}:
				default:
				}
			}

			start := time.Now()
			res, err := runJob(jobCtx, ev, op, report)
			res.Op = op
			res.Duration = time.Since(start)
			res.Err = err
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			results[idx] = res
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// runJob converts a panicking evaluator into an error so one bad job cannot
// take down the run.
func runJob(ctx context.Context, ev Evaluator, op catalog.Op, report func(float64)) (res JobResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = apperrors.EvaluationError{Op: op.Key(), Cause: fmt.Errorf("panic: %v", r)}
		}
	}()
	if err := ctx.Err(); err != nil {
		return JobResult{}, apperrors.EvaluationError{Op: op.Key(), Cause: err}
	}
	return ev.Evaluate(ctx, op, report)
}

func sortByKey(results []JobResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Op.Key() < results[j].Op.Key()
	})
}

// firstError returns the most significant error: cancellation and timeouts
// take precedence so the exit code reflects why the run stopped.
func firstError(results []JobResult) error {
	var first error
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		if errors.Is(r.Err, context.Canceled) || errors.Is(r.Err, context.DeadlineExceeded) {
			return r.Err
		}
		if first == nil {
			first = r.Err
		}
	}
	return first
}

// AnalyzeAccuracyResults sorts and presents the sweep, then checks tier
// ordering within each family.
//
// Returns ExitSuccess when every job succeeded and every family is ordered,
// the error's exit code when a job failed, and ExitErrorAccuracy when a
// family's tiers are out of order.
func AnalyzeAccuracyResults(results []JobResult, slack float64, details bool, presenter ResultPresenter, out io.Writer) int {
	sortByKey(results)
	presenter.PresentAccuracyTable(results, details, out)

	if err := firstError(results); err != nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. Not every operation could be evaluated.\n")
		return presenter.HandleError(err, 0, out)
	}

	sweeps := make([]accuracy.Result, len(results))
	for i, r := range results {
		sweeps[i] = r.Accuracy
	}
	if violations := accuracy.CheckTierOrdering(sweeps, slack); len(violations) > 0 {
		presenter.PresentTierViolations(violations, out)
		fmt.Fprintf(out, "\nGlobal Status: Failure. %d tier ordering violation(s).\n", len(violations))
		return apperrors.ExitErrorAccuracy
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. %d operations evaluated, all tiers ordered.\n", len(results))
	return apperrors.ExitSuccess
}

// AnalyzeBenchmarkResults sorts and presents throughput figures.
func AnalyzeBenchmarkResults(results []JobResult, presenter ResultPresenter, out io.Writer) int {
	sortByKey(results)
	presenter.PresentBenchmarkTable(results, out)
	if err := firstError(results); err != nil {
		return presenter.HandleError(err, 0, out)
	}
	return apperrors.ExitSuccess
}
