package orchestration_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/fixpoint/internal/accuracy"
	"github.com/agbru/fixpoint/internal/catalog"
	"github.com/agbru/fixpoint/internal/config"
	apperrors "github.com/agbru/fixpoint/internal/errors"
	"github.com/agbru/fixpoint/internal/orchestration"
	"github.com/agbru/fixpoint/internal/orchestration/mocks"
)

func selectOps(t *testing.T, patterns string, w catalog.Width, tier catalog.Tier) []catalog.Op {
	t.Helper()
	ops, err := catalog.Default().Filter(patterns, w, tier)
	if err != nil {
		t.Fatal(err)
	}
	return ops
}

func TestExecuteJobs(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ev := mocks.NewMockEvaluator(ctrl)
	ops := selectOps(t, "sqrt", catalog.Width64, catalog.AnyTier)

	ev.EXPECT().Name().Return("mock").AnyTimes()
	ev.EXPECT().Evaluate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, op catalog.Op, report func(float64)) (orchestration.JobResult, error) {
			report(0.5)
			report(1)
			return orchestration.JobResult{Accuracy: accuracy.Result{Op: op, Tested: 10}}, nil
		}).Times(len(ops))

	results := orchestration.ExecuteJobs(context.Background(), ops, ev, 2, orchestration.NullProgressReporter{}, &bytes.Buffer{})
	if len(results) != len(ops) {
		t.Fatalf("got %d results, want %d", len(results), len(ops))
	}
	for i, r := range results {
		if r.Op.Key() != ops[i].Key() {
			t.Errorf("result %d is %s, want %s", i, r.Op.Key(), ops[i].Key())
		}
		if r.Err != nil || r.Accuracy.Tested != 10 {
			t.Errorf("result %d: %+v", i, r)
		}
	}
}

func TestExecuteJobs_ErrorIsolated(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ev := mocks.NewMockEvaluator(ctrl)
	ops := selectOps(t, "sqrt", catalog.Width32, catalog.AnyTier)
	boom := errors.New("boom")

	ev.EXPECT().Name().Return("mock").AnyTimes()
	ev.EXPECT().Evaluate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, op catalog.Op, _ func(float64)) (orchestration.JobResult, error) {
			if op.Tier == catalog.TierFast {
				return orchestration.JobResult{}, boom
			}
			return orchestration.JobResult{}, nil
		}).Times(len(ops))

	results := orchestration.ExecuteJobs(context.Background(), ops, ev, 0, orchestration.NullProgressReporter{}, &bytes.Buffer{})
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			if !errors.Is(r.Err, boom) || r.Op.Tier != catalog.TierFast {
				t.Errorf("unexpected failure on %s: %v", r.Op.Key(), r.Err)
			}
		}
	}
	if failed != 1 {
		t.Errorf("got %d failures, want 1", failed)
	}
}

func TestExecuteJobs_Panic(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ev := mocks.NewMockEvaluator(ctrl)
	ops := selectOps(t, "floor", catalog.Width64, catalog.AnyTier)

	ev.EXPECT().Name().Return("mock").AnyTimes()
	ev.EXPECT().Evaluate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, catalog.Op, func(float64)) (orchestration.JobResult, error) {
			panic("evaluator exploded")
		}).Times(len(ops))

	results := orchestration.ExecuteJobs(context.Background(), ops, ev, 1, orchestration.NullProgressReporter{}, &bytes.Buffer{})
	var evalErr apperrors.EvaluationError
	if !errors.As(results[0].Err, &evalErr) || !strings.Contains(evalErr.Error(), "evaluator exploded") {
		t.Errorf("panic not converted to an evaluation error: %v", results[0].Err)
	}
}

func TestExecuteJobs_CanceledContextSkipsJobs(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ev := mocks.NewMockEvaluator(ctrl)
	ops := selectOps(t, "sin,cos", catalog.Width64, catalog.AnyTier)

	ev.EXPECT().Name().Return("mock").AnyTimes()
	ev.EXPECT().Evaluate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := orchestration.ExecuteJobs(ctx, ops, ev, 4, orchestration.NullProgressReporter{}, &bytes.Buffer{})
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("%s: err = %v, want context.Canceled", r.Op.Key(), r.Err)
		}
	}
}

func TestExecuteJobs_RespectsWorkerLimit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	ev := mocks.NewMockEvaluator(ctrl)
	ops := selectOps(t, "all", catalog.Width32, catalog.AnyTier)

	var inFlight, peak atomic.Int32
	ev.EXPECT().Name().Return("mock").AnyTimes()
	ev.EXPECT().Evaluate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, catalog.Op, func(float64)) (orchestration.JobResult, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			inFlight.Add(-1)
			return orchestration.JobResult{}, nil
		}).Times(len(ops))

	orchestration.ExecuteJobs(context.Background(), ops, ev, 2, orchestration.NullProgressReporter{}, &bytes.Buffer{})
	if peak.Load() > 2 {
		t.Errorf("peak concurrency %d exceeds worker limit 2", peak.Load())
	}
}

func TestExecuteJobs_ReporterSeesEveryJob(t *testing.T) {
	t.Parallel()
	ops := selectOps(t, "exp2", catalog.Width64, catalog.AnyTier)
	var seen atomic.Int32
	reporter := orchestration.ProgressReporterFunc(func(wg *sync.WaitGroup, ch <-chan orchestration.ProgressUpdate, n int, _ io.Writer) {
		defer wg.Done()
		agg := orchestration.NewProgressAggregator(n)
		for u := range ch {
			agg.Update(u)
			seen.Add(1)
		}
		if agg.CalculateAverage() != 1 {
			t.Errorf("final average = %v, want 1", agg.CalculateAverage())
		}
	})

	ev := orchestration.AccuracyEvaluator{Samples: 64, Seed: 1}
	results := orchestration.ExecuteJobs(context.Background(), ops, ev, 1, reporter, &bytes.Buffer{})
	for _, r := range results {
		if r.Err != nil {
			t.Fatalf("%s: %v", r.Op.Key(), r.Err)
		}
	}
	if int(seen.Load()) < len(ops) {
		t.Errorf("reporter saw %d updates, want at least %d", seen.Load(), len(ops))
	}
}

func TestBenchmarkEvaluator(t *testing.T) {
	t.Parallel()
	ops := selectOps(t, "add", catalog.Width32, catalog.AnyTier)
	ev := orchestration.BenchmarkEvaluator{Seed: 1}
	results := orchestration.ExecuteJobs(context.Background(), ops, ev, 1, orchestration.NullProgressReporter{}, &bytes.Buffer{})
	if results[0].Err != nil {
		t.Fatal(results[0].Err)
	}
	if results[0].Bench.Mops <= 0 || results[0].Bench.Iters <= 0 {
		t.Errorf("unexpected measurement %+v", results[0].Bench)
	}
}

func TestAnalyzeAccuracyResults(t *testing.T) {
	t.Parallel()
	sqrt := selectOps(t, "sqrt", catalog.Width64, catalog.AnyTier)
	byTier := make(map[catalog.Tier]catalog.Op)
	for _, op := range sqrt {
		byTier[op.Tier] = op
	}
	job := func(tier catalog.Tier, maxErr float64) orchestration.JobResult {
		op := byTier[tier]
		return orchestration.JobResult{Op: op, Accuracy: accuracy.Result{Op: op, Tested: 1, MaxErr: maxErr}}
	}

	t.Run("ordered", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		p := mocks.NewMockResultPresenter(ctrl)
		p.EXPECT().PresentAccuracyTable(gomock.Len(2), true, gomock.Any())

		var out bytes.Buffer
		results := []orchestration.JobResult{job(catalog.TierFast, 1e-4), job(catalog.TierPrecise, 1e-6)}
		if code := orchestration.AnalyzeAccuracyResults(results, 0.25, true, p, &out); code != apperrors.ExitSuccess {
			t.Errorf("exit code = %d", code)
		}
		if results[0].Op.Tier != catalog.TierFast {
			t.Error("results should be sorted by key")
		}
		if !strings.Contains(out.String(), "Success") {
			t.Errorf("unexpected output %q", out.String())
		}
	})

	t.Run("inverted", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		p := mocks.NewMockResultPresenter(ctrl)
		p.EXPECT().PresentAccuracyTable(gomock.Any(), false, gomock.Any())
		p.EXPECT().PresentTierViolations(gomock.Len(1), gomock.Any())

		results := []orchestration.JobResult{job(catalog.TierPrecise, 1e-3), job(catalog.TierFast, 1e-6)}
		if code := orchestration.AnalyzeAccuracyResults(results, 0.25, false, p, &bytes.Buffer{}); code != apperrors.ExitErrorAccuracy {
			t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorAccuracy)
		}
	})

	t.Run("job error wins", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		p := mocks.NewMockResultPresenter(ctrl)
		failed := job(catalog.TierFast, 0)
		failed.Err = apperrors.EvaluationError{Op: failed.Op.Key(), Cause: context.Canceled}
		p.EXPECT().PresentAccuracyTable(gomock.Any(), false, gomock.Any())
		p.EXPECT().HandleError(failed.Err, gomock.Any(), gomock.Any()).Return(apperrors.ExitErrorCanceled)

		results := []orchestration.JobResult{job(catalog.TierPrecise, 1e-3), failed}
		if code := orchestration.AnalyzeAccuracyResults(results, 0.25, false, p, &bytes.Buffer{}); code != apperrors.ExitErrorCanceled {
			t.Errorf("exit code = %d", code)
		}
	})
}

func TestAnalyzeBenchmarkResults(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	p := mocks.NewMockResultPresenter(ctrl)
	ops := selectOps(t, "mul", catalog.Width64, catalog.AnyTier)
	results := make([]orchestration.JobResult, len(ops))
	for i, op := range ops {
		results[i] = orchestration.JobResult{Op: op}
	}
	p.EXPECT().PresentBenchmarkTable(gomock.Len(len(ops)), gomock.Any())
	if code := orchestration.AnalyzeBenchmarkResults(results, p, &bytes.Buffer{}); code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d", code)
	}
}

func TestSelectOps(t *testing.T) {
	t.Parallel()
	cfg := config.Defaults()
	cfg.Ops = "sqrt"
	cfg.Width = "32"
	cfg.Tier = "precise"
	ops, err := orchestration.SelectOps(cfg, catalog.Default())
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 1 || ops[0].Key() != "sqrt/32/precise" {
		t.Errorf("got %v", ops)
	}

	cfg.Ops = "nosuchop"
	if _, err := orchestration.SelectOps(cfg, catalog.Default()); !errors.Is(err, catalog.ErrUnknownOp) {
		t.Errorf("err = %v, want ErrUnknownOp", err)
	}
}
