package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/fixpoint/internal/accuracy"
	"github.com/agbru/fixpoint/internal/calibration"
	apperrors "github.com/agbru/fixpoint/internal/errors"
	"github.com/agbru/fixpoint/internal/metrics"
	"github.com/agbru/fixpoint/internal/orchestration"
)

func accuracyResult(t *testing.T, key string, maxErr float64) orchestration.JobResult {
	t.Helper()
	op := mustOp(t, key)
	return orchestration.JobResult{
		Op: op,
		Accuracy: accuracy.Result{
			Op:       op,
			Tested:   1000,
			Skipped:  3,
			TotalErr: maxErr * 500,
			MaxErr:   maxErr,
			Worst:    []int64{op.Width.FromDouble(0.5)},
			Duration: 12 * time.Millisecond,
		},
		Duration: 12 * time.Millisecond,
	}
}

func TestPresentAccuracyTable(t *testing.T) {
	t.Parallel()
	failed := accuracyResult(t, "sin/64/fast", 0)
	failed.Err = apperrors.EvaluationError{Op: "sin/64/fast", Cause: accuracy.ErrNoSamples}
	results := []orchestration.JobResult{
		accuracyResult(t, "add/64/exact", 0),
		accuracyResult(t, "sin/64/precise", 2e-9),
		failed,
	}

	tests := []struct {
		name    string
		details bool
		want    []string
		notWant []string
	}{
		{
			name:    "summary",
			want:    []string{"Accuracy Summary", "Operation", "add/64/exact", "1,000", "exact", "2.000e-09", "ok", "failed"},
			notWant: []string{"Worst input", "no sample"},
		},
		{
			name:    "details",
			details: true,
			want:    []string{"Skipped", "Worst input", "0.5", "12ms", "no sample within reference bounds"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			CLIResultPresenter{}.PresentAccuracyTable(results, tt.details, &buf)
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("output should not contain %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestPresentAccuracyTable_ColumnsAligned(t *testing.T) {
	t.Parallel()
	results := []orchestration.JobResult{
		accuracyResult(t, "add/64/exact", 0),
		accuracyResult(t, "atan2/32/fastest", 1e-3),
	}
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentAccuracyTable(results, false, &buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	rows := lines[len(lines)-2:]
	if strings.Index(rows[0], "1,000") != strings.Index(rows[1], "1,000") {
		t.Errorf("sample column misaligned:\n%s\n%s", rows[0], rows[1])
	}
}

func TestPresentTierViolations(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentTierViolations([]apperrors.AccuracyError{
		{Op: "exp/64/fast", Tier: "fast", MaxErr: 1e-9, Bound: 4e-10},
	}, &buf)
	out := buf.String()
	for _, w := range []string{"Tier ordering violations", "exp/64/fast", "1.000e-09", "4.000e-10"} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestPresentBenchmarkTable(t *testing.T) {
	t.Parallel()
	op := mustOp(t, "add/32/exact")
	m, err := calibration.Measure(context.Background(), op, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	results := []orchestration.JobResult{
		{Op: op, Bench: m},
		{Op: mustOp(t, "mul/32/exact"), Err: errors.New("interrupted")},
	}
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentBenchmarkTable(results, &buf)
	out := buf.String()
	for _, w := range []string{"Benchmark Summary", "Throughput", "add/32/exact", "mul/32/exact failed: interrupted"} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestHandleError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, apperrors.ExitSuccess},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled},
		{"timeout", context.DeadlineExceeded, apperrors.ExitErrorTimeout},
		{"generic", errors.New("boom"), apperrors.ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if got := (CLIResultPresenter{}).HandleError(tt.err, time.Second, &buf); got != tt.want {
				t.Errorf("HandleError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestDisplayMemoryStats(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayMemoryStats(metrics.MemorySnapshot{HeapAlloc: 2048, TotalAlloc: 1 << 20, Mallocs: 12345, NumGC: 2}, &buf)
	out := buf.String()
	for _, w := range []string{"Memory Stats", "2.0 KiB", "1.0 MiB", "12,345", "GC cycles:       2"} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}
