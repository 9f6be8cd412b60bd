package orchestration

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/agbru/fixpoint/internal/catalog"
)

// scriptedEvaluator simulates job behaviors for deadlock testing. Ops are
// assigned behaviors round-robin by tier.
type scriptedEvaluator struct {
	behaviors []string // "instant", "slow", "error", "progress_flood"
	delay     time.Duration
}

func (s *scriptedEvaluator) Name() string { return "scripted" }

func (s *scriptedEvaluator) Evaluate(ctx context.Context, op catalog.Op, report func(float64)) (JobResult, error) {
	switch s.behaviors[int(op.Tier)%len(s.behaviors)] {
	case "slow":
		for i := 0; i < 100; i++ {
			if err := ctx.Err(); err != nil {
				return JobResult{}, err
			}
			report(float64(i) / 100)
			time.Sleep(s.delay)
		}
	case "error":
		return JobResult{}, fmt.Errorf("simulated error")
	case "progress_flood":
		for i := 0; i < 10000; i++ {
			report(float64(i) / 10000)
		}
	}
	return JobResult{}, nil
}

// blockingReporter drains slowly so a flood fills the channel buffer.
type blockingReporter struct{ pause time.Duration }

func (b blockingReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		time.Sleep(b.pause)
	}
}

func sqrtOps(t *testing.T) []catalog.Op {
	t.Helper()
	ops, err := catalog.Default().Filter("sqrt", catalog.AnyWidth, catalog.AnyTier)
	if err != nil {
		t.Fatal(err)
	}
	return ops
}

// TestOrchestrationNoDeadlock_MixedBehaviors verifies that ExecuteJobs
// completes under various job behavior combinations.
func TestOrchestrationNoDeadlock_MixedBehaviors(t *testing.T) {
	testCases := []struct {
		name      string
		behaviors []string
		reporter  ProgressReporter
	}{
		{"all_instant", []string{"instant"}, NullProgressReporter{}},
		{"mixed_instant_and_slow", []string{"instant", "slow"}, NullProgressReporter{}},
		{"mixed_with_errors", []string{"instant", "error"}, NullProgressReporter{}},
		{"progress_flood", []string{"progress_flood"}, NullProgressReporter{}},
		{"flood_with_slow_reader", []string{"progress_flood"}, blockingReporter{pause: time.Millisecond}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ev := &scriptedEvaluator{behaviors: tc.behaviors, delay: time.Millisecond}
			done := make(chan struct{})
			go func() {
				defer close(done)
				ExecuteJobs(context.Background(), sqrtOps(t), ev, 2, tc.reporter, io.Discard)
			}()

			select {
			case <-done:
			case <-time.After(10 * time.Second):
				t.Fatal("DEADLOCK: ExecuteJobs did not complete within timeout")
			}
		})
	}
}

// TestOrchestrationNoDeadlock_ContextCancellation verifies that cancelling
// the context mid-run does not cause a deadlock.
func TestOrchestrationNoDeadlock_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ev := &scriptedEvaluator{behaviors: []string{"slow"}, delay: 100 * time.Millisecond}

	done := make(chan []JobResult)
	go func() {
		done <- ExecuteJobs(ctx, sqrtOps(t), ev, 2, NullProgressReporter{}, io.Discard)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case results := <-done:
		for _, r := range results {
			if r.Err == nil {
				t.Errorf("%s finished despite cancellation", r.Op.Key())
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("DEADLOCK after context cancellation")
	}
}
