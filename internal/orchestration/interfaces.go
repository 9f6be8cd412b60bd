//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/agbru/fixpoint/internal/accuracy"
	"github.com/agbru/fixpoint/internal/calibration"
	"github.com/agbru/fixpoint/internal/catalog"
	apperrors "github.com/agbru/fixpoint/internal/errors"
)

// ProgressUpdate reports the completion fraction of one job.
type ProgressUpdate struct {
	// JobIndex is the position of the job in the submitted op list.
	JobIndex int
	// Value is the completed fraction, from 0.0 to 1.0.
	Value float64
}

// JobResult is the outcome of one job. Exactly one of Accuracy and Bench is
// meaningful, depending on the Evaluator that produced it.
type JobResult struct {
	Op       catalog.Op
	Accuracy accuracy.Result
	Bench    calibration.Measurement
	Duration time.Duration
	Err      error
}

// Evaluator runs one job. report may be called with the completed fraction
// and never blocks.
type Evaluator interface {
	Name() string
	Evaluate(ctx context.Context, op catalog.Op, report func(float64)) (JobResult, error)
}

// ProgressReporter displays job progress.
//
// Implementations handle the visual representation (spinners, progress bars,
// dashboards) while the orchestration layer coordinates the jobs.
type ProgressReporter interface {
	// DisplayProgress consumes updates until progressChan is closed, then
	// calls wg.Done.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numJobs int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numJobs int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numJobs int, out io.Writer) {
	f(wg, progressChan, numJobs, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Used in quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter renders job results.
type ResultPresenter interface {
	// PresentAccuracyTable displays one row per op with its error figures.
	PresentAccuracyTable(results []JobResult, details bool, out io.Writer)
	// PresentTierViolations lists families whose tiers are out of order.
	PresentTierViolations(violations []apperrors.AccuracyError, out io.Writer)
	// PresentBenchmarkTable displays one row per op with its throughput.
	PresentBenchmarkTable(results []JobResult, out io.Writer)
	// HandleError reports err and returns the exit code.
	HandleError(err error, duration time.Duration, out io.Writer) int
}
