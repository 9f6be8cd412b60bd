package orchestration

import (
	"time"

	"github.com/agbru/fixpoint/internal/format"
)

// ProgressAggregator folds per-job updates into one overall fraction and an
// ETA. The CLI and the TUI both consume progress through it.
type ProgressAggregator struct {
	state   *format.ProgressWithETA
	numJobs int
}

// NewProgressAggregator returns nil if numJobs <= 0.
func NewProgressAggregator(numJobs int) *ProgressAggregator {
	if numJobs <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:   format.NewProgressWithETA(numJobs),
		numJobs: numJobs,
	}
}

// AggregatedProgress is the result of folding in one update.
type AggregatedProgress struct {
	JobIndex        int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// Update folds in one update.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	avg, eta := a.state.UpdateWithETA(update.JobIndex, update.Value)
	return AggregatedProgress{
		JobIndex:        update.JobIndex,
		Value:           update.Value,
		AverageProgress: avg,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average without updating, for
// periodic refreshes between updates.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current ETA without updating.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

func (a *ProgressAggregator) NumJobs() int {
	return a.numJobs
}

// IsMultiJob reports whether more than one job is tracked.
func (a *ProgressAggregator) IsMultiJob() bool {
	return a.numJobs > 1
}

// DrainChannel discards updates until the channel is closed.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
