package tui

import (
	"time"

	apperrors "github.com/agbru/fixpoint/internal/errors"
	"github.com/agbru/fixpoint/internal/orchestration"
)

// ProgressMsg carries one job's progress together with the run average.
type ProgressMsg struct {
	JobIndex        int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// ProgressDoneMsg is sent once the progress channel is closed.
type ProgressDoneMsg struct{}

// ResultsMsg carries the sorted results of a finished run.
type ResultsMsg struct {
	Results []orchestration.JobResult
	Bench   bool
}

// ViolationsMsg carries the tier ordering violations of an accuracy run.
type ViolationsMsg struct {
	Violations []apperrors.AccuracyError
}

// ErrorMsg reports the error that decided the run's exit code.
type ErrorMsg struct {
	Err      error
	Duration time.Duration
}

// TickMsg drives periodic sampling.
type TickMsg time.Time

// MemStatsMsg is a runtime memory sample.
type MemStatsMsg struct {
	Alloc        uint64
	HeapInuse    uint64
	NumGC        uint32
	PauseTotalNs uint64
	NumGoroutine int
}

// SysStatsMsg is a system-wide CPU and memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// RunCompleteMsg is sent when the orchestration returns.
type RunCompleteMsg struct {
	ExitCode   int
	Results    []orchestration.JobResult
	Generation uint64
}

// ContextCancelledMsg is sent when the run context ends before completion.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
