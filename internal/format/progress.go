package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const maxETA = 24 * time.Hour

// ProgressState tracks the completion fraction of a fixed number of jobs.
type ProgressState struct {
	mu         sync.Mutex
	numJobs    int
	progresses []float64
}

// NewProgressState returns a tracker for numJobs jobs, all at zero.
func NewProgressState(numJobs int) *ProgressState {
	if numJobs < 0 {
		numJobs = 0
	}
	return &ProgressState{numJobs: numJobs, progresses: make([]float64, numJobs)}
}

// Update records the progress of job i, clamped to [0, 1]. Out of range
// indices are ignored.
func (p *ProgressState) Update(i int, v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= p.numJobs {
		return
	}
	p.progresses[i] = min(max(v, 0), 1)
}

// CalculateAverage returns the mean progress over all jobs.
func (p *ProgressState) CalculateAverage() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.numJobs == 0 {
		return 0
	}
	var sum float64
	for _, v := range p.progresses {
		sum += v
	}
	return sum / float64(p.numJobs)
}

// ProgressWithETA extends ProgressState with a throughput estimate.
type ProgressWithETA struct {
	*ProgressState
	startTime    time.Time
	progressRate float64 // fraction per second
}

// NewProgressWithETA starts the clock for numJobs jobs.
func NewProgressWithETA(numJobs int) *ProgressWithETA {
	return &ProgressWithETA{
		ProgressState: NewProgressState(numJobs),
		startTime:     time.Now(),
	}
}

// UpdateWithETA records job i and returns the new average and the estimated
// time remaining.
func (p *ProgressWithETA) UpdateWithETA(i int, v float64) (float64, time.Duration) {
	p.Update(i, v)
	avg := p.CalculateAverage()
	if elapsed := time.Since(p.startTime).Seconds(); elapsed > 0 && avg > 0 {
		p.progressRate = avg / elapsed
	}
	return avg, p.GetETA()
}

// GetETA returns the estimated time remaining, or 0 before any rate is known.
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1 - p.CalculateAverage()
	eta := time.Duration(remaining / p.progressRate * float64(time.Second))
	if eta > maxETA || eta < 0 {
		return maxETA
	}
	return eta
}

// FormatETA renders an ETA compactly, e.g. "2m30s" or "1h15m".
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m := int(eta.Minutes())
		s := int(eta.Seconds()) % 60
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		h := int(eta.Hours())
		m := int(eta.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// ProgressBar renders a bar of the given length using block characters.
func ProgressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders "[bar] pct% ETA: eta".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(progress, width), progress*100, FormatETA(eta))
}
