package tui

import (
	"fmt"
	"strings"

	apperrors "github.com/agbru/fixpoint/internal/errors"
	"github.com/agbru/fixpoint/internal/format"
	"github.com/agbru/fixpoint/internal/orchestration"
)

// SummaryModel shows the global status once a run has finished.
type SummaryModel struct {
	results    []orchestration.JobResult
	violations []apperrors.AccuracyError
	err        error
	bench      bool
	finished   bool
	width      int
}

// SetWidth updates the available width.
func (s *SummaryModel) SetWidth(w int) {
	s.width = w
}

// SetResults stores the run's results.
func (s *SummaryModel) SetResults(msg ResultsMsg) {
	s.results = msg.Results
	s.bench = msg.Bench
	s.finished = true
}

// SetViolations stores the tier ordering violations.
func (s *SummaryModel) SetViolations(v []apperrors.AccuracyError) {
	s.violations = v
}

// SetError stores the error that decided the exit code.
func (s *SummaryModel) SetError(err error) {
	s.err = err
}

// Reset clears the summary for a rerun.
func (s *SummaryModel) Reset() {
	*s = SummaryModel{width: s.width}
}

// View renders the summary, or nothing while the run is still going.
func (s SummaryModel) View() string {
	if !s.finished && s.err == nil {
		return ""
	}
	var b strings.Builder
	switch {
	case s.err != nil:
		b.WriteString(statusErrorStyle.Render("Global Status: Failure. "))
		b.WriteString(errorStyle.Render(s.err.Error()))
	case len(s.violations) > 0:
		b.WriteString(statusErrorStyle.Render(fmt.Sprintf("Global Status: Failure. %d tier ordering violation(s).", len(s.violations))))
		for _, v := range s.violations {
			b.WriteString("\n  ")
			b.WriteString(warningStyle.Render(fmt.Sprintf("%s max error %s exceeds %s",
				v.Op, format.FormatError(v.MaxErr), format.FormatError(v.Bound))))
		}
	default:
		b.WriteString(statusRunningStyle.Render(fmt.Sprintf("Global Status: Success. %d operations evaluated.", len(s.results))))
	}
	if line := s.highlight(); line != "" {
		b.WriteString("\n  ")
		b.WriteString(line)
	}
	return panelStyle.Width(max(0, s.width-2)).Render(b.String())
}

// highlight names the least accurate op of a sweep, or the fastest op of a
// benchmark.
func (s SummaryModel) highlight() string {
	var best *orchestration.JobResult
	for i := range s.results {
		r := &s.results[i]
		if r.Err != nil {
			continue
		}
		if best == nil ||
			(s.bench && r.Bench.Mops > best.Bench.Mops) ||
			(!s.bench && r.Accuracy.MaxErr > best.Accuracy.MaxErr) {
			best = r
		}
	}
	switch {
	case best == nil:
		return ""
	case s.bench:
		return fmt.Sprintf("Fastest: %s (%s)", successStyle.Render(best.Op.Key()), format.FormatMops(best.Bench.Mops))
	default:
		return fmt.Sprintf("Largest error: %s (%s)", warningStyle.Render(best.Op.Key()), format.FormatError(best.Accuracy.MaxErr))
	}
}
