package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fixpoint/internal/catalog"
	"github.com/agbru/fixpoint/internal/format"
	"github.com/agbru/fixpoint/internal/orchestration"
)

// JobStatus is the lifecycle state of one row.
type JobStatus int

const (
	StatusPending JobStatus = iota
	StatusRunning
	StatusComplete
	StatusError
)

// Column widths for the job table (shared between header and rows).
const (
	colWidthRank     = 4
	colWidthName     = 20
	colWidthProgress = 24
	colWidthPct      = 7
	colWidthValue    = 12
	colWidthStatus   = 6
)

// tableWidth returns the total width of a job table row.
func tableWidth() int {
	return 2 + colWidthRank + 1 + colWidthName + 1 + colWidthProgress + 1 + colWidthPct + 1 + colWidthValue + 1 + colWidthStatus
}

// JobsModel is the scrollable table of operations under evaluation.
type JobsModel struct {
	ops      []catalog.Op
	index    map[string]int
	progress []float64
	status   []JobStatus
	results  []orchestration.JobResult
	bench    bool
	offset   int
	width    int
	height   int
}

// NewJobsModel creates a table with one pending row per op.
func NewJobsModel(ops []catalog.Op, bench bool) JobsModel {
	m := JobsModel{
		ops:   ops,
		index: make(map[string]int, len(ops)),
		bench: bench,
	}
	for i, op := range ops {
		m.index[op.Key()] = i
	}
	m.Reset()
	return m
}

// Reset returns every row to pending.
func (m *JobsModel) Reset() {
	m.progress = make([]float64, len(m.ops))
	m.status = make([]JobStatus, len(m.ops))
	m.results = make([]orchestration.JobResult, len(m.ops))
	m.offset = 0
}

// SetSize updates dimensions.
func (m *JobsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.clampOffset()
}

// SetProgress records the progress of job idx.
func (m *JobsModel) SetProgress(idx int, v float64) {
	if idx < 0 || idx >= len(m.ops) || m.status[idx] >= StatusComplete {
		return
	}
	m.progress[idx] = v
	m.status[idx] = StatusRunning
}

// SetResults fills the rows from finished results, matched by key.
func (m *JobsModel) SetResults(results []orchestration.JobResult) {
	for _, r := range results {
		i, ok := m.index[r.Op.Key()]
		if !ok {
			continue
		}
		m.results[i] = r
		m.progress[i] = 1
		m.status[i] = StatusComplete
		if r.Err != nil {
			m.status[i] = StatusError
		}
	}
}

// Done counts finished rows.
func (m JobsModel) Done() int {
	n := 0
	for _, s := range m.status {
		if s >= StatusComplete {
			n++
		}
	}
	return n
}

func (m JobsModel) visibleRows() int {
	// title, blank, header and separator lines plus the panel border
	return max(1, m.height-6)
}

func (m *JobsModel) clampOffset() {
	maxOffset := max(0, len(m.ops)-m.visibleRows())
	m.offset = min(max(0, m.offset), maxOffset)
}

// Scroll moves the visible window by delta rows.
func (m *JobsModel) Scroll(delta int) {
	m.offset += delta
	m.clampOffset()
}

// Page moves the visible window by whole pages.
func (m *JobsModel) Page(pages int) {
	m.Scroll(pages * m.visibleRows())
}

// View renders the job table.
func (m JobsModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("OPERATIONS"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d/%d done", m.Done(), len(m.ops))))
	b.WriteString("\n\n")

	valueHeader := "Max error"
	if m.bench {
		valueHeader = "Mops/s"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		"  ",
		lipgloss.NewStyle().Width(colWidthRank).Render("#"),
		" ",
		lipgloss.NewStyle().Width(colWidthName).Render("Operation"),
		" ",
		lipgloss.NewStyle().Width(colWidthProgress).Render("Progress"),
		" ",
		lipgloss.NewStyle().Width(colWidthPct).Align(lipgloss.Right).Render("%"),
		" ",
		lipgloss.NewStyle().Width(colWidthValue).Align(lipgloss.Right).Render(valueHeader),
		" ",
		lipgloss.NewStyle().Width(colWidthStatus).Align(lipgloss.Center).Render("State"),
	)
	b.WriteString(metricLabelStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(chartEmptyStyle.Render(strings.Repeat("━", min(tableWidth(), max(0, m.width-4)))))

	end := min(len(m.ops), m.offset+m.visibleRows())
	for i := m.offset; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(m.renderRow(i))
	}

	return panelStyle.
		Width(max(0, m.width-2)).
		Height(max(0, m.height-2)).
		Render(b.String())
}

func (m JobsModel) renderRow(idx int) string {
	op := m.ops[idx]
	p := m.progress[idx]

	colName := lipgloss.NewStyle().Width(colWidthName).Foreground(tierColor(op.Tier))
	colPct := lipgloss.NewStyle().Width(colWidthPct).Align(lipgloss.Right)
	colValue := lipgloss.NewStyle().Width(colWidthValue).Align(lipgloss.Right)
	colStatus := lipgloss.NewStyle().Width(colWidthStatus).Align(lipgloss.Center)

	value := "-"
	r := m.results[idx]
	switch m.status[idx] {
	case StatusComplete:
		if m.bench {
			value = fmt.Sprintf("%.1f", r.Bench.Mops)
		} else {
			value = format.FormatError(r.Accuracy.MaxErr)
		}
	case StatusRunning:
		value = "..."
	}

	var statusText string
	var statusStyle lipgloss.Style
	switch m.status[idx] {
	case StatusPending:
		statusText, statusStyle = "WAIT", colStatus.Inherit(dimStyle)
	case StatusRunning:
		statusText, statusStyle = "RUN", colStatus.Inherit(infoStyle)
	case StatusComplete:
		statusText, statusStyle = "OK", colStatus.Inherit(successStyle)
	case StatusError:
		statusText, statusStyle = "ERR", colStatus.Inherit(errorStyle)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		"  ",
		lipgloss.NewStyle().Width(colWidthRank).Render(fmt.Sprintf("%d", idx+1)),
		" ",
		colName.Render(truncateString(op.Key(), colWidthName)),
		" ",
		renderProgressBar(p, colWidthProgress),
		" ",
		colPct.Render(fmt.Sprintf("%.1f%%", p*100)),
		" ",
		colValue.Render(value),
		" ",
		statusStyle.Render(statusText),
	)
}

// truncateString truncates a string to maxLen characters, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// renderProgressBar renders a progress bar with exact width.
func renderProgressBar(progress float64, width int) string {
	filled := min(max(int(progress*float64(width)), 0), width)
	return chartBarStyle.Render(strings.Repeat("█", filled)) +
		chartEmptyStyle.Render(strings.Repeat("░", width-filled))
}
