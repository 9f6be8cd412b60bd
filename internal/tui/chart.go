package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/agbru/fixpoint/internal/format"
)

const (
	// sparklineLabelWidth is the width of a "CPU  42.0% " prefix.
	sparklineLabelWidth = 17
	// sparklineMinHeight is the panel height below which the system
	// sparklines are hidden.
	sparklineMinHeight = 10
)

// ChartModel draws overall progress, its history and system load.
type ChartModel struct {
	averageProgress float64
	eta             time.Duration
	history         *RingBuffer
	cpuHistory      *RingBuffer
	memHistory      *RingBuffer
	done            bool
	elapsed         time.Duration
	width           int
	height          int
}

// NewChartModel creates an empty chart.
func NewChartModel() ChartModel {
	return ChartModel{
		history:    NewRingBuffer(64),
		cpuHistory: NewRingBuffer(32),
		memHistory: NewRingBuffer(32),
	}
}

// SetSize updates dimensions and resizes the histories to the drawable width.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
	c.cpuHistory.Resize(max(1, w-sparklineLabelWidth))
	c.memHistory.Resize(max(1, w-sparklineLabelWidth))
	c.history.Resize(max(1, (w-4)*2))
}

// AddDataPoint records the run's average progress.
func (c *ChartModel) AddDataPoint(average float64, eta time.Duration) {
	c.averageProgress = average
	c.eta = eta
	c.history.Push(average * 100)
}

// UpdateSysStats records a system load sample.
func (c *ChartModel) UpdateSysStats(cpu, mem float64) {
	c.cpuHistory.Push(cpu)
	c.memHistory.Push(mem)
}

// SetDone marks the run finished after elapsed.
func (c *ChartModel) SetDone(elapsed time.Duration) {
	c.done = true
	c.elapsed = elapsed
	c.averageProgress = 1
}

// Reset clears every series.
func (c *ChartModel) Reset() {
	c.averageProgress = 0
	c.eta = 0
	c.done = false
	c.elapsed = 0
	c.history.Reset()
	c.cpuHistory.Reset()
	c.memHistory.Reset()
}

// View renders the chart panel.
func (c ChartModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Progress"))
	b.WriteString("\n")

	barWidth := max(10, c.width-16)
	status := fmt.Sprintf("ETA: %s", format.FormatETA(c.eta))
	if c.done {
		status = fmt.Sprintf("Done in %s", format.FormatExecutionDuration(c.elapsed))
	}
	b.WriteString(fmt.Sprintf(" %s %s\n %s\n",
		renderProgressBar(c.averageProgress, barWidth),
		metricValueStyle.Render(fmt.Sprintf("%5.1f%%", c.averageProgress*100)),
		dimStyle.Render(status)))

	showSys := c.height >= sparklineMinHeight
	chartRows := c.height - 6
	if showSys {
		chartRows -= 2
	}
	if chartRows > 0 {
		for _, line := range RenderBrailleChart(c.history.Slice(), max(1, c.width-4), chartRows) {
			b.WriteString(" ")
			b.WriteString(chartBarStyle.Render(line))
			b.WriteString("\n")
		}
	}

	if showSys {
		b.WriteString(fmt.Sprintf(" %s %s\n",
			metricLabelStyle.Render(fmt.Sprintf("CPU %6.1f%%", c.cpuHistory.Last())),
			cpuSparklineStyle.Render(RenderSparkline(c.cpuHistory.Slice()))))
		b.WriteString(fmt.Sprintf(" %s %s",
			metricLabelStyle.Render(fmt.Sprintf("MEM %6.1f%%", c.memHistory.Last())),
			memSparklineStyle.Render(RenderSparkline(c.memHistory.Slice()))))
	}

	return panelStyle.
		Width(max(0, c.width-2)).
		Height(max(0, c.height-2)).
		Render(b.String())
}
