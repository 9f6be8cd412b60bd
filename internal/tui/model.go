// Package tui implements the live dashboard of fixbench: a scrollable table
// of operations under evaluation, the run's progress and system load.
package tui

import (
	"context"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fixpoint/internal/catalog"
	apperrors "github.com/agbru/fixpoint/internal/errors"
	"github.com/agbru/fixpoint/internal/orchestration"
	"github.com/agbru/fixpoint/internal/sysmon"
)

// Session describes the run a dashboard drives.
type Session struct {
	Ops       []catalog.Op
	Evaluator orchestration.Evaluator
	Workers   int
	// Slack is the tier ordering tolerance of accuracy runs.
	Slack   float64
	Bench   bool
	Version string
	Host    string
}

// ExecutionState holds the execution-related fields of a TUI session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	generation uint64
	done       bool
	exitCode   int
	results    []orchestration.JobResult
}

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

// Layout constants for the TUI dashboard.
const (
	headerHeight          = 1
	footerHeight          = 1
	minBodyHeight         = 6
	JobsPanelWidthPercent = 60
	MetricsPanelHeight    = 5
	tickInterval          = 500 * time.Millisecond
)

func (l LayoutManager) bodyHeight(summary int) int {
	return max(minBodyHeight, l.height-headerHeight-footerHeight-summary)
}

func (l LayoutManager) jobsWidth() int {
	return l.width * JobsPanelWidthPercent / 100
}

func (l LayoutManager) rightWidth() int {
	return l.width - l.jobsWidth()
}

// Model is the root bubbletea model for the TUI dashboard.
type Model struct {
	header  HeaderModel
	jobs    JobsModel
	metrics MetricsModel
	chart   ChartModel
	summary SummaryModel
	footer  FooterModel

	keymap KeyMap

	ExecutionState
	LayoutManager

	parentCtx context.Context
	session   Session
	ref       *programRef
	paused    bool
	showHelp  bool
}

// NewModel creates a new TUI model.
func NewModel(parentCtx context.Context, s Session) Model {
	ctx, cancel := context.WithCancel(parentCtx)
	keymap := DefaultKeyMap()
	mode := "accuracy"
	if s.Bench {
		mode = "benchmark"
	}
	return Model{
		header:  NewHeaderModel(s.Version, mode, s.Host),
		jobs:    NewJobsModel(s.Ops, s.Bench),
		metrics: NewMetricsModel(),
		chart:   NewChartModel(),
		footer:  NewFooterModel(keymap),
		keymap:  keymap,
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			exitCode: apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		session:   s,
		ref:       &programRef{},
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return m.startCmds()
}

func (m Model) startCmds() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startRunCmd(m.ref, m.ctx, m.session, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case ProgressMsg:
		m.jobs.SetProgress(msg.JobIndex, msg.Value)
		if !m.paused {
			m.chart.AddDataPoint(msg.AverageProgress, msg.ETA)
			m.metrics.UpdateProgress(msg.AverageProgress)
		}
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case ResultsMsg:
		m.jobs.SetResults(msg.Results)
		m.summary.SetResults(msg)
		m.metrics.UpdateJobs(m.jobs.Done(), len(m.session.Ops))
		m.layoutPanels()
		return m, nil

	case ViolationsMsg:
		m.summary.SetViolations(msg.Violations)
		m.layoutPanels()
		return m, nil

	case ErrorMsg:
		m.summary.SetError(msg.Err)
		m.footer.SetError(true)
		m.layoutPanels()
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		m.metrics.UpdateJobs(m.jobs.Done(), len(m.session.Ops))
		if !m.paused {
			return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd())
		}
		return m, tickCmd()

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.chart.UpdateSysStats(msg.CPUPercent, msg.MemPercent)
		return m, nil

	case RunCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a canceled run
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.results = msg.Results
		m.header.SetDone()
		m.chart.SetDone(m.header.Elapsed())
		m.footer.SetDone(true)
		m.footer.SetError(msg.ExitCode != apperrors.ExitSuccess)
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		if m.done {
			return m, tea.Quit
		}
		m.done = true
		m.exitCode = apperrors.ExitCode(msg.Err)
		m.header.SetDone()
		m.footer.SetDone(true)
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if !m.done {
			m.exitCode = apperrors.ExitErrorCanceled
		}
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		m.footer.SetPaused(m.paused)
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		m.cancel()
		m.generation++
		m.ctx, m.cancel = context.WithCancel(m.parentCtx)

		m.header.Reset()
		m.jobs.Reset()
		m.chart.Reset()
		m.summary.Reset()
		m.metrics = NewMetricsModel()
		m.footer.SetDone(false)
		m.footer.SetError(false)
		m.footer.SetPaused(false)
		m.done = false
		m.paused = false
		m.exitCode = apperrors.ExitSuccess
		m.results = nil
		m.layoutPanels()
		return m, m.startCmds()

	case key.Matches(msg, m.keymap.Up):
		m.jobs.Scroll(-1)
	case key.Matches(msg, m.keymap.Down):
		m.jobs.Scroll(1)
	case key.Matches(msg, m.keymap.PageUp):
		m.jobs.Page(-1)
	case key.Matches(msg, m.keymap.PageDown):
		m.jobs.Page(1)
	}
	return m, nil
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.showHelp {
		return renderHelpOverlay(m.keymap, m.width, m.height)
	}

	right := lipgloss.JoinVertical(lipgloss.Left, m.metrics.View(), m.chart.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.jobs.View(), right)

	sections := []string{m.header.View(), body}
	if s := m.summary.View(); s != "" {
		sections = append(sections, s)
	}
	sections = append(sections, m.footer.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) layoutPanels() {
	m.summary.SetWidth(m.width)
	body := m.bodyHeight(lipgloss.Height(m.summary.View()))
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.jobs.SetSize(m.jobsWidth(), body)
	metricsHeight := min(MetricsPanelHeight, body/2)
	m.metrics.SetSize(m.rightWidth(), metricsHeight)
	m.chart.SetSize(m.rightWidth(), body-metricsHeight)
}

// Run starts the dashboard and blocks until the user quits or ctx ends. It
// returns the exit code and the results of the last completed run.
func Run(ctx context.Context, s Session) (int, []orchestration.JobResult) {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, s)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if m, ok := finalModel.(Model); ok {
		m.cancel()
		if err != nil && m.exitCode == apperrors.ExitSuccess {
			return apperrors.ExitCode(err), m.results
		}
		return m.exitCode, m.results
	}
	if err != nil {
		return apperrors.ExitErrorGeneric, nil
	}
	return apperrors.ExitSuccess, nil
}

// startRunCmd returns a tea.Cmd that runs the jobs and analyzes the results.
func startRunCmd(ref *programRef, ctx context.Context, s Session, gen uint64) tea.Cmd {
	return func() tea.Msg {
		reporter := &TUIProgressReporter{ref: ref}
		presenter := &TUIResultPresenter{ref: ref}

		results := orchestration.ExecuteJobs(ctx, s.Ops, s.Evaluator, s.Workers, reporter, io.Discard)
		var code int
		if s.Bench {
			code = orchestration.AnalyzeBenchmarkResults(results, presenter, io.Discard)
		} else {
			code = orchestration.AnalyzeAccuracyResults(results, s.Slack, false, presenter, io.Discard)
		}
		return RunCompleteMsg{ExitCode: code, Results: results, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after tickInterval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads runtime memory stats and returns a MemStatsMsg.
func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return MemStatsMsg{
			Alloc:        ms.Alloc,
			HeapInuse:    ms.HeapInuse,
			NumGC:        ms.NumGC,
			PauseTotalNs: ms.PauseTotalNs,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

// sampleSysStatsCmd reads system-wide CPU and memory stats and returns a SysStatsMsg.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{
			CPUPercent: s.CPUPercent,
			MemPercent: s.MemPercent,
		}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
