package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FooterModel shows key hints and the run state.
type FooterModel struct {
	keymap KeyMap
	paused bool
	done   bool
	failed bool
	width  int
}

// NewFooterModel creates a footer for keymap.
func NewFooterModel(keymap KeyMap) FooterModel {
	return FooterModel{keymap: keymap}
}

func (f *FooterModel) SetWidth(w int)       { f.width = w }
func (f *FooterModel) SetPaused(p bool)     { f.paused = p }
func (f *FooterModel) SetDone(d bool)       { f.done = d }
func (f *FooterModel) SetError(failed bool) { f.failed = failed }

// View renders the footer.
func (f FooterModel) View() string {
	var hints []string
	for _, b := range f.keymap.ShortHelp() {
		h := b.Help()
		hints = append(hints, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	left := " " + strings.Join(hints, "  ")

	var state string
	switch {
	case f.failed:
		state = statusErrorStyle.Render("FAILED")
	case f.done:
		state = statusDoneStyle.Render("DONE")
	case f.paused:
		state = statusPausedStyle.Render("PAUSED")
	default:
		state = statusRunningStyle.Render("RUNNING")
	}

	gap := f.width - lipgloss.Width(left) - lipgloss.Width(state) - 1
	if gap < 1 {
		return state
	}
	return left + strings.Repeat(" ", gap) + state
}
