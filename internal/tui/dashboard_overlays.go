package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelpOverlay renders the key bindings centered over the dashboard.
func renderHelpOverlay(keymap KeyMap, width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("fixbench monitor - keys"))
	b.WriteString("\n\n")
	for _, k := range []struct{ keys, desc string }{
		{"q / Ctrl+C", "Quit and cancel the run"},
		{"Space / p", "Pause or resume the display"},
		{"r", "Cancel and rerun every job"},
		{"Up/Down / k/j", "Scroll the operation table"},
		{"PgUp / PgDn", "Scroll by one page"},
		{"?", "Toggle this help"},
	} {
		b.WriteString(formatHelpLine(k.keys, k.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Press %s to close", keymap.Help.Help().Key)))

	box := overlayStyle.Width(min(60, max(20, width-4))).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func formatHelpLine(keys, desc string) string {
	return fmt.Sprintf("  %s  %s\n",
		footerKeyStyle.Width(15).Render(keys),
		footerDescStyle.Render(desc),
	)
}
