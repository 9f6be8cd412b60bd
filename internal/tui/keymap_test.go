package tui

import (
	"slices"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultKeyMap(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()
	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"Quit", km.Quit, []string{"q", "ctrl+c"}},
		{"Pause", km.Pause, []string{" ", "p"}},
		{"Reset", km.Reset, []string{"r"}},
		{"Help", km.Help, []string{"?"}},
		{"Up", km.Up, []string{"up", "k"}},
		{"Down", km.Down, []string{"down", "j"}},
		{"PageUp", km.PageUp, []string{"pgup"}},
		{"PageDown", km.PageDown, []string{"pgdown"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if !tt.binding.Enabled() {
				t.Fatal("binding disabled")
			}
			if !slices.Equal(tt.binding.Keys(), tt.keys) {
				t.Errorf("keys = %q, want %q", tt.binding.Keys(), tt.keys)
			}
			if tt.binding.Help().Desc == "" {
				t.Error("binding has no help text")
			}
		})
	}
}

func TestKeyMap_Matches(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()
	if !key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit) {
		t.Error("ctrl+c should quit")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, km.Down) {
		t.Error("j should scroll down")
	}
	if key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, km.Reset) {
		t.Error("x should not rerun")
	}
}
