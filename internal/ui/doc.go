// Package ui holds the color themes shared by the CLI and the TUI. It honors
// NO_COLOR and the --no-color flag.
package ui
