// Package style holds the lipgloss helpers shared by the CLI and the TUI.
package style

import (
	"github.com/aizenverse/aizen/color"
	"github.com/charmbracelet/lipgloss"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

func banner(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string {
		return New().Foreground(fg).Background(bg).Padding(0, 1).Render(s)
	}
}

// Fg colors text.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

// Truncate pads or wraps text to a fixed width, used to keep TUI lines inside the window.
func Truncate(width int) func(string) string {
	return func(s string) string { return New().Width(width).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }

	// Title is the heading of a TUI view.
	Title = banner(color.New("230"), color.New("62"))
	// ErrorTitle is the heading of the error view.
	ErrorTitle = banner(color.New("230"), color.Red)
)
