// Package color names the terminal colors used for CLI output.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps an ANSI index or a hex value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	// Red marks failures and unset values.
	Red = New("1")
	// Green marks success and set values.
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	// Purple highlights titles and keys.
	Purple   = New("5")
	Cyan     = New("6")
	HiPurple = New("13")

	// Orange highlights the primary key binding.
	Orange = New("#ffb703")
)
