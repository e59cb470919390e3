package style

import "github.com/charmbracelet/lipgloss"

// Dark palette, used unless the light theme is preferred.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Text     = lipgloss.Color("#cdd6f4")
	Mauve    = lipgloss.Color("#cba6f7")
	Red      = lipgloss.Color("#f38ba8")
	Peach    = lipgloss.Color("#fab387")
	Yellow   = lipgloss.Color("#f9e2af")
	Lavender = lipgloss.Color("#b4befe")

	AccentColor    = Mauve
	SecondaryColor = Lavender
	WarningColor   = Yellow
	ErrorColor     = Red
	// HiRed frames the missing dependency notice.
	HiRed = Red
)

// Light theme counterparts.
var (
	LightText   = lipgloss.Color("#4c4f69")
	LightAccent = lipgloss.Color("#8839ef")
)
