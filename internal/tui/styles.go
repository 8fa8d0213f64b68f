package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset used by the watch view
var (
	colorSurface0 = lipgloss.Color("#313244")
	colorSurface1 = lipgloss.Color("#45475a")
	colorText     = lipgloss.Color("#cdd6f4")
	colorGreen    = lipgloss.Color("#a6e3a1")
	colorRed      = lipgloss.Color("#f38ba8")
	colorMauve    = lipgloss.Color("#cba6f7")
	colorOverlay  = lipgloss.Color("#6c7086")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorMauve).
			Background(colorSurface0).
			Padding(0, 1)

	tableStyle = lipgloss.NewStyle().
			BorderForeground(colorSurface1).
			Foreground(colorText).
			Align(lipgloss.Left)

	stateOnStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	stateOffStyle = lipgloss.NewStyle().
			Foreground(colorOverlay)

	errStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorRed)

	statusLineStyle = lipgloss.NewStyle().
			Foreground(colorOverlay)
)
