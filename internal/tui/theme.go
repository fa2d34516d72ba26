package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the host app uses.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
)

const (
	colorAccent  = colorPink
	colorSuccess = colorGreen
	colorError   = colorRed
	colorMuted   = colorOverlay1
	colorBorder  = colorSurface1
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	formBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)

	sectionStyle = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
	brandStyle   = lipgloss.NewStyle().Foreground(colorPeach)
	cardStyle    = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)
