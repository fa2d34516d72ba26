package cardform

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha subset, shared with the host app.
const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorLavender lipgloss.Color = "#b4befe"
	colorPeach    lipgloss.Color = "#fab387"
)

var (
	iconStyle  = lipgloss.NewStyle().Foreground(colorPeach)
	labelStyle = lipgloss.NewStyle().Foreground(colorOverlay1).Bold(true)
	inputStyle = lipgloss.NewStyle().Foreground(colorText)
	cursorTint = lipgloss.NewStyle().Foreground(colorLavender)
)

var namedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
	"gray":    "8",
	"grey":    "8",
}

// ResolveColor turns a color prop into a lipgloss color. "" means no color;
// basic names map to ANSI indexes; anything else ("#rrggbb", "241") passes
// through.
func ResolveColor(name string) lipgloss.TerminalColor {
	name = strings.TrimSpace(name)
	if name == "" {
		return lipgloss.NoColor{}
	}
	if idx, ok := namedColors[strings.ToLower(name)]; ok {
		return lipgloss.Color(idx)
	}
	return lipgloss.Color(name)
}

func hasColor(name string) bool {
	return strings.TrimSpace(name) != ""
}
