package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (a *App) View() string {
	sections := []string{
		titleStyle.Render("Add a card"),
		formBoxStyle.Render(a.form.View()),
		a.renderStatus(),
		"",
		a.renderCards(),
		"",
		a.help.View(a.keys),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) barWidth() int {
	if a.width > 0 {
		return a.width
	}
	return a.form.Width() + formBoxStyle.GetHorizontalFrameSize()
}

func (a *App) renderStatus() string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		if a.state.Valid() {
			msg = "Ready to save"
		} else {
			msg = "Enter card details"
		}
	}
	if a.statusErr {
		return renderBar(statusErrBarStyle, a.barWidth(), msg)
	}
	return renderBar(statusBarStyle, a.barWidth(), msg)
}

func (a *App) renderCards() string {
	lines := []string{sectionStyle.Render("SAVED CARDS")}
	if len(a.cards) == 0 {
		lines = append(lines, mutedStyle.Render("none yet"))
	}
	for _, c := range a.cards {
		brand := c.Brand
		if brand == "" {
			brand = "card"
		}
		line := brandStyle.Render(padTo(brand, 18)) +
			cardStyle.Render("•••• "+c.Last4) + "  " +
			mutedStyle.Render("exp "+c.Expiry+"  "+shortID(c.ID))
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

func padTo(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
