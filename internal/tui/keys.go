package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jask/cardinput/internal/cardform"
)

type keyMap struct {
	Submit key.Binding
	Layout key.Binding
	Reset  key.Binding
	Quit   key.Binding

	form cardform.KeyMap
}

func newKeyMap(form cardform.KeyMap) keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save card")),
		Layout: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "switch layout")),
		Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "clear")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
		form:   form,
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return append(k.form.ShortHelp(), k.Submit, k.Layout, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.form.FullHelp(), []key.Binding{k.Submit, k.Layout, k.Reset, k.Quit})
}
