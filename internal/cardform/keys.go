package cardform

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the keys the widget handles itself. Everything else is typed
// into the focused input.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	TapIcon  key.Binding
	TapLast4 key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		TapIcon:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle number/expiry")),
		TapLast4: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "edit number")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.TapIcon}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.TapIcon, k.TapLast4}}
}
