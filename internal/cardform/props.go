package cardform

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// DefaultPlaceholders are shown for any field without an override.
var DefaultPlaceholders = map[FieldName]string{
	FieldNumber: "1234 5678 1234 5678",
	FieldExpiry: "MM/YY",
	FieldCVC:    "CVC",
}

const (
	DefaultValidColor       = ""
	DefaultInvalidColor     = "red"
	DefaultPlaceholderColor = "gray"
)

// InputOverrides tweaks a single input. Zero fields leave the default alone.
type InputOverrides struct {
	CharLimit int
	Width     int
	Prompt    string
	EchoMode  textinput.EchoMode
	Style     *lipgloss.Style
}

// Props is the static configuration of the widget.
type Props struct {
	Placeholders         map[FieldName]string
	ValidColor           string
	InvalidColor         string
	PlaceholderColor     string
	AdditionalInputProps map[FieldName]InputOverrides

	Layout LayoutMode

	InputStyle     lipgloss.Style
	ContainerStyle lipgloss.Style
	LabelStyle     lipgloss.Style

	Icons IconSet
}

// DefaultProps returns props with every documented default filled in.
func DefaultProps() Props {
	return Props{
		ValidColor:           DefaultValidColor,
		InvalidColor:         DefaultInvalidColor,
		PlaceholderColor:     DefaultPlaceholderColor,
		AdditionalInputProps: map[FieldName]InputOverrides{},
		Layout:               Compact{},
		Icons:                DefaultIcons,
	}
}

// Placeholder returns the override for field or the default one.
func (p Props) Placeholder(field FieldName) string {
	if s, ok := p.Placeholders[field]; ok {
		return s
	}
	return DefaultPlaceholders[field]
}

func (p Props) layout() LayoutMode {
	if p.Layout == nil {
		return Compact{}
	}
	return p.Layout
}

func (p Props) icons() IconSet {
	if p.Icons == nil {
		return DefaultIcons
	}
	return p.Icons
}
