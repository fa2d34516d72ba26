package cardform

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InputProps is everything one Input needs for a render pass. The form
// assembles it once per field from the shared props and the provider state.
type InputProps struct {
	Field       FieldName
	Label       string
	Placeholder string
	Value       string
	Status      Validity

	InputStyle       lipgloss.Style
	LabelStyle       lipgloss.Style
	ValidColor       string
	InvalidColor     string
	PlaceholderColor string
	Additional       InputOverrides

	OnFocus       func(FieldName)
	OnChange      func(FieldName, string)
	OnBecomeEmpty func(FieldName)
	OnBecomeValid func(FieldName)
}

// Input is a controlled text input for one field. Its text always mirrors the
// Value it was last given; edits are reported through OnChange and only stick
// once the provider hands them back.
type Input struct {
	field   FieldName
	props   InputProps
	ti      textinput.Model
	width   int
	applied bool
}

func NewInput(field FieldName) *Input {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = ""
	ti.Cursor.Style = cursorTint
	return &Input{field: field, ti: ti}
}

func (in *Input) Field() FieldName  { return in.field }
func (in *Input) Props() InputProps { return in.props }
func (in *Input) Focused() bool     { return in.ti.Focused() }
func (in *Input) Value() string     { return in.ti.Value() }

// SetProps applies p. After the first call it reports a value going from
// non-empty to empty through OnBecomeEmpty and a status turning valid through
// OnBecomeValid.
func (in *Input) SetProps(p InputProps) {
	prev, had := in.props, in.applied
	in.props = p
	in.applied = true

	in.ti.Prompt = p.Additional.Prompt
	in.ti.CharLimit = p.Additional.CharLimit
	in.ti.EchoMode = p.Additional.EchoMode
	in.ti.TextStyle = in.textStyle()
	in.ti.PromptStyle = p.InputStyle
	in.applyWidth()

	if in.ti.Value() != p.Value {
		in.ti.SetValue(p.Value)
		in.ti.CursorEnd()
	}

	if !had {
		return
	}
	if prev.Value != "" && p.Value == "" && p.OnBecomeEmpty != nil {
		p.OnBecomeEmpty(in.field)
	}
	if prev.Status != ValidityValid && p.Status == ValidityValid && p.OnBecomeValid != nil {
		p.OnBecomeValid(in.field)
	}
}

// SetWidth sets the number of cells the input renders into.
func (in *Input) SetWidth(width int) {
	in.width = max(0, width)
	in.applyWidth()
}

func (in *Input) applyWidth() {
	w := in.width
	if in.props.Additional.Width > 0 {
		w = in.props.Additional.Width
	}
	w -= lipgloss.Width(labelView(in.props.LabelStyle, in.props.Label)) + lipgloss.Width(in.ti.Prompt)
	if in.field != FieldLast4 {
		// one cell is kept for the cursor; the last-4 display never takes focus
		w--
	}
	in.ti.Width = max(1, w)
	// recompute the visible window for the new width
	in.ti.SetCursor(in.ti.Position())
}

// Focus gives the input keyboard focus and reports it through OnFocus. It is a
// no-op when the input is already focused.
func (in *Input) Focus() tea.Cmd {
	if in.ti.Focused() {
		return nil
	}
	cmd := in.ti.Focus()
	if in.props.OnFocus != nil {
		in.props.OnFocus(in.field)
	}
	return cmd
}

func (in *Input) Blur() {
	in.ti.Blur()
}

// Update feeds msg to the focused text input and forwards text changes.
func (in *Input) Update(msg tea.Msg) tea.Cmd {
	if !in.ti.Focused() {
		return nil
	}
	before := in.ti.Value()
	var cmd tea.Cmd
	in.ti, cmd = in.ti.Update(msg)
	if after := in.ti.Value(); after != before && in.props.OnChange != nil {
		in.props.OnChange(in.field, after)
	}
	return cmd
}

// View renders label and text clipped or padded to width cells. A width of
// zero or less renders nothing.
func (in *Input) View(width int) string {
	if width <= 0 {
		return ""
	}
	label := labelView(in.props.LabelStyle, in.props.Label)
	var body string
	if in.ti.Value() == "" && in.props.Placeholder != "" {
		body = in.placeholderView()
	} else {
		body = in.ti.View()
	}
	return padRight(label+body, width)
}

func (in *Input) placeholderView() string {
	style := in.props.InputStyle
	if hasColor(in.props.PlaceholderColor) {
		style = style.Foreground(ResolveColor(in.props.PlaceholderColor))
	}
	prompt := in.ti.PromptStyle.Render(in.ti.Prompt)
	ph := []rune(in.props.Placeholder)
	if !in.ti.Focused() {
		return prompt + style.Render(string(ph))
	}
	return prompt + style.Reverse(true).Render(string(ph[:1])) + style.Render(string(ph[1:]))
}

func (in *Input) textStyle() lipgloss.Style {
	st := in.props.InputStyle
	switch {
	case in.props.Status == ValidityValid && hasColor(in.props.ValidColor):
		st = st.Foreground(ResolveColor(in.props.ValidColor))
	case in.props.Status == ValidityInvalid && hasColor(in.props.InvalidColor):
		st = st.Foreground(ResolveColor(in.props.InvalidColor))
	}
	if in.props.Additional.Style != nil {
		st = in.props.Additional.Style.Inherit(st)
	}
	return st
}

// labelView renders a field label followed by a one-cell gap.
func labelView(style lipgloss.Style, label string) string {
	if label == "" {
		return ""
	}
	return style.Render(label) + " "
}
