package cardform

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// DefaultWidth is used until the host calls SetWidth.
const DefaultWidth = 60

type Option func(*Model)

func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithoutAnimation makes layout changes jump instead of easing.
func WithoutAnimation() Option {
	return func(m *Model) { m.animate = false }
}

func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

func WithWidth(width int) Option {
	return func(m *Model) { m.width = width }
}

// Model is the card entry widget. It renders the provider's state and keeps
// keyboard focus on the provider's focused field.
type Model struct {
	provider StateProvider
	props    Props
	keys     KeyMap
	log      *zap.Logger
	width    int
	animate  bool

	inputs map[FieldName]*Input
	last4  *Input
	focus  *FocusController
	anim   transition
	moved  bool
}

func New(provider StateProvider, props Props, opts ...Option) *Model {
	m := &Model{
		provider: provider,
		props:    props,
		keys:     DefaultKeyMap(),
		log:      zap.NewNop(),
		width:    DefaultWidth,
		animate:  true,
		inputs:   make(map[FieldName]*Input, len(EditableFields)),
		last4:    NewInput(FieldLast4),
		focus:    NewFocusController(),
	}
	for _, opt := range opts {
		opt(m)
	}
	for _, f := range EditableFields {
		in := NewInput(f)
		m.inputs[f] = in
		m.focus.Register(f, in)
	}
	m.focus.OnMove(m.onFocusMove)
	m.anim = newTransition(m.animate)
	m.anim.snap(compactTarget(provider.Focused()))
	m.layoutInputs()
	m.applyProps()
	m.layoutInputs()
	return m
}

// Init focuses the provider's focused field, if any.
func (m *Model) Init() tea.Cmd {
	cmd := m.focus.Mount(m.provider.Focused())
	m.moved = false
	return cmd
}

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case frameMsg:
		return m, m.anim.update(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Next):
			cmds = append(cmds, m.focus.FocusField(m.focus.Next(m.focus.Current(), 1)))
		case key.Matches(msg, m.keys.Prev):
			cmds = append(cmds, m.focus.FocusField(m.focus.Next(m.focus.Current(), -1)))
		case key.Matches(msg, m.keys.TapIcon):
			cmds = append(cmds, m.tapIcon())
		case key.Matches(msg, m.keys.TapLast4):
			cmds = append(cmds, m.tapLast4())
		default:
			cmds = append(cmds, m.updateFocused(msg))
		}
	default:
		cmds = append(cmds, m.updateFocused(msg))
	}
	cmds = append(cmds, m.sync())
	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	return m.props.layout().render(m.view())
}

// FocusField moves keyboard focus to field and lets the provider know.
func (m *Model) FocusField(field FieldName) tea.Cmd {
	cmd := m.focus.FocusField(field)
	return tea.Batch(cmd, m.sync())
}

// Refresh pushes the provider's current state into the widget. Call it after
// changing the provider outside of the widget's callbacks.
func (m *Model) Refresh() tea.Cmd {
	return m.sync()
}

// TapIcon toggles between the number and expiry inputs in the compact layout.
// The form layout's icon is not interactive.
func (m *Model) TapIcon() tea.Cmd {
	cmd := m.tapIcon()
	return tea.Batch(cmd, m.sync())
}

// TapLast4 returns to the number input from the collapsed summary.
func (m *Model) TapLast4() tea.Cmd {
	cmd := m.tapLast4()
	return tea.Batch(cmd, m.sync())
}

// IconKey is the icon currently shown.
func (m *Model) IconKey() IconKey {
	return IconKeyFor(m.provider.Focused(), m.provider.Values().Type, m.props.icons())
}

func (m *Model) Props() Props { return m.props }

// SetProps replaces the static configuration, including the layout.
func (m *Model) SetProps(p Props) {
	m.props = p
	m.applyProps()
	m.layoutInputs()
}

func (m *Model) SetLayout(mode LayoutMode) {
	m.props.Layout = mode
	m.applyProps()
	m.layoutInputs()
}

func (m *Model) Layout() LayoutMode { return m.props.layout() }

func (m *Model) Width() int { return m.width }

func (m *Model) SetWidth(width int) {
	m.width = max(0, width)
	m.layoutInputs()
}

// Focused is the field holding keyboard focus, which may briefly differ from
// the provider's until the next update.
func (m *Model) Focused() FieldName {
	return m.focus.Current()
}

// Animating reports whether a layout transition is in flight.
func (m *Model) Animating() bool {
	return !m.anim.settled()
}

func (m *Model) KeyMap() KeyMap { return m.keys }

func (m *Model) tapIcon() tea.Cmd {
	if _, ok := m.props.layout().(Compact); !ok {
		return nil
	}
	if showRightPart(m.provider.Focused()) {
		return m.focus.FocusField(FieldNumber)
	}
	return m.focus.FocusField(FieldExpiry)
}

func (m *Model) tapLast4() tea.Cmd {
	if _, ok := m.props.layout().(Compact); !ok {
		return nil
	}
	if !showRightPart(m.provider.Focused()) {
		return nil
	}
	return m.focus.FocusField(FieldNumber)
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	in, ok := m.inputs[m.focus.Current()]
	if !ok {
		return nil
	}
	return in.Update(msg)
}

// sync pushes provider state into the inputs, then runs the focus effect. A
// focus move eases the compact layout to its new arrangement; any other
// change jumps.
func (m *Model) sync() tea.Cmd {
	m.applyProps()
	cmd := m.focus.Sync(m.provider.Focused())

	target := compactTarget(m.provider.Focused())
	var anim tea.Cmd
	switch {
	case m.moved:
		anim = m.anim.retarget(target)
	case target != m.anim.target:
		m.anim.snap(target)
	}
	m.moved = false
	return tea.Batch(cmd, anim)
}

func (m *Model) onFocusMove(field FieldName) {
	m.moved = true
	m.log.Debug("card form focus moved", zap.String("field", string(field)))
}

func compactTarget(focused FieldName) float64 {
	if showRightPart(focused) {
		return 1
	}
	return 0
}

func (m *Model) applyProps() {
	values, status := m.provider.Values(), m.provider.Status()
	for _, f := range EditableFields {
		m.inputs[f].SetProps(m.inputProps(f, values, status))
	}
	m.last4.SetProps(InputProps{
		Field:      FieldLast4,
		Value:      maskedLast4(values, status),
		InputStyle: m.inputStyle(),
		LabelStyle: m.labelStyle(),
	})
}

// inputProps assembles the props of one field from the shared props and the
// provider state of this pass.
func (m *Model) inputProps(field FieldName, values Values, status Status) InputProps {
	return InputProps{
		Field:       field,
		Label:       m.props.layout().label(field),
		Placeholder: m.props.Placeholder(field),
		Value:       values.Get(field),
		Status:      status.Get(field),

		InputStyle:       m.inputStyle(),
		LabelStyle:       m.labelStyle(),
		ValidColor:       m.props.ValidColor,
		InvalidColor:     m.props.InvalidColor,
		PlaceholderColor: m.props.PlaceholderColor,
		Additional:       m.props.AdditionalInputProps[field],

		OnFocus:       m.provider.OnFocus,
		OnChange:      m.provider.OnChange,
		OnBecomeEmpty: m.provider.OnBecomeEmpty,
		OnBecomeValid: m.provider.OnBecomeValid,
	}
}

func (m *Model) inputStyle() lipgloss.Style {
	return m.props.InputStyle.Inherit(inputStyle)
}

func (m *Model) labelStyle() lipgloss.Style {
	return m.props.LabelStyle.Inherit(labelStyle)
}

func (m *Model) view() layoutView {
	return layoutView{
		width:     m.width,
		focused:   m.provider.Focused(),
		icon:      iconStyle.Render(m.props.icons().Glyph(m.IconKey())),
		progress:  m.anim.progress(),
		number:    m.inputs[FieldNumber],
		expiry:    m.inputs[FieldExpiry],
		cvc:       m.inputs[FieldCVC],
		last4:     m.last4,
		container: m.props.ContainerStyle,
		labels:    m.labelStyle(),
	}
}

func (m *Model) layoutInputs() {
	w := m.props.layout().measure(m.view())
	m.inputs[FieldNumber].SetWidth(w.number)
	m.inputs[FieldExpiry].SetWidth(w.expiry)
	m.inputs[FieldCVC].SetWidth(w.cvc)
	m.last4.SetWidth(last4Width)
}
