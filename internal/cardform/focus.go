package cardform

import tea "github.com/charmbracelet/bubbletea"

// Focuser is a stable handle on something that can take keyboard focus.
type Focuser interface {
	Focus() tea.Cmd
	Blur()
}

// FocusController moves focus between registered handles. Sync is the effect
// run after every update: it only acts when the observed focused field differs
// from the one it saw last.
type FocusController struct {
	handles map[FieldName]Focuser
	order   []FieldName
	current FieldName
	onMove  func(FieldName)
}

func NewFocusController() *FocusController {
	return &FocusController{handles: map[FieldName]Focuser{}}
}

// Register binds a handle to a field. Registering a field twice replaces the
// handle but keeps its position in the tab order.
func (c *FocusController) Register(field FieldName, h Focuser) {
	if _, ok := c.handles[field]; !ok {
		c.order = append(c.order, field)
	}
	c.handles[field] = h
}

// OnMove installs a hook called after every focus move.
func (c *FocusController) OnMove(fn func(FieldName)) {
	c.onMove = fn
}

// Current is the field the controller last moved focus to or observed.
func (c *FocusController) Current() FieldName {
	return c.current
}

// Handle returns the handle registered for field.
func (c *FocusController) Handle(field FieldName) (Focuser, bool) {
	h, ok := c.handles[field]
	return h, ok
}

// Mount focuses the initially focused field, if any.
func (c *FocusController) Mount(focused FieldName) tea.Cmd {
	c.current = focused
	return c.FocusField(focused)
}

// Sync focuses focused when it differs from the last observed value.
func (c *FocusController) Sync(focused FieldName) tea.Cmd {
	if focused == c.current {
		return nil
	}
	c.current = focused
	return c.FocusField(focused)
}

// FocusField moves focus to field and blurs every other handle. Empty or
// unregistered fields are ignored.
func (c *FocusController) FocusField(field FieldName) tea.Cmd {
	if field == FieldNone {
		return nil
	}
	h, ok := c.handles[field]
	if !ok {
		return nil
	}
	c.current = field
	for _, f := range c.order {
		if f != field {
			c.handles[f].Blur()
		}
	}
	cmd := h.Focus()
	if c.onMove != nil {
		c.onMove(field)
	}
	return cmd
}

// Next returns the registered field after from, wrapping around. Step -1 walks
// backwards.
func (c *FocusController) Next(from FieldName, step int) FieldName {
	if len(c.order) == 0 {
		return FieldNone
	}
	idx := -1
	for i, f := range c.order {
		if f == from {
			idx = i
			break
		}
	}
	if idx < 0 {
		if step < 0 {
			return c.order[len(c.order)-1]
		}
		return c.order[0]
	}
	n := len(c.order)
	return c.order[((idx+step)%n+n)%n]
}
