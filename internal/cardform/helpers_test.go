package cardform

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type providerEvent struct {
	kind  string
	field FieldName
	value string
}

// fakeProvider records every callback. OnFocus and OnChange write through so
// the widget sees its own requests on the next pass.
type fakeProvider struct {
	values  Values
	status  Status
	focused FieldName
	events  []providerEvent

	onBecomeValid func(FieldName)
	onBecomeEmpty func(FieldName)
}

func (p *fakeProvider) Values() Values     { return p.values }
func (p *fakeProvider) Status() Status     { return p.status }
func (p *fakeProvider) Focused() FieldName { return p.focused }

func (p *fakeProvider) OnFocus(field FieldName) {
	p.events = append(p.events, providerEvent{kind: "focus", field: field})
	p.focused = field
}

func (p *fakeProvider) OnChange(field FieldName, value string) {
	p.events = append(p.events, providerEvent{kind: "change", field: field, value: value})
	switch field {
	case FieldNumber:
		p.values.Number = value
	case FieldExpiry:
		p.values.Expiry = value
	case FieldCVC:
		p.values.CVC = value
	}
}

func (p *fakeProvider) OnBecomeEmpty(field FieldName) {
	p.events = append(p.events, providerEvent{kind: "empty", field: field})
	if p.onBecomeEmpty != nil {
		p.onBecomeEmpty(field)
	}
}

func (p *fakeProvider) OnBecomeValid(field FieldName) {
	p.events = append(p.events, providerEvent{kind: "valid", field: field})
	if p.onBecomeValid != nil {
		p.onBecomeValid(field)
	}
}

func (p *fakeProvider) count(kind string, field FieldName) int {
	n := 0
	for _, e := range p.events {
		if e.kind == kind && e.field == field {
			n++
		}
	}
	return n
}

type noopMsg struct{}

func plain(s string) string {
	return ansi.Strip(s)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(p *fakeProvider, props Props) *Model {
	m := New(p, props, WithoutAnimation())
	m.Init()
	return m
}
