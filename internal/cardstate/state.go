package cardstate

import (
	"time"

	"github.com/jask/cardinput/internal/cardform"
)

// Snapshot is what a listener sees after every change.
type Snapshot struct {
	Values cardform.Values
	Status cardform.Status
	Valid  bool
}

// Summary is the part of a card that may be shown or stored. It never holds
// the full number or the security code.
type Summary struct {
	Brand  string
	Last4  string
	Expiry string
}

type Option func(*State)

// WithAutoFocus focuses the number field on construction and reset.
func WithAutoFocus() Option {
	return func(s *State) { s.autoFocus = true }
}

// WithRequiresCVC controls whether the security code is part of the form.
func WithRequiresCVC(required bool) Option {
	return func(s *State) { s.requiresCVC = required }
}

// WithListener registers fn to receive a snapshot after every change.
func WithListener(fn func(Snapshot)) Option {
	return func(s *State) { s.listener = fn }
}

// WithClock replaces time.Now for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		if now != nil {
			s.now = now
		}
	}
}

// State owns the form values, formats and validates them, and decides where
// focus goes. It implements cardform.StateProvider and is meant to be used
// from a single goroutine, like the bubbletea update loop.
type State struct {
	values  cardform.Values
	status  cardform.Status
	focused cardform.FieldName

	autoFocus   bool
	requiresCVC bool
	listener    func(Snapshot)
	now         func() time.Time
}

var _ cardform.StateProvider = (*State)(nil)

func New(opts ...Option) *State {
	s := &State{requiresCVC: true, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Reset clears every value and restores the initial focus.
func (s *State) Reset() {
	s.values = cardform.Values{}
	s.focused = cardform.FieldNone
	if s.autoFocus {
		s.focused = cardform.FieldNumber
	}
	s.revalidate()
}

func (s *State) Values() cardform.Values     { return s.values }
func (s *State) Status() cardform.Status     { return s.status }
func (s *State) Focused() cardform.FieldName { return s.focused }
func (s *State) RequiresCVC() bool           { return s.requiresCVC }

// Focus sets the focused field. The widget moves keyboard focus on its next
// update.
func (s *State) Focus(field cardform.FieldName) {
	s.focused = field
}

func (s *State) OnFocus(field cardform.FieldName) {
	s.Focus(field)
}

// OnChange merges value, then reformats and revalidates everything since the
// number's brand drives the other fields.
func (s *State) OnChange(field cardform.FieldName, value string) {
	switch field {
	case cardform.FieldNumber:
		s.values.Number = value
	case cardform.FieldExpiry:
		s.values.Expiry = value
	case cardform.FieldCVC:
		s.values.CVC = value
	default:
		return
	}
	s.reformat()
	s.revalidate()
	if s.listener != nil {
		s.listener(s.Snapshot())
	}
}

// OnBecomeEmpty moves focus back to the field before field.
func (s *State) OnBecomeEmpty(field cardform.FieldName) {
	if prev, ok := s.neighbor(field, -1); ok {
		s.Focus(prev)
	}
}

// OnBecomeValid moves focus on to the field after field.
func (s *State) OnBecomeValid(field cardform.FieldName) {
	if next, ok := s.neighbor(field, 1); ok {
		s.Focus(next)
	}
}

// DisplayedFields are the fields that take part in the form, in order.
func (s *State) DisplayedFields() []cardform.FieldName {
	if s.requiresCVC {
		return []cardform.FieldName{cardform.FieldNumber, cardform.FieldExpiry, cardform.FieldCVC}
	}
	return []cardform.FieldName{cardform.FieldNumber, cardform.FieldExpiry}
}

// Valid reports whether every displayed field is valid.
func (s *State) Valid() bool {
	for _, f := range s.DisplayedFields() {
		if s.status.Get(f) != cardform.ValidityValid {
			return false
		}
	}
	return true
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{Values: s.values, Status: s.status, Valid: s.Valid()}
}

// Summary returns the brand, last four digits and expiry of the number.
func (s *State) Summary() Summary {
	d := digitsOnly(s.values.Number)
	last4 := d
	if len(d) > 4 {
		last4 = d[len(d)-4:]
	}
	return Summary{
		Brand:  s.values.Type,
		Last4:  last4,
		Expiry: s.values.Expiry,
	}
}

func (s *State) neighbor(field cardform.FieldName, step int) (cardform.FieldName, bool) {
	fields := s.DisplayedFields()
	for i, f := range fields {
		if f != field {
			continue
		}
		j := i + step
		if j < 0 || j >= len(fields) {
			return cardform.FieldNone, false
		}
		return fields[j], true
	}
	return cardform.FieldNone, false
}

func (s *State) reformat() {
	s.values.Number = FormatNumber(s.values.Number)
	s.values.Expiry = FormatExpiry(s.values.Expiry)
	s.values.CVC = FormatCVC(s.values.CVC, s.values.Number)

	s.values.Type = ""
	if t, ok := Detect(digitsOnly(s.values.Number)); ok {
		s.values.Type = t.Name
	}
}

func (s *State) revalidate() {
	s.status = cardform.Status{
		Number: ValidateNumber(s.values.Number),
		Expiry: ValidateExpiry(s.values.Expiry, s.now()),
	}
	if s.requiresCVC {
		s.status.CVC = ValidateCVC(s.values.CVC, s.values.Number)
	}
}
