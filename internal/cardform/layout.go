package cardform

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	containerPad = 1
	expiryWidth  = 7
	cvcWidth     = 6
	last4Width   = 4
	last4Margin  = 2
	rowGap       = 1
)

// LayoutMode selects how the form is arranged. It is either Compact or Form.
type LayoutMode interface {
	Name() string
	label(field FieldName) string
	measure(v layoutView) fieldWidths
	render(v layoutView) string
}

// Compact is the default single-row layout that collapses the number into a
// last-4 summary once focus moves to expiry or cvc.
type Compact struct{}

// Form is the labeled two-row layout. It never collapses.
type Form struct{}

// ParseLayout maps a layout name to a mode. Only "form" selects Form.
func ParseLayout(name string) LayoutMode {
	if name == "form" {
		return Form{}
	}
	return Compact{}
}

type fieldWidths struct {
	number int
	expiry int
	cvc    int
}

// layoutView is the read-only snapshot a layout renders from.
type layoutView struct {
	width    int
	focused  FieldName
	icon     string
	progress float64

	number *Input
	expiry *Input
	cvc    *Input
	last4  *Input

	container lipgloss.Style
	labels    lipgloss.Style
}

// showRightPart reports whether the compact layout should show the
// expiry/cvc group instead of the number.
func showRightPart(focused FieldName) bool {
	return focused != FieldNone && focused != FieldNumber
}

// maskedLast4 is the number's last four characters once it is valid.
func maskedLast4(values Values, status Status) string {
	if status.Number != ValidityValid {
		return ""
	}
	r := []rune(values.Number)
	if len(r) <= last4Width {
		return string(r)
	}
	return string(r[len(r)-last4Width:])
}

func (Compact) Name() string { return "fade" }

func (Compact) label(FieldName) string { return "" }

func (Compact) measure(v layoutView) fieldWidths {
	return fieldWidths{
		number: compactAvail(v.width),
		expiry: expiryWidth,
		cvc:    cvcWidth,
	}
}

func compactAvail(width int) int {
	return max(0, width-2*containerPad-IconWidth)
}

func (Compact) render(v layoutView) string {
	inner := max(0, v.width-2*containerPad)
	avail := compactAvail(v.width)
	leftW := int(math.Round((1 - v.progress) * float64(avail)))
	rightW := avail - leftW

	left := clip(v.number.View(avail), leftW)
	right := clip(compactRightPart(v, avail), rightW)

	pad := strings.Repeat(" ", containerPad)
	return pad + padRight(left+v.icon+right, inner) + pad
}

func compactRightPart(v layoutView, width int) string {
	last4W := max(last4Margin+last4Width, width-expiryWidth-cvcWidth)
	last4 := padRight(strings.Repeat(" ", last4Margin)+v.last4.View(last4Width), last4W)
	return last4 + v.expiry.View(expiryWidth) + v.cvc.View(cvcWidth)
}

var formLabels = map[FieldName]string{
	FieldNumber: "CARD NUMBER",
	FieldExpiry: "EXPIRY",
	FieldCVC:    "CVC",
}

func (Form) Name() string { return "form" }

func (Form) label(field FieldName) string { return formLabels[field] }

func (Form) measure(v layoutView) fieldWidths {
	inner := max(0, v.width-v.container.GetHorizontalFrameSize())
	cvcW := lipgloss.Width(labelView(v.labels, formLabels[FieldCVC])) + cvcWidth
	return fieldWidths{
		number: max(0, inner-IconWidth-rowGap),
		expiry: max(0, inner-cvcW-rowGap),
		cvc:    cvcW,
	}
}

func (f Form) render(v layoutView) string {
	w := f.measure(v)
	gap := strings.Repeat(" ", rowGap)

	first := v.number.View(w.number) + gap + v.icon
	second := v.expiry.View(w.expiry) + gap + v.cvc.View(w.cvc)
	return v.container.Render(lipgloss.JoinVertical(lipgloss.Left, first, "", second))
}

// clip keeps the first width cells of every line of s, padding short lines.
func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = padRight(l, width)
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
