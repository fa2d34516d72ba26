package cardform

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// IconKey selects a glyph from an IconSet.
type IconKey string

const (
	IconNumber      IconKey = "number"
	IconExpiry      IconKey = "expiry"
	IconCVC         IconKey = "cvc"
	IconCVCAmex     IconKey = "cvc_amex"
	IconPlaceholder IconKey = "placeholder"

	IconVisa            IconKey = "visa"
	IconMasterCard      IconKey = "master-card"
	IconAmericanExpress IconKey = "american-express"
	IconDinersClub      IconKey = "diners-club"
	IconDiscover        IconKey = "discover"
	IconJCB             IconKey = "jcb"
	IconUnionPay        IconKey = "unionpay"
	IconMaestro         IconKey = "maestro"
)

// IconWidth is the number of cells every icon occupies.
const IconWidth = 6

// IconSet maps icon keys to single-line glyphs.
type IconSet map[IconKey]string

// DefaultIcons is used when Props.Icons is nil.
var DefaultIcons = IconSet{
	IconNumber:      "[####]",
	IconExpiry:      "[MMYY]",
	IconCVC:         "[•••]",
	IconCVCAmex:     "[••••]",
	IconPlaceholder: "[▭▭▭▭]",

	IconVisa:            "[VISA]",
	IconMasterCard:      "[ MC ]",
	IconAmericanExpress: "[AMEX]",
	IconDinersClub:      "[DINE]",
	IconDiscover:        "[DISC]",
	IconJCB:             "[JCB]",
	IconUnionPay:        "[UPAY]",
	IconMaestro:         "[MSTR]",
}

// Has reports whether the set carries a glyph for key.
func (s IconSet) Has(key IconKey) bool {
	_, ok := s[key]
	return ok
}

// Glyph returns the glyph for key padded to IconWidth, falling back to the
// placeholder glyph.
func (s IconSet) Glyph(key IconKey) string {
	g, ok := s[key]
	if !ok {
		g = s[IconPlaceholder]
	}
	g = ansi.Truncate(g, IconWidth, "")
	if w := ansi.StringWidth(g); w < IconWidth {
		g += strings.Repeat(" ", IconWidth-w)
	}
	return g
}

// IconKeyFor picks the icon for the current focus and detected card type.
// A card type the set has no glyph for yields the placeholder.
func IconKeyFor(focused FieldName, cardType string, icons IconSet) IconKey {
	if icons == nil {
		icons = DefaultIcons
	}
	if focused == FieldCVC && IconKey(cardType) == IconAmericanExpress {
		return IconCVCAmex
	}
	if focused == FieldCVC {
		return IconCVC
	}
	if cardType != "" && icons.Has(IconKey(cardType)) {
		return IconKey(cardType)
	}
	return IconPlaceholder
}
