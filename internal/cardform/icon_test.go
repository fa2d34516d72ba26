package cardform

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestIconKeyFor(t *testing.T) {
	cases := []struct {
		focused  FieldName
		cardType string
		want     IconKey
	}{
		{FieldCVC, "american-express", IconCVCAmex},
		{FieldCVC, "visa", IconCVC},
		{FieldCVC, "", IconCVC},
		{FieldNumber, "visa", IconVisa},
		{FieldExpiry, "visa", IconVisa},
		{FieldNone, "visa", IconVisa},
		{FieldNone, "american-express", IconAmericanExpress},
		{FieldNumber, "", IconPlaceholder},
		{FieldNone, "", IconPlaceholder},
		{FieldNumber, "bankcard-of-nowhere", IconPlaceholder},
	}
	for _, tc := range cases {
		if got := IconKeyFor(tc.focused, tc.cardType, nil); got != tc.want {
			t.Fatalf("IconKeyFor(%q, %q) = %q, want %q", tc.focused, tc.cardType, got, tc.want)
		}
	}
}

func TestIconKeyForRespectsCustomSet(t *testing.T) {
	icons := IconSet{IconPlaceholder: "?", IconVisa: "V"}
	if got := IconKeyFor(FieldNumber, "master-card", icons); got != IconPlaceholder {
		t.Fatalf("master-card without glyph = %q, want placeholder", got)
	}
	if got := IconKeyFor(FieldNumber, "visa", icons); got != IconVisa {
		t.Fatalf("visa = %q, want visa", got)
	}
}

func TestGlyphPadsAndFallsBack(t *testing.T) {
	for key := range DefaultIcons {
		if w := ansi.StringWidth(DefaultIcons.Glyph(key)); w != IconWidth {
			t.Fatalf("glyph %q width = %d, want %d", key, w, IconWidth)
		}
	}
	if got := DefaultIcons.Glyph("nope"); got != DefaultIcons.Glyph(IconPlaceholder) {
		t.Fatalf("unknown glyph = %q, want placeholder", got)
	}
	if got := (IconSet{IconPlaceholder: "[TOO LONG]"}).Glyph(IconPlaceholder); ansi.StringWidth(got) != IconWidth {
		t.Fatalf("long glyph not truncated: %q", got)
	}
}
