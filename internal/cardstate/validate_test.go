package cardstate

import (
	"testing"
	"time"

	"github.com/jask/cardinput/internal/cardform"
)

var testNow = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

func TestLuhn(t *testing.T) {
	cases := map[string]bool{
		"4242424242424242": true,
		"4242424242424241": false,
		"79927398713":      true,
		"378282246310005":  true,
		"":                 false,
		"42a2":             false,
	}
	for in, want := range cases {
		if got := Luhn(in); got != want {
			t.Fatalf("Luhn(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestValidateNumber(t *testing.T) {
	cases := []struct {
		number string
		want   cardform.Validity
	}{
		{"", cardform.ValidityIncomplete},
		{"4", cardform.ValidityIncomplete},
		{"4242", cardform.ValidityIncomplete},
		{"4242 4242 4242 4242", cardform.ValidityValid},
		// visa also allows 18 and 19 digits, so a bad checksum at 16 may still grow
		{"4242 4242 4242 4241", cardform.ValidityIncomplete},
		{"5555 5555 5555 4444", cardform.ValidityValid},
		{"5555 5555 5555 4445", cardform.ValidityInvalid},
		{"3782 822463 10005", cardform.ValidityValid},
		{"3782 822463 10006", cardform.ValidityInvalid},
		{"6200 0000 0000 0001", cardform.ValidityValid},
		{"0000", cardform.ValidityInvalid},
		{"1234 5678", cardform.ValidityInvalid},
	}
	for _, tc := range cases {
		if got := ValidateNumber(tc.number); got != tc.want {
			t.Fatalf("ValidateNumber(%q) = %q, want %q", tc.number, got, tc.want)
		}
	}
}

func TestValidateExpiry(t *testing.T) {
	cases := []struct {
		expiry string
		want   cardform.Validity
	}{
		{"", cardform.ValidityIncomplete},
		{"1", cardform.ValidityIncomplete},
		{"0", cardform.ValidityIncomplete},
		{"2", cardform.ValidityInvalid},
		{"12", cardform.ValidityIncomplete},
		{"00", cardform.ValidityInvalid},
		{"13", cardform.ValidityInvalid},
		{"12/2", cardform.ValidityIncomplete},
		{"12/1", cardform.ValidityInvalid},
		{"10/26", cardform.ValidityValid},
		{"09/26", cardform.ValidityInvalid},
		{"01/27", cardform.ValidityValid},
		{"12/45", cardform.ValidityValid},
		{"12/46", cardform.ValidityInvalid},
		{"12/345", cardform.ValidityInvalid},
	}
	for _, tc := range cases {
		if got := ValidateExpiry(tc.expiry, testNow); got != tc.want {
			t.Fatalf("ValidateExpiry(%q) = %q, want %q", tc.expiry, got, tc.want)
		}
	}
}

func TestValidateExpiryLastInstantOfMonth(t *testing.T) {
	end := time.Date(2026, time.October, 31, 23, 59, 59, 999999999, time.UTC)
	if got := ValidateExpiry("10/26", end); got != cardform.ValidityValid {
		t.Fatalf("last instant of month = %q, want valid", got)
	}
	if got := ValidateExpiry("10/26", end.Add(time.Nanosecond)); got != cardform.ValidityInvalid {
		t.Fatalf("first instant after month = %q, want invalid", got)
	}
}

func TestValidateExpiryAcrossCentury(t *testing.T) {
	now := time.Date(2090, time.March, 10, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		expiry string
		want   cardform.Validity
	}{
		{"01/05", cardform.ValidityValid},
		{"12/09", cardform.ValidityValid},
		{"01/10", cardform.ValidityInvalid},
		{"12/89", cardform.ValidityInvalid},
		{"03/90", cardform.ValidityValid},
		{"12/0", cardform.ValidityIncomplete},
		{"12/1", cardform.ValidityInvalid},
		{"12/8", cardform.ValidityInvalid},
	}
	for _, tc := range cases {
		if got := ValidateExpiry(tc.expiry, now); got != tc.want {
			t.Fatalf("ValidateExpiry(%q) in 2090 = %q, want %q", tc.expiry, got, tc.want)
		}
	}
}

func TestValidateCVC(t *testing.T) {
	const visa, amex = "4242 4242 4242 4242", "3782 822463 10005"
	cases := []struct {
		cvc, number string
		want        cardform.Validity
	}{
		{"", visa, cardform.ValidityIncomplete},
		{"12", visa, cardform.ValidityIncomplete},
		{"123", visa, cardform.ValidityValid},
		{"1234", visa, cardform.ValidityInvalid},
		{"123", amex, cardform.ValidityIncomplete},
		{"1234", amex, cardform.ValidityValid},
		{"123", "", cardform.ValidityValid},
		{"1234", "", cardform.ValidityValid},
		{"12", "", cardform.ValidityIncomplete},
	}
	for _, tc := range cases {
		if got := ValidateCVC(tc.cvc, tc.number); got != tc.want {
			t.Fatalf("ValidateCVC(%q, %q) = %q, want %q", tc.cvc, tc.number, got, tc.want)
		}
	}
}
