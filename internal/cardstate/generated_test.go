package cardstate_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/jask/cardinput/internal/cardform"
	"github.com/jask/cardinput/internal/cardstate"
	"github.com/jask/cardinput/internal/testdata"
)

// Every brand at every allowed length should format, detect and validate.
func TestGeneratedNumbersAreValid(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	now := time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC)
	for _, ct := range cardstate.CardTypes {
		for _, length := range ct.Lengths {
			pan, err := testdata.Number(rng, ct, length)
			if err != nil {
				t.Fatalf("%s/%d: %v", ct.Name, length, err)
			}
			s := cardstate.New(cardstate.WithClock(func() time.Time { return now }))
			s.OnChange(cardform.FieldNumber, pan)
			if got := s.Values().Type; got != ct.Name {
				t.Fatalf("%s: type = %q, want %q", pan, got, ct.Name)
			}
			if got := s.Status().Number; got != cardform.ValidityValid {
				t.Fatalf("%s (%s): status = %q, want valid", pan, ct.Name, got)
			}
			if got := s.Summary().Last4; got != pan[len(pan)-4:] {
				t.Fatalf("%s: last4 = %q", pan, got)
			}
		}
	}
}
