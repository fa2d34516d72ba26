package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/jask/cardinput/internal/cardstate"
	"github.com/jask/cardinput/internal/database/repository"
)

// maxAttempts bounds retries when a random prefix lands on another brand.
const maxAttempts = 50

// CardInserter is the part of the card store Seed needs.
type CardInserter interface {
	Insert(ctx context.Context, c repository.Card) (repository.Card, error)
}

// Number returns a digits-only number of length digits that is detected as
// brand t and carries a valid check digit.
func Number(rng *rand.Rand, t cardstate.CardType, length int) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		p := t.Patterns[rng.Intn(len(t.Patterns))]
		body := randomPrefix(rng, p)
		for len(body) < length-1 {
			body += strconv.Itoa(rng.Intn(10))
		}
		pan := body + string(cardstate.CheckDigit(body))
		if got, ok := cardstate.Detect(pan); ok && got.Name == t.Name {
			return pan, nil
		}
	}
	return "", errors.Errorf("no %s number after %d attempts", t.Name, maxAttempts)
}

func randomPrefix(rng *rand.Rand, p cardstate.Pattern) string {
	lo, _ := strconv.Atoi(p.Min)
	hi, _ := strconv.Atoi(p.Max)
	v := lo + rng.Intn(hi-lo+1)
	return fmt.Sprintf("%0*d", len(p.Min), v)
}

// Expiry returns an MM/YY expiry between one and five years after now.
func Expiry(rng *rand.Rand, now time.Time) string {
	t := now.AddDate(0, 12+rng.Intn(4*12+1), 0)
	return fmt.Sprintf("%02d/%02d", int(t.Month()), t.Year()%100)
}

// Seed stores n sample card summaries with random brands.
func Seed(ctx context.Context, store CardInserter, rng *rand.Rand, n int) ([]repository.Card, error) {
	if n < 0 {
		return nil, errors.Errorf("sample card count must not be negative, got %d", n)
	}
	now := time.Now()
	out := make([]repository.Card, 0, n)
	for i := 0; i < n; i++ {
		t := cardstate.CardTypes[rng.Intn(len(cardstate.CardTypes))]
		pan, err := Number(rng, t, t.Lengths[0])
		if err != nil {
			return out, err
		}
		c, err := store.Insert(ctx, repository.Card{
			Brand:  t.Name,
			Last4:  pan[len(pan)-4:],
			Expiry: Expiry(rng, now),
		})
		if err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, nil
}
