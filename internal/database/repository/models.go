package repository

import "time"

// Card is a saved card summary. The full number and security code are never
// stored.
type Card struct {
	ID        string
	Brand     string
	Last4     string
	Expiry    string
	CreatedAt time.Time
}
