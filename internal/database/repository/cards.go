package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotFound is returned when a card id does not exist.
var ErrNotFound = errors.New("card not found")

// CardRepo handles saved card summaries.
type CardRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewCardRepo(db *sql.DB) *CardRepo {
	return &CardRepo{db: db, now: func() time.Time { return time.Now().UTC().Truncate(time.Second) }}
}

// Insert stores c, assigning an id and creation time when they are unset.
func (r *CardRepo) Insert(ctx context.Context, c Card) (Card, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.now()
	}
	if len(c.Last4) > 4 {
		c.Last4 = c.Last4[len(c.Last4)-4:]
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO cards(id, brand, last4, expiry, created_at)
	VALUES (?, ?, ?, ?, ?)`, c.ID, c.Brand, c.Last4, c.Expiry, c.CreatedAt)
	if err != nil {
		return Card{}, errors.Wrap(err, "insert card")
	}
	return c, nil
}

// List returns every saved card, newest first.
func (r *CardRepo) List(ctx context.Context) ([]Card, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, brand, last4, expiry, created_at FROM cards ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "list cards")
	}
	defer rows.Close()
	var out []Card
	for rows.Next() {
		var c Card
		if err := rows.Scan(&c.ID, &c.Brand, &c.Last4, &c.Expiry, &c.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan card")
		}
		out = append(out, c)
	}
	return out, errors.Wrap(rows.Err(), "list cards")
}

// Delete removes the card with id. It returns ErrNotFound when nothing
// matched.
func (r *CardRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(err, "delete card")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete card")
	}
	if n == 0 {
		return errors.WithStack(ErrNotFound)
	}
	return nil
}
