package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/cardinput/internal/database"
	"github.com/jask/cardinput/internal/database/repository"
)

func newRepo(t *testing.T) *repository.CardRepo {
	t.Helper()
	db, err := database.OpenAndMigrate(filepath.Join(t.TempDir(), "cards.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return repository.NewCardRepo(db)
}

func TestCardRepoInsertList(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	cards, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, cards)

	base := time.Date(2026, time.October, 1, 9, 0, 0, 0, time.UTC)
	first, err := repo.Insert(ctx, repository.Card{Brand: "visa", Last4: "4242", Expiry: "12/30", CreatedAt: base})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := repo.Insert(ctx, repository.Card{Brand: "american-express", Last4: "0005", Expiry: "01/29", CreatedAt: base.Add(time.Hour)})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	cards, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	require.Equal(t, second.ID, cards[0].ID, "newest first")
	require.Equal(t, "0005", cards[0].Last4)
	require.True(t, cards[1].CreatedAt.Equal(base))
}

func TestCardRepoInsertDefaults(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	c, err := repo.Insert(ctx, repository.Card{Brand: "visa", Last4: "4242424242424242", Expiry: "12/30"})
	require.NoError(t, err)
	require.Equal(t, "4242", c.Last4, "only the last four digits are kept")
	require.False(t, c.CreatedAt.IsZero())
}

func TestCardRepoDelete(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	c, err := repo.Insert(ctx, repository.Card{Brand: "visa", Last4: "4242", Expiry: "12/30"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, c.ID))
	cards, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, cards)

	err = repo.Delete(ctx, c.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
