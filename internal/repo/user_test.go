package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourvisto/backend/internal/domain"
	"github.com/tourvisto/backend/internal/repo"
)

func userFixture() domain.User {
	return domain.User{
		AccountID: "acc-1",
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		ImageURL:  "https://img/ada.jpg",
		JoinedAt:  time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC),
		Status:    domain.StatusUser,
	}
}

func TestUserRepo_Create(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))
	ctx := context.Background()

	got, err := r.Create(ctx, userFixture())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "acc-1", got.AccountID)
	assert.Equal(t, domain.StatusUser, got.Status)
	assert.Zero(t, got.ItineraryCount)
}

func TestUserRepo_Create_DuplicateAccount(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.Create(ctx, userFixture())
	require.NoError(t, err)

	_, err = r.Create(ctx, userFixture())

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserRepo_GetByAccountID(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, userFixture())
	require.NoError(t, err)

	got, err := r.GetByAccountID(ctx, "acc-1")

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "ada@example.com", got.Email)
}

func TestUserRepo_GetByAccountID_NotFound(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))

	_, err := r.GetByAccountID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// The list carries each user's trip count, joined on the account id that
// trip documents store as their userId attribute.
func TestUserRepo_List_WithItineraryCounts(t *testing.T) {
	tx := newTestTx(t)
	users := repo.NewUserRepo(tx)
	trips := repo.NewTripRepo(tx)
	ctx := context.Background()

	_, err := users.Create(ctx, userFixture())
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := trips.Create(ctx, recordFixture()) // recordFixture uses UserID "acc-1"
		require.NoError(t, err)
	}

	got, total, err := users.List(ctx, domain.PaginationParams{Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ItineraryCount)
}

func TestUserRepo_List_NewestFirst(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))
	ctx := context.Background()

	older := userFixture()
	newer := userFixture()
	newer.AccountID = "acc-2"
	newer.JoinedAt = older.JoinedAt.Add(24 * time.Hour)

	_, err := r.Create(ctx, older)
	require.NoError(t, err)
	newest, err := r.Create(ctx, newer)
	require.NoError(t, err)

	got, _, err := r.List(ctx, domain.PaginationParams{Limit: 10})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newest.ID, got[0].ID)
}
