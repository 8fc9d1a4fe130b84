package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourvisto/backend/internal/domain"
	"github.com/tourvisto/backend/internal/repo"
)

func TestStatsRepo_UsersAndTripsStats(t *testing.T) {
	tx := newTestTx(t)
	users := repo.NewUserRepo(tx)
	trips := repo.NewTripRepo(tx)
	stats := repo.NewStatsRepo(tx)
	ctx := context.Background()

	// One admin joined long ago, one regular user joined this month.
	admin := userFixture()
	admin.AccountID = "acc-admin"
	admin.Status = domain.StatusAdmin
	admin.JoinedAt = time.Now().UTC().AddDate(-1, 0, 0)
	_, err := users.Create(ctx, admin)
	require.NoError(t, err)

	member := userFixture()
	member.JoinedAt = time.Now().UTC()
	_, err = users.Create(ctx, member)
	require.NoError(t, err)

	rec := recordFixture()
	rec.CreatedAt = time.Now().UTC()
	_, err = trips.Create(ctx, rec)
	require.NoError(t, err)

	got, err := stats.UsersAndTripsStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(2), got.TotalUsers)
	assert.Equal(t, int64(1), got.UsersJoined.CurrentMonth)
	assert.Equal(t, int64(1), got.TotalTrips)
	assert.Equal(t, int64(1), got.TripsCreated.CurrentMonth)
	assert.Equal(t, int64(1), got.UserRole.Total, "admins are excluded from the role count")
}

func TestStatsRepo_UserGrowthPerDay(t *testing.T) {
	tx := newTestTx(t)
	users := repo.NewUserRepo(tx)
	stats := repo.NewStatsRepo(tx)
	ctx := context.Background()

	day := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	for i, acc := range []string{"acc-1", "acc-2", "acc-3"} {
		u := userFixture()
		u.AccountID = acc
		u.JoinedAt = day
		if i == 2 {
			u.JoinedAt = day.AddDate(0, 0, 1)
		}
		_, err := users.Create(ctx, u)
		require.NoError(t, err)
	}

	got, err := stats.UserGrowthPerDay(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2025-05-20", got[0].Day)
	assert.Equal(t, int64(2), got[0].Count)
	assert.Equal(t, "2025-05-21", got[1].Day)
	assert.Equal(t, int64(1), got[1].Count)
}

func TestStatsRepo_TripsByTravelStyle(t *testing.T) {
	tx := newTestTx(t)
	trips := repo.NewTripRepo(tx)
	stats := repo.NewStatsRepo(tx)
	ctx := context.Background()

	for _, style := range []string{"Relaxed", "Relaxed", "Adventure"} {
		rec := recordFixture()
		rec.TripDetails = `{"name":"x","travelStyle":"` + style + `"}`
		_, err := trips.Create(ctx, rec)
		require.NoError(t, err)
	}

	got, err := stats.TripsByTravelStyle(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.TripsByStyle{TravelStyle: "Relaxed", Count: 2}, got[0])
	assert.Equal(t, domain.TripsByStyle{TravelStyle: "Adventure", Count: 1}, got[1])
}
