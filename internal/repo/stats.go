package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/tourvisto/backend/internal/domain"
)

// StatsRepo defines the aggregate queries behind the admin dashboard.
type StatsRepo interface {
	// UsersAndTripsStats returns the headline totals and month-over-month
	// counts. Month boundaries are computed by the database from now().
	UsersAndTripsStats(ctx context.Context) (domain.DashboardStats, error)

	// UserGrowthPerDay returns signups per calendar day, oldest first.
	UserGrowthPerDay(ctx context.Context) ([]domain.UserGrowth, error)

	// TripsByTravelStyle returns trip counts grouped by the travelStyle field
	// of the stored documents, largest group first.
	TripsByTravelStyle(ctx context.Context) ([]domain.TripsByStyle, error)
}

// pgStatsRepo is the Postgres implementation of StatsRepo.
type pgStatsRepo struct {
	db db
}

// NewStatsRepo constructs a StatsRepo backed by the provided db connection.
func NewStatsRepo(db db) StatsRepo {
	return &pgStatsRepo{db: db}
}

// UsersAndTripsStats gathers every headline number in a single round trip.
func (r *pgStatsRepo) UsersAndTripsStats(ctx context.Context) (domain.DashboardStats, error) {
	const q = `
		SELECT
			(SELECT count(*) FROM users),
			(SELECT count(*) FROM users
				WHERE joined_at >= date_trunc('month', now())),
			(SELECT count(*) FROM users
				WHERE joined_at >= date_trunc('month', now()) - interval '1 month'
				  AND joined_at <  date_trunc('month', now())),
			(SELECT count(*) FROM trips),
			(SELECT count(*) FROM trips
				WHERE created_at >= date_trunc('month', now())),
			(SELECT count(*) FROM trips
				WHERE created_at >= date_trunc('month', now()) - interval '1 month'
				  AND created_at <  date_trunc('month', now())),
			(SELECT count(*) FROM users WHERE status = 'user'),
			(SELECT count(*) FROM users WHERE status = 'user'
				AND joined_at >= date_trunc('month', now())),
			(SELECT count(*) FROM users WHERE status = 'user'
				AND joined_at >= date_trunc('month', now()) - interval '1 month'
				AND joined_at <  date_trunc('month', now()))`

	var s domain.DashboardStats
	err := r.db.QueryRow(ctx, q).Scan(
		&s.TotalUsers,
		&s.UsersJoined.CurrentMonth,
		&s.UsersJoined.LastMonth,
		&s.TotalTrips,
		&s.TripsCreated.CurrentMonth,
		&s.TripsCreated.LastMonth,
		&s.UserRole.Total,
		&s.UserRole.CurrentMonth,
		&s.UserRole.LastMonth,
	)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("repo.StatsRepo.UsersAndTripsStats: %w", err)
	}
	return s, nil
}

// UserGrowthPerDay groups signups by calendar day.
func (r *pgStatsRepo) UserGrowthPerDay(ctx context.Context) ([]domain.UserGrowth, error) {
	const q = `
		SELECT joined_at::date AS day, count(*)
		FROM users
		GROUP BY day
		ORDER BY day`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.StatsRepo.UserGrowthPerDay: %w", err)
	}
	defer rows.Close()

	var growth []domain.UserGrowth
	for rows.Next() {
		var (
			day   time.Time
			count int64
		)
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("repo.StatsRepo.UserGrowthPerDay: scan: %w", err)
		}
		growth = append(growth, domain.UserGrowth{Day: day.Format("2006-01-02"), Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.StatsRepo.UserGrowthPerDay: rows: %w", err)
	}

	return growth, nil
}

// TripsByTravelStyle reaches into the document blob for the travelStyle
// field. The blob column is text, so it is cast to jsonb here; documents
// written by the pipeline always carry the field.
func (r *pgStatsRepo) TripsByTravelStyle(ctx context.Context) ([]domain.TripsByStyle, error) {
	const q = `
		SELECT coalesce(trip_details::jsonb->>'travelStyle', '') AS style, count(*)
		FROM trips
		GROUP BY style
		ORDER BY count(*) DESC, style`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.StatsRepo.TripsByTravelStyle: %w", err)
	}
	defer rows.Close()

	var styles []domain.TripsByStyle
	for rows.Next() {
		var s domain.TripsByStyle
		if err := rows.Scan(&s.TravelStyle, &s.Count); err != nil {
			return nil, fmt.Errorf("repo.StatsRepo.TripsByTravelStyle: scan: %w", err)
		}
		styles = append(styles, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.StatsRepo.TripsByTravelStyle: rows: %w", err)
	}

	return styles, nil
}
