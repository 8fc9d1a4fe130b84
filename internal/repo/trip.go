// Package repo contains all database access logic for the Tourvisto backend.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
//
// Trips are stored document-style: the canonical TripDetail lives in an
// opaque JSON blob column, with the attributes queried by the admin pages
// (image URLs, owning user, creation time) stored alongside it.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tourvisto/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for trip documents.
// The pipeline and service layers depend on this interface, not the concrete
// Postgres implementation, which allows them to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip document and returns the persisted record
	// with the store-generated id populated. The id is never reused and the
	// record is never mutated by the creation pipeline afterwards.
	Create(ctx context.Context, rec domain.TripRecord) (domain.TripRecord, error)

	// GetByID retrieves a single trip document by its UUID.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.TripRecord, error)

	// List returns trips ordered by created_at descending, plus the total
	// count of trips for pagination.
	List(ctx context.Context, page domain.PaginationParams) ([]domain.TripRecord, int64, error)

	// Delete removes a trip by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, rec domain.TripRecord) (domain.TripRecord, error) {
	const q = `
		INSERT INTO trips (trip_details, image_urls, user_id, created_at)
		VALUES (@trip_details, @image_urls, @user_id, @created_at)
		RETURNING id, trip_details, image_urls, user_id, created_at`

	args := pgx.NamedArgs{
		"trip_details": rec.TripDetails,
		"image_urls":   rec.ImageURLs,
		"user_id":      rec.UserID,
		"created_at":   rec.CreatedAt,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.TripRecord{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.TripRecord, error) {
	const q = `
		SELECT id, trip_details, image_urls, user_id, created_at
		FROM trips
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.TripRecord{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns one page of trips, most recently created first, and the total
// trip count.
func (r *pgTripRepo) List(ctx context.Context, page domain.PaginationParams) ([]domain.TripRecord, int64, error) {
	const q = `
		SELECT id, trip_details, image_urls, user_id, created_at
		FROM trips
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": page.Limit, "offset": page.Offset})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	var trips []domain.TripRecord
	for rows.Next() {
		rec, err := scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM trips`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.List: count: %w", err)
	}

	return trips, total, nil
}

// Delete removes a trip by primary key.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.TripRecord.
func scanTrip(s scanner) (domain.TripRecord, error) {
	var (
		rec domain.TripRecord
		id  pgtype.UUID
	)

	err := s.Scan(&id, &rec.TripDetails, &rec.ImageURLs, &rec.UserID, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TripRecord{}, domain.ErrNotFound
		}
		return domain.TripRecord{}, err
	}

	rec.ID = uuid.UUID(id.Bytes)
	return rec, nil
}
