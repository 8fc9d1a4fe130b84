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

// UserRepo defines the persistence operations for user profiles.
type UserRepo interface {
	// Create inserts a new user profile and returns the persisted record.
	// Returns domain.ErrValidation wrapped in the error if the account is
	// already stored (account_id is unique).
	Create(ctx context.Context, u domain.User) (domain.User, error)

	// GetByAccountID retrieves a profile by the external auth provider's
	// account id. Returns domain.ErrNotFound if none exists.
	GetByAccountID(ctx context.Context, accountID string) (domain.User, error)

	// List returns users ordered by joined_at descending with their trip
	// counts, plus the total number of users.
	List(ctx context.Context, page domain.PaginationParams) ([]domain.User, int64, error)
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// Create inserts a new user row and returns the full persisted record.
func (r *pgUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	const q = `
		INSERT INTO users (account_id, name, email, image_url, joined_at, status)
		VALUES (@account_id, @name, @email, @image_url, @joined_at, @status)
		RETURNING id, account_id, name, email, image_url, joined_at, status, 0`

	args := pgx.NamedArgs{
		"account_id": u.AccountID,
		"name":       u.Name,
		"email":      u.Email,
		"image_url":  u.ImageURL,
		"joined_at":  u.JoinedAt,
		"status":     u.Status,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.User{}, fmt.Errorf("repo.UserRepo.Create: account already stored: %w", domain.ErrValidation)
		}
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	return result, nil
}

// GetByAccountID retrieves a user by the external account identifier.
func (r *pgUserRepo) GetByAccountID(ctx context.Context, accountID string) (domain.User, error) {
	const q = `
		SELECT u.id, u.account_id, u.name, u.email, u.image_url, u.joined_at, u.status,
		       (SELECT count(*) FROM trips t WHERE t.user_id = u.account_id)
		FROM users u
		WHERE u.account_id = @account_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"account_id": accountID})
	result, err := scanUser(row)
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByAccountID: %w", err)
	}
	return result, nil
}

// List returns one page of users, most recent signups first, each with the
// number of trips created under their account id.
func (r *pgUserRepo) List(ctx context.Context, page domain.PaginationParams) ([]domain.User, int64, error) {
	const q = `
		SELECT u.id, u.account_id, u.name, u.email, u.image_url, u.joined_at, u.status,
		       (SELECT count(*) FROM trips t WHERE t.user_id = u.account_id)
		FROM users u
		ORDER BY u.joined_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": page.Limit, "offset": page.Offset})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.UserRepo.List: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.UserRepo.List: scan: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.UserRepo.List: rows: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.UserRepo.List: count: %w", err)
	}

	return users, total, nil
}

// scanUser maps a single database row into a domain.User. The final column
// is always the itinerary count (0 on insert, a subquery on reads).
func scanUser(s scanner) (domain.User, error) {
	var (
		u        domain.User
		id       pgtype.UUID
		imageURL pgtype.Text
	)

	err := s.Scan(&id, &u.AccountID, &u.Name, &u.Email, &imageURL, &u.JoinedAt, &u.Status, &u.ItineraryCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}

	u.ID = uuid.UUID(id.Bytes)
	if imageURL.Valid {
		u.ImageURL = imageURL.String
	}
	return u, nil
}
