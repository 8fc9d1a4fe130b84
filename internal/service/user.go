package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tourvisto/backend/internal/domain"
	"github.com/tourvisto/backend/internal/repo"
)

// UserService implements business logic for stored user profiles.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService constructs a UserService backed by the provided UserRepo.
func NewUserService(r repo.UserRepo) *UserService {
	return &UserService{repo: r}
}

// Create validates and persists a profile for an externally-authenticated
// account. JoinedAt defaults to now and Status to "user" when unset.
// Returns domain.ErrValidation for missing fields, an invalid status, or an
// account that is already stored.
func (s *UserService) Create(ctx context.Context, u domain.User) (domain.User, error) {
	if err := validateUser(&u); err != nil {
		return domain.User{}, err
	}
	result, err := s.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Create: %w", err)
	}
	return result, nil
}

// GetByAccountID returns the profile stored for an external account id.
func (s *UserService) GetByAccountID(ctx context.Context, accountID string) (domain.User, error) {
	result, err := s.repo.GetByAccountID(ctx, accountID)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.GetByAccountID: %w", err)
	}
	return result, nil
}

// List returns one page of users with their trip counts, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *UserService) List(ctx context.Context, page domain.PaginationParams) ([]domain.User, int64, error) {
	users, total, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("service.UserService.List: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, total, nil
}

// validateUser enforces profile rules and fills defaults in place.
//   - AccountID, Name, and Email must be non-empty.
//   - Status must be "user" or "admin"; empty defaults to "user".
//   - JoinedAt defaults to the current time.
func validateUser(u *domain.User) error {
	for name, v := range map[string]string{
		"accountId": u.AccountID,
		"name":      u.Name,
		"email":     u.Email,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrValidation, name)
		}
	}

	switch u.Status {
	case "":
		u.Status = domain.StatusUser
	case domain.StatusUser, domain.StatusAdmin:
	default:
		return fmt.Errorf("%w: status must be %q or %q", domain.ErrValidation, domain.StatusUser, domain.StatusAdmin)
	}

	if u.JoinedAt.IsZero() {
		u.JoinedAt = time.Now().UTC()
	}
	return nil
}
