package domain

import (
	"time"

	"github.com/google/uuid"
)

// User statuses. The auth provider is external; the backend only records
// which role a stored profile carries.
const (
	StatusUser  = "user"
	StatusAdmin = "admin"
)

// User is a stored user profile. AccountID links the profile to the external
// auth provider's account; it is opaque to this backend.
type User struct {
	ID             uuid.UUID `json:"id"`
	AccountID      string    `json:"accountId"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	ImageURL       string    `json:"imageUrl,omitempty"`
	JoinedAt       time.Time `json:"joinedAt"`
	Status         string    `json:"status"`
	ItineraryCount int       `json:"itineraryCount"`
}
