package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tourvisto/backend/internal/domain"
)

// CreateUser handles POST /api/users.
// It stores a profile for an externally-authenticated account; the caller
// supplies the account id, there is no session handling here.
func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	var u domain.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	created, err := s.users.Create(r.Context(), u)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetUser handles GET /api/users/{accountId}.
// The lookup key is the external account id, not the row uuid: it serves the
// "does this signed-in account already have a profile" check.
func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.GetByAccountID(r.Context(), chi.URLParam(r, "accountId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("user not found"))
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// ListUsers handles GET /api/users.
// Supports ?limit= and ?offset= query parameters (defaults: limit=10, max=100).
// Each user carries its itinerary count for the admin table.
func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, err := parsePagination(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	users, total, err := s.users.List(r.Context(), page)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[domain.User]{
		Data:       users,
		Pagination: pagination{Limit: page.Limit, Offset: page.Offset, Total: total},
	})
}
