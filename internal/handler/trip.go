package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tourvisto/backend/internal/domain"
	"github.com/tourvisto/backend/internal/pipeline"
)

// CreateTrip handles POST /api/trips.
//
// This endpoint speaks the pipeline's envelope, not errorResponse: the body
// is always {success:true,id,document} or {success:false,error}, with the
// status code carrying the failure class (201, 422 validation, 502 upstream).
// Clients that only read the body see a uniform contract either way.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req domain.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// A body that does not decode carries no usable parameters, so it
		// gets the same envelope and message as a request with fields missing.
		writeJSON(w, http.StatusUnprocessableEntity, pipeline.Result{
			Success: false,
			Error:   "Missing required parameters",
		})
		return
	}

	result := s.pipeline.Run(r.Context(), req)
	writeJSON(w, statusForResult(result), result)
}

// statusForResult maps a pipeline outcome to an HTTP status code.
func statusForResult(res pipeline.Result) int {
	if res.Success {
		return http.StatusCreated
	}
	switch res.FailedStage {
	case pipeline.StageValidate:
		return http.StatusUnprocessableEntity
	case pipeline.StageGenerate, pipeline.StageParse, pipeline.StagePersist:
		return http.StatusBadGateway
	default:
		// No stage recorded means the pipeline recovered from a panic.
		return http.StatusInternalServerError
	}
}

// ListTrips handles GET /api/trips.
// Supports ?limit= and ?offset= query parameters (defaults: limit=10, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	page, err := parsePagination(r)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	trips, total, err := s.trips.List(r.Context(), page)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[domain.Trip]{
		Data:       trips,
		Pagination: pagination{Limit: page.Limit, Offset: page.Offset, Total: total},
	})
}

// GetTrip handles GET /api/trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid trip id"))
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, trip)
}

// DeleteTrip handles DELETE /api/trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid trip id"))
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
			return
		}
		s.internalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- paging helpers ---------------------------------------------------------

// listResponse is the shared shape of paged collection endpoints.
type listResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination pagination `json:"pagination"`
}

type pagination struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

// parsePagination reads ?limit= and ?offset= into PaginationParams.
// Absent parameters fall back to the domain defaults; non-numeric or negative
// values are rejected.
func parsePagination(r *http.Request) (domain.PaginationParams, error) {
	var limit, offset *int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return domain.PaginationParams{}, errors.New("limit must be a non-negative integer")
		}
		limit = &n
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return domain.PaginationParams{}, errors.New("offset must be a non-negative integer")
		}
		offset = &n
	}
	return domain.NewPaginationParams(limit, offset), nil
}
