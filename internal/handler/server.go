// Package handler implements the HTTP handlers for the Tourvisto API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, user.go, dashboard.go, health.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tourvisto/backend/internal/domain"
	"github.com/tourvisto/backend/internal/pipeline"
)

// PipelineRunner defines the trip-creation operation the handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock instead of a real Gemini/Unsplash/Postgres pipeline.
type PipelineRunner interface {
	Run(ctx context.Context, req domain.TripRequest) pipeline.Result
}

// TripServicer defines the trip read/delete operations the handler depends on.
type TripServicer interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, page domain.PaginationParams) ([]domain.Trip, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserServicer defines the user profile operations the handler depends on.
type UserServicer interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	GetByAccountID(ctx context.Context, accountID string) (domain.User, error)
	List(ctx context.Context, page domain.PaginationParams) ([]domain.User, int64, error)
}

// DashboardServicer defines the admin dashboard aggregates the handler depends on.
type DashboardServicer interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
	UserGrowth(ctx context.Context) ([]domain.UserGrowth, error)
	TripsByStyle(ctx context.Context) ([]domain.TripsByStyle, error)
}

// Server holds the handler dependencies for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	pipeline  PipelineRunner
	trips     TripServicer
	users     UserServicer
	dashboard DashboardServicer
	logger    *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(p PipelineRunner, trips TripServicer, users UserServicer, dashboard DashboardServicer, logger *slog.Logger) *Server {
	return &Server{pipeline: p, trips: trips, users: users, dashboard: dashboard, logger: logger}
}

// Routes mounts every API endpoint on a fresh chi router. Cross-cutting
// middleware (request id, logging, CORS, body limits) is wired in main.go,
// outside this router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/trips", func(r chi.Router) {
			r.Post("/", s.CreateTrip)
			r.Get("/", s.ListTrips)
			r.Get("/{id}", s.GetTrip)
			r.Delete("/{id}", s.DeleteTrip)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", s.CreateUser)
			r.Get("/", s.ListUsers)
			r.Get("/{accountId}", s.GetUser)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", s.GetDashboardStats)
			r.Get("/user-growth", s.GetUserGrowth)
			r.Get("/trips-by-style", s.GetTripsByStyle)
		})
	})

	return r
}

// writeJSON serializes v as the response body with the given status code.
// Encoding a value we built ourselves cannot realistically fail, and the
// status line is already written by the time it could, so the error is dropped.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// internalError logs the failure and responds with a generic 500 body.
// The underlying error never reaches the client.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.ErrorContext(r.Context(), "handler error", "method", r.Method, "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error: errorDetail{Code: "internal_error", Message: "internal server error"},
	})
}
