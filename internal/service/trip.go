// Package service contains the business logic for the Tourvisto backend.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
//
// Trip creation is not here: it lives in the pipeline package, which owns the
// generate→parse→provision→persist sequence and its failure envelope.
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/tourvisto/backend/internal/domain"
	"github.com/tourvisto/backend/internal/repo"
)

// TripService implements read/delete logic for stored trip documents.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// GetByID returns a single trip with its document blob decoded.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	trip, err := decodeTrip(rec)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns one page of decoded trips, newest first, plus the total trip
// count. Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, page domain.PaginationParams) ([]domain.Trip, int64, error) {
	recs, total, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.List: %w", err)
	}

	trips := make([]domain.Trip, 0, len(recs))
	for _, rec := range recs {
		trip, err := decodeTrip(rec)
		if err != nil {
			return nil, 0, fmt.Errorf("service.TripService.List: %w", err)
		}
		trips = append(trips, trip)
	}
	return trips, total, nil
}

// Delete removes a trip by ID.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// decodeTrip unmarshals a record's document blob. Blobs are written by the
// pipeline, so a decode failure means a corrupt document and is surfaced
// rather than papered over.
func decodeTrip(rec domain.TripRecord) (domain.Trip, error) {
	var detail domain.TripDetail
	if err := json.Unmarshal([]byte(rec.TripDetails), &detail); err != nil {
		return domain.Trip{}, fmt.Errorf("decode trip document %s: %w", rec.ID, err)
	}

	imageURLs := rec.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	return domain.Trip{
		ID:                  rec.ID,
		TripDetail:          detail,
		EstimatedPriceValue: domain.ParsePrice(detail.EstimatedPrice),
		ImageURLs:           imageURLs,
		UserID:              rec.UserID,
		CreatedAt:           rec.CreatedAt,
	}, nil
}
