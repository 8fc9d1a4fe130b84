package service

import (
	"context"
	"fmt"

	"github.com/tourvisto/backend/internal/domain"
	"github.com/tourvisto/backend/internal/repo"
)

// DashboardService assembles the admin dashboard's aggregate views.
// The aggregation itself happens in SQL; this layer only guarantees the
// shapes the handlers serve.
type DashboardService struct {
	stats repo.StatsRepo
}

// NewDashboardService constructs a DashboardService backed by the provided StatsRepo.
func NewDashboardService(stats repo.StatsRepo) *DashboardService {
	return &DashboardService{stats: stats}
}

// Stats returns the headline totals and month-over-month counts.
func (s *DashboardService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	result, err := s.stats.UsersAndTripsStats(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("service.DashboardService.Stats: %w", err)
	}
	return result, nil
}

// UserGrowth returns signups per day, oldest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *DashboardService) UserGrowth(ctx context.Context) ([]domain.UserGrowth, error) {
	growth, err := s.stats.UserGrowthPerDay(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.DashboardService.UserGrowth: %w", err)
	}
	if growth == nil {
		growth = []domain.UserGrowth{}
	}
	return growth, nil
}

// TripsByStyle returns trip counts grouped by travel style, largest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *DashboardService) TripsByStyle(ctx context.Context) ([]domain.TripsByStyle, error) {
	styles, err := s.stats.TripsByTravelStyle(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.DashboardService.TripsByStyle: %w", err)
	}
	if styles == nil {
		styles = []domain.TripsByStyle{}
	}
	return styles, nil
}
