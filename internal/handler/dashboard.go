package handler

import "net/http"

// GetDashboardStats handles GET /api/dashboard/stats.
// It returns headline totals plus current/last month deltas for users, trips,
// and non-admin users.
func (s *Server) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.dashboard.Stats(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GetUserGrowth handles GET /api/dashboard/user-growth.
// It returns signups per day, oldest first.
func (s *Server) GetUserGrowth(w http.ResponseWriter, r *http.Request) {
	growth, err := s.dashboard.UserGrowth(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, growth)
}

// GetTripsByStyle handles GET /api/dashboard/trips-by-style.
// It returns trip counts grouped by travel style, largest first.
func (s *Server) GetTripsByStyle(w http.ResponseWriter, r *http.Request) {
	styles, err := s.dashboard.TripsByStyle(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, styles)
}
