package pipeline

import (
	"strings"

	"github.com/tourvisto/backend/internal/domain"
)

// validateRequest checks that every required field of the trip request is
// present. It returns the request's fields unchanged — no defaults are ever
// filled in — and reports all-or-nothing: any missing field yields the same
// "Missing required parameters" failure the original contract promises.
//
// Numeric coercion of NumberOfDays is the HTTP layer's job; by the time a
// request reaches the pipeline the field is an int and only its range is
// checked here.
func validateRequest(req domain.TripRequest) error {
	for _, f := range []string{
		req.Country,
		req.TravelStyle,
		req.Interests,
		req.Budget,
		req.GroupType,
		req.UserID,
	} {
		if strings.TrimSpace(f) == "" {
			return validationError()
		}
	}
	if req.NumberOfDays <= 0 {
		return validationError()
	}
	return nil
}
