package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourvisto/backend/internal/domain"
)

func validRequest() domain.TripRequest {
	return domain.TripRequest{
		Country:      "Japan",
		NumberOfDays: 5,
		TravelStyle:  "Relaxed",
		Interests:    "Food",
		Budget:       "Medium",
		GroupType:    "Couple",
		UserID:       "u1",
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	assert.NoError(t, validateRequest(validRequest()))
}

// The validator passes requests through untouched and never fills defaults —
// any missing field is the same uniform failure.
func TestValidateRequest_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.TripRequest)
	}{
		{"country", func(r *domain.TripRequest) { r.Country = "" }},
		{"travelStyle", func(r *domain.TripRequest) { r.TravelStyle = "" }},
		{"interests", func(r *domain.TripRequest) { r.Interests = "  " }},
		{"budget", func(r *domain.TripRequest) { r.Budget = "" }},
		{"groupType", func(r *domain.TripRequest) { r.GroupType = "" }},
		{"userId", func(r *domain.TripRequest) { r.UserID = "" }},
		{"numberOfDays zero", func(r *domain.TripRequest) { r.NumberOfDays = 0 }},
		{"numberOfDays negative", func(r *domain.TripRequest) { r.NumberOfDays = -2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validateRequest(req)

			require.Error(t, err)
			assert.Equal(t, "Missing required parameters", err.Error())
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	req := validRequest()

	first := buildPrompt(req)
	second := buildPrompt(req)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "5-day travel itinerary for Japan")
	assert.Contains(t, first, "Interests: 'Food'")
	assert.Contains(t, first, "GroupType: 'Couple'")
}

func TestImageQuery(t *testing.T) {
	assert.Equal(t, "Japan Food", imageQuery(validRequest()))
}
