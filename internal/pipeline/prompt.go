package pipeline

import (
	"fmt"

	"github.com/tourvisto/backend/internal/domain"
)

// promptTemplate instructs the model to answer with a JSON object carrying
// the TripDetail summary fields. The wording is deterministic for a given
// request so generation behavior is reproducible and testable.
const promptTemplate = `Generate a %d-day travel itinerary for %s based on:
Budget: '%s'
Interests: '%s'
TravelStyle: '%s'
GroupType: '%s'
Return JSON with:
name, description, estimatedPrice, duration, budget, travelStyle, country, interests, groupType`

// buildPrompt renders the generation prompt for a validated request.
func buildPrompt(req domain.TripRequest) string {
	return fmt.Sprintf(promptTemplate,
		req.NumberOfDays,
		req.Country,
		req.Budget,
		req.Interests,
		req.TravelStyle,
		req.GroupType,
	)
}

// imageQuery derives the image search query from the request.
func imageQuery(req domain.TripRequest) string {
	return req.Country + " " + req.Interests
}
