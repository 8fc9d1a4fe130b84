package pipeline

import "github.com/tourvisto/backend/internal/domain"

// assembleDetail is the pure merge step: the parsed detail gets non-nil
// ordered collections so the serialized blob always carries itinerary,
// bestTimeToVisit, and weatherInfo arrays. The latter two start empty — they
// are populated later by collaborators outside this pipeline.
func assembleDetail(d domain.TripDetail) domain.TripDetail {
	if d.Itinerary == nil {
		d.Itinerary = []domain.ItineraryDay{}
	}
	d.BestTimeToVisit = []string{}
	d.WeatherInfo = []string{}
	return d
}
