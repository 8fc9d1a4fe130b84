package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tourvisto/backend/internal/domain"
)

// extractJSON locates the JSON object embedded in raw model output. Models
// routinely wrap their answer in markdown code fences or surround it with
// prose; the object itself runs from the first '{' to the last '}'. Returns
// "" when no valid JSON object can be found.
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	s = s[start : end+1]

	if !json.Valid([]byte(s)) {
		return ""
	}
	return s
}

// parseTripDetail turns raw model output into a validated TripDetail.
// It fails closed: when no JSON object can be located, when a field has the
// wrong type, or when a required field is missing, the whole response is
// rejected — partial or guessed data is never substituted.
func parseTripDetail(raw string) (domain.TripDetail, error) {
	parseErr := func(cause error) (domain.TripDetail, error) {
		return domain.TripDetail{}, &StageError{Stage: StageParse, Message: msgParseFailed, Err: cause}
	}

	jsonText := extractJSON(raw)
	if jsonText == "" {
		return parseErr(fmt.Errorf("no JSON object in model output"))
	}

	var detail domain.TripDetail
	if err := json.Unmarshal([]byte(jsonText), &detail); err != nil {
		return parseErr(fmt.Errorf("unmarshal: %w", err))
	}

	if err := validateDetail(detail); err != nil {
		return parseErr(err)
	}
	return detail, nil
}

// validateDetail enforces the TripDetail shape: every summary field present,
// duration positive, and — when an itinerary was generated — duration equal
// to the number of distinct days in it.
func validateDetail(d domain.TripDetail) error {
	for name, v := range map[string]string{
		"name":           d.Name,
		"description":    d.Description,
		"estimatedPrice": d.EstimatedPrice,
		"budget":         d.Budget,
		"travelStyle":    d.TravelStyle,
		"country":        d.Country,
		"interests":      d.Interests,
		"groupType":      d.GroupType,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("missing field %q", name)
		}
	}
	if d.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %d", d.Duration)
	}

	if len(d.Itinerary) > 0 {
		days := make(map[int]struct{}, len(d.Itinerary))
		for _, day := range d.Itinerary {
			days[day.Day] = struct{}{}
		}
		if len(days) != d.Duration {
			return fmt.Errorf("duration %d does not match %d itinerary days", d.Duration, len(days))
		}
	}
	return nil
}
