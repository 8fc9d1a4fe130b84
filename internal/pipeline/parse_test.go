package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validPayload is a model answer with every required summary field.
const validPayload = `{
	"name": "Flavors of Japan",
	"description": "Five relaxed days eating through Tokyo and Kyoto.",
	"estimatedPrice": "$2,400",
	"duration": 5,
	"budget": "Medium",
	"travelStyle": "Relaxed",
	"country": "Japan",
	"interests": "Food",
	"groupType": "Couple"
}`

func TestParseTripDetail_PlainJSON(t *testing.T) {
	detail, err := parseTripDetail(validPayload)

	require.NoError(t, err)
	assert.Equal(t, "Flavors of Japan", detail.Name)
	assert.Equal(t, "$2,400", detail.EstimatedPrice)
	assert.Equal(t, 5, detail.Duration)
}

func TestParseTripDetail_MarkdownFenced(t *testing.T) {
	raw := "```json\n" + validPayload + "\n```"

	detail, err := parseTripDetail(raw)

	require.NoError(t, err)
	assert.Equal(t, "Japan", detail.Country)
}

// The model often narrates around its answer; the parser must find the object
// regardless and extract semantically identical fields.
func TestParseTripDetail_ProseAroundJSON(t *testing.T) {
	raw := "Sure! Here is your itinerary:\n\n" + validPayload + "\n\nEnjoy your trip!"

	detail, err := parseTripDetail(raw)

	require.NoError(t, err)
	assert.Equal(t, "Couple", detail.GroupType)
}

func TestParseTripDetail_NoJSON(t *testing.T) {
	_, err := parseTripDetail("A lovely five day trip through Japan, starting in Tokyo...")

	require.Error(t, err)
	assert.Equal(t, "Failed to parse AI response", err.Error())
}

func TestParseTripDetail_EmptyInput(t *testing.T) {
	_, err := parseTripDetail("   ")

	require.Error(t, err)
	assert.Equal(t, "Failed to parse AI response", err.Error())
}

func TestParseTripDetail_TruncatedJSON(t *testing.T) {
	_, err := parseTripDetail(`{"name": "Flavors of Japan", "description":`)

	require.Error(t, err)
	assert.Equal(t, "Failed to parse AI response", err.Error())
}

func TestParseTripDetail_MissingRequiredField(t *testing.T) {
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(validPayload), &m))
	delete(m, "estimatedPrice")
	raw, err := json.Marshal(m)
	require.NoError(t, err)

	_, err = parseTripDetail(string(raw))

	require.Error(t, err)
	assert.Equal(t, "Failed to parse AI response", err.Error())
}

// A field with the wrong primitive type must be rejected, not coerced.
func TestParseTripDetail_MistypedField(t *testing.T) {
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(validPayload), &m))
	m["duration"] = "five"
	raw, err := json.Marshal(m)
	require.NoError(t, err)

	_, err = parseTripDetail(string(raw))

	require.Error(t, err)
	assert.Equal(t, "Failed to parse AI response", err.Error())
}

func TestParseTripDetail_WithItinerary(t *testing.T) {
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(validPayload), &m))
	m["duration"] = 2
	m["itinerary"] = []map[string]any{
		{"day": 1, "location": "Tokyo", "activities": []map[string]any{
			{"time": "Morning", "description": "Tsukiji outer market"},
		}},
		{"day": 2, "location": "Kyoto", "activities": []map[string]any{
			{"time": "Evening", "description": "Gion food walk", "estimatedCost": 45.0},
		}},
	}
	raw, err := json.Marshal(m)
	require.NoError(t, err)

	detail, err := parseTripDetail(string(raw))

	require.NoError(t, err)
	require.Len(t, detail.Itinerary, 2)
	assert.Equal(t, "Kyoto", detail.Itinerary[1].Location)
	require.NotNil(t, detail.Itinerary[1].Activities[0].EstimatedCost)
	assert.Equal(t, 45.0, *detail.Itinerary[1].Activities[0].EstimatedCost)
}

// duration must equal the count of distinct itinerary days when an itinerary
// is present.
func TestParseTripDetail_DurationItineraryMismatch(t *testing.T) {
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(validPayload), &m))
	m["itinerary"] = []map[string]any{
		{"day": 1, "location": "Tokyo", "activities": []map[string]any{}},
	}
	raw, err := json.Marshal(m)
	require.NoError(t, err)

	_, err = parseTripDetail(string(raw))

	require.Error(t, err)
	assert.Equal(t, "Failed to parse AI response", err.Error())
}

func TestExtractJSON_PicksObjectBoundaries(t *testing.T) {
	raw := `prefix {"a": {"b": 1}} suffix`

	assert.Equal(t, `{"a": {"b": 1}}`, extractJSON(raw))
}

func TestExtractJSON_InvalidObject(t *testing.T) {
	assert.Equal(t, "", extractJSON(`some {unbalanced text`))
}
