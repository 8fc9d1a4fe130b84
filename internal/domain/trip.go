// Package domain contains the core data types for the Tourvisto backend.
// This package has no dependencies beyond uuid and is imported by every other
// internal package (pipeline, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripRequest carries the user's travel preferences into the itinerary
// pipeline. All fields are required; once validated the request is never
// mutated.
type TripRequest struct {
	Country      string `json:"country"`
	NumberOfDays int    `json:"numberOfDays"`
	TravelStyle  string `json:"travelStyle"`
	Interests    string `json:"interests"`
	Budget       string `json:"budget"`
	GroupType    string `json:"groupType"`
	UserID       string `json:"userId"`
}

// Activity is a single scheduled item within an itinerary day.
type Activity struct {
	Time          string   `json:"time"`
	Description   string   `json:"description"`
	EstimatedCost *float64 `json:"estimatedCost,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

// ItineraryDay is one day of a generated itinerary.
type ItineraryDay struct {
	Day           int        `json:"day"`
	Location      string     `json:"location"`
	Activities    []Activity `json:"activities"`
	Meals         []string   `json:"meals,omitempty"`
	Accommodation string     `json:"accommodation,omitempty"`
}

// TripDetail is the canonical description of a generated itinerary.
// EstimatedPrice is kept as the string the model produced (e.g. "$2,400");
// ParsePrice is the only place that converts it to a number.
type TripDetail struct {
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	EstimatedPrice  string         `json:"estimatedPrice"`
	Duration        int            `json:"duration"`
	Budget          string         `json:"budget"`
	TravelStyle     string         `json:"travelStyle"`
	Country         string         `json:"country"`
	Interests       string         `json:"interests"`
	GroupType       string         `json:"groupType"`
	Itinerary       []ItineraryDay `json:"itinerary"`
	BestTimeToVisit []string       `json:"bestTimeToVisit"`
	WeatherInfo     []string       `json:"weatherInfo"`
}

// TripRecord is the persisted document envelope: the TripDetail serialized as
// an opaque JSON blob plus the attributes stored alongside it. The store
// assigns ID; the pipeline never mutates a record after the write.
type TripRecord struct {
	ID          uuid.UUID `json:"id"`
	TripDetails string    `json:"tripDetails"`
	ImageURLs   []string  `json:"imageUrls"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Trip is a TripRecord with its blob decoded, as served to the admin pages.
// EstimatedPriceValue is the numeric reading of EstimatedPrice (via
// ParsePrice), so the admin tables can sort by price without re-parsing the
// display string.
type Trip struct {
	ID uuid.UUID `json:"id"`
	TripDetail
	EstimatedPriceValue float64   `json:"estimatedPriceValue"`
	ImageURLs           []string  `json:"imageUrls"`
	UserID              string    `json:"userId"`
	CreatedAt           time.Time `json:"createdAt"`
}

// ImageSource tags which path the image provisioner took, so callers and
// tests can tell a real search result from the fallback set without log
// inspection.
type ImageSource string

const (
	// ImageSourceSearch means the URLs came from the image search service.
	ImageSourceSearch ImageSource = "search"
	// ImageSourceFallback means the fixed stock set was substituted after an
	// empty result or a search failure.
	ImageSourceFallback ImageSource = "fallback"
)

// ImageSet is the image provisioner's result: up to 3 URLs and the path taken.
type ImageSet struct {
	URLs   []string
	Source ImageSource
}
