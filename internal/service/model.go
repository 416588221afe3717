package service

import (
	"tripsmith/internal/ai"
	"tripsmith/internal/places"
)

// TravelLeg annotates the drive between two consecutive places of a day.
type TravelLeg struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Duration string `json:"duration"`
	Distance string `json:"distance"`
}

// ItineraryDay is one day of the plan: at most one place per requested
// category, in category order. Day numbering is 1-based.
type ItineraryDay struct {
	Day    int            `json:"day"`
	Places []places.Place `json:"places"`
	Travel []TravelLeg    `json:"travel,omitempty"`
}

// TripPlan is the final assembled output.
type TripPlan struct {
	Preferences ai.TripPreferences `json:"preferences"`
	Itinerary   []ItineraryDay     `json:"itinerary"`
}
