package ai

// Pace and budget levels the extractor accepts. Anything else in a model
// reply counts as a shape mismatch.
const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// TripPreferences captures the structured output from the AI model.
type TripPreferences struct {
	// Categories are ordered places-search topics (e.g. "food", "culture").
	// Each one becomes a separate venue search.
	Categories []string `json:"categories"`

	// Location is the destination name used as the search anchor.
	Location string `json:"location"`

	// Duration is the trip length in whole days. Always positive.
	Duration int `json:"duration"`

	// Pace is one of low/medium/high.
	Pace string `json:"pace"`

	// Budget is one of low/medium/high.
	Budget string `json:"budget"`
}

// Source tags which path produced a Result.
type Source string

const (
	// SourceModel means the preferences were parsed from the model reply.
	SourceModel Source = "model"

	// SourceFallback means extraction failed and the static substitute was used.
	SourceFallback Source = "fallback"
)

// Result is the outcome of an extraction. Extract never fails; Source
// records whether the model reply survived the strict parse.
type Result struct {
	Preferences TripPreferences
	Source      Source
}

// FallbackPreferences returns the static substitute used whenever
// extraction fails. The values are intentional demo defaults.
func FallbackPreferences() TripPreferences {
	return TripPreferences{
		Categories: []string{"food", "culture", "nature"},
		Location:   "Montreal",
		Duration:   3,
		Pace:       LevelHigh,
		Budget:     LevelHigh,
	}
}
