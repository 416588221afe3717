package ai

import (
	"context"
)

// Provider defines the contract for a single model call that turns free text
// into trip preferences. This interface allows for swapping different AI
// providers (Gemini, OpenAI, etc.) behind the same extractor.
// Implementations may fail; the fallback policy lives in Extractor.
type Provider interface {
	// GeneratePreferences sends the user's text to the model and parses the
	// reply into a validated TripPreferences value.
	GeneratePreferences(ctx context.Context, userText string) (TripPreferences, error)
}
