package ai

import (
	"context"

	"github.com/rs/zerolog"
)

// Extractor turns free text into TripPreferences with total failure
// containment: any provider or parse error is absorbed and replaced by the
// static fallback, so the pipeline always has preferences to work with.
type Extractor struct {
	provider Provider
	log      zerolog.Logger
}

// NewExtractor wraps a Provider with the fallback policy.
func NewExtractor(provider Provider, log zerolog.Logger) *Extractor {
	return &Extractor{
		provider: provider,
		log:      log.With().Str("component", "extractor").Logger(),
	}
}

// Extract never fails. On any error the fixed fallback preferences are
// returned and the Result is tagged SourceFallback. One diagnostic line is
// logged; there is no retry.
func (e *Extractor) Extract(ctx context.Context, userText string) Result {
	prefs, err := e.provider.GeneratePreferences(ctx, userText)
	if err != nil {
		e.log.Warn().Err(err).Msg("preference extraction failed, using fallback")
		return Result{Preferences: FallbackPreferences(), Source: SourceFallback}
	}
	return Result{Preferences: prefs, Source: SourceModel}
}
