package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"tripsmith/internal/ai"
	"tripsmith/internal/places"
)

// resultsPerCategory is the fixed limit sent with every category search.
const resultsPerCategory = 5

// ErrEmptyInput is returned when the request text is blank.
var ErrEmptyInput = errors.New("trip: empty request text")

// PreferenceExtractor yields trip preferences for free text. It never fails;
// the Result records whether the model or the fallback produced the value.
type PreferenceExtractor interface {
	Extract(ctx context.Context, userText string) ai.Result
}

// PlaceSearcher runs one venue search. Failures must propagate.
type PlaceSearcher interface {
	Search(ctx context.Context, req places.SearchRequest) ([]places.Place, error)
}

// LegEstimator annotates the drive between two stops.
type LegEstimator interface {
	EstimateLeg(ctx context.Context, origin, destination string) (time.Duration, string, error)
}

// TripPlanner orchestrates preference extraction, the per-category venue
// searches, and the day-by-day assembly.
type TripPlanner struct {
	extractor PreferenceExtractor
	searcher  PlaceSearcher
	routes    LegEstimator // nil disables travel enrichment
	log       zerolog.Logger
}

// NewTripPlanner creates a TripPlanner. routes may be nil.
func NewTripPlanner(extractor PreferenceExtractor, searcher PlaceSearcher, routes LegEstimator, log zerolog.Logger) *TripPlanner {
	return &TripPlanner{
		extractor: extractor,
		searcher:  searcher,
		routes:    routes,
		log:       log.With().Str("component", "planner").Logger(),
	}
}

// GenerateTrip turns a free-text request into a TripPlan. Extraction never
// fails; a failed category search aborts the whole call.
func (p *TripPlanner) GenerateTrip(ctx context.Context, userText string) (*TripPlan, error) {
	if strings.TrimSpace(userText) == "" {
		return nil, ErrEmptyInput
	}

	// 1. Extract preferences (always succeeds, may be the fallback).
	res := p.extractor.Extract(ctx, userText)
	prefs := res.Preferences
	p.log.Info().
		Str("source", string(res.Source)).
		Str("location", prefs.Location).
		Int("duration", prefs.Duration).
		Strs("categories", prefs.Categories).
		Msg("preferences extracted")

	// 2. Fan out one search per category. The join is all-or-nothing: the
	// first failure cancels the rest and aborts the call.
	resultsByCategory := make([][]places.Place, len(prefs.Categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, category := range prefs.Categories {
		g.Go(func() error {
			found, err := p.searcher.Search(gctx, places.SearchRequest{
				Query: category,
				Near:  prefs.Location,
				Limit: resultsPerCategory,
				Sort:  places.SortRating,
			})
			if err != nil {
				return fmt.Errorf("trip: category %q: %w", category, err)
			}
			resultsByCategory[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		p.log.Error().Err(err).Msg("category search failed, aborting trip generation")
		return nil, err
	}

	// 3. Round-robin assembly: day i takes results[i mod len] from each
	// category, skipping categories with no results.
	itinerary := make([]ItineraryDay, 0, prefs.Duration)
	for day := 0; day < prefs.Duration; day++ {
		entry := ItineraryDay{Day: day + 1}
		for _, results := range resultsByCategory {
			if len(results) == 0 {
				continue
			}
			entry.Places = append(entry.Places, results[day%len(results)])
		}
		if p.routes != nil {
			entry.Travel = p.estimateTravel(ctx, entry.Places)
		}
		itinerary = append(itinerary, entry)
	}

	return &TripPlan{Preferences: prefs, Itinerary: itinerary}, nil
}

// estimateTravel annotates consecutive places with driving legs. Estimates
// are best-effort: a failed leg is skipped, never an error.
func (p *TripPlanner) estimateTravel(ctx context.Context, dayPlaces []places.Place) []TravelLeg {
	var legs []TravelLeg
	for i := 0; i+1 < len(dayPlaces); i++ {
		from, to := dayPlaces[i], dayPlaces[i+1]
		dur, dist, err := p.routes.EstimateLeg(ctx, from.Location.FormattedAddress, to.Location.FormattedAddress)
		if err != nil {
			p.log.Debug().Err(err).Str("from", from.Name).Str("to", to.Name).Msg("leg estimate skipped")
			continue
		}
		legs = append(legs, TravelLeg{
			From:     from.Name,
			To:       to.Name,
			Duration: fmt.Sprintf("%.0f min", dur.Minutes()),
			Distance: dist,
		})
	}
	return legs
}
