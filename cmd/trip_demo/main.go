package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rs/zerolog"

	"tripsmith/internal/ai"
	"tripsmith/internal/places"
	"tripsmith/internal/service"
)

func main() {
	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}
	placesKey := os.Getenv("FOURSQUARE_API_KEY")
	if placesKey == "" {
		log.Fatal("FOURSQUARE_API_KEY environment variable not set")
	}

	// Overall deadline for the one-shot run.
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	// Diagnostics go to stderr so stdout carries only the plan JSON.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	provider, err := ai.NewGeminiProvider(ctx, geminiKey)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	extractor := ai.NewExtractor(provider, logger)
	searcher := places.NewClient(placesKey, "", logger)
	planner := service.NewTripPlanner(extractor, searcher, nil, logger)

	userMessage := "I want a relaxed 3-day trip to Montreal with great food and a bit of culture"
	fmt.Fprintf(os.Stderr, "User: %s\n", userMessage)

	plan, err := planner.GenerateTrip(ctx, userMessage)
	if err != nil {
		log.Fatalf("Error generating trip: %v", err)
	}

	out, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		log.Fatalf("Error encoding plan: %v", err)
	}
	fmt.Println(string(out))
}
