package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	// Use Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// Set a reasonable temperature for creative but structured output.
	model.SetTemperature(0.4)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// GeneratePreferences sends the extraction prompt to Gemini and parses the
// reply into TripPreferences.
func (p *GeminiProvider) GeneratePreferences(ctx context.Context, userText string) (TripPreferences, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(buildExtractionPrompt(userText)))
	if err != nil {
		return TripPreferences{}, fmt.Errorf("gemini: generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return TripPreferences{}, fmt.Errorf("gemini: API returned empty candidates")
	}

	// Extract text from the response parts.
	var reply strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			reply.WriteString(string(txt))
		}
	}

	// Clean up potential markdown formatting (json mode should handle this,
	// but some replies still arrive fenced).
	prefs, err := decodePreferences(cleanJSONString(reply.String()))
	if err != nil {
		return TripPreferences{}, fmt.Errorf("gemini: %w", err)
	}
	return prefs, nil
}
