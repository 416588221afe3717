package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider using OpenAI chat completions.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a provider backed by the given API key.
func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}
}

// GeneratePreferences sends the extraction prompt to OpenAI and parses the
// reply into TripPreferences.
func (p *OpenAIProvider) GeneratePreferences(ctx context.Context, userText string) (TripPreferences, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildExtractionPrompt(userText)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.4,
	})
	if err != nil {
		return TripPreferences{}, fmt.Errorf("openai: create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return TripPreferences{}, fmt.Errorf("openai: API returned empty choices")
	}

	prefs, err := decodePreferences(cleanJSONString(resp.Choices[0].Message.Content))
	if err != nil {
		return TripPreferences{}, fmt.Errorf("openai: %w", err)
	}
	return prefs, nil
}
