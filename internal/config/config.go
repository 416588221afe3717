// README: Config loader with env defaults for HTTP, logging, and provider keys.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting. App settings carry the TRIPSMITH_
// prefix; vendor credentials keep their conventional unprefixed names.
type Config struct {
	HTTP struct {
		Addr string `envconfig:"TRIPSMITH_HTTP_ADDR" default:":8080"`
	}
	Log struct {
		Level  string `envconfig:"TRIPSMITH_LOG_LEVEL" default:"info"`
		Pretty bool   `envconfig:"TRIPSMITH_LOG_PRETTY" default:"false"`
	}
	AI struct {
		Provider  string `envconfig:"TRIPSMITH_AI_PROVIDER" default:"gemini"`
		GeminiKey string `envconfig:"GEMINI_API_KEY"`
		OpenAIKey string `envconfig:"OPENAI_API_KEY"`
	}
	Places struct {
		APIKey  string `envconfig:"FOURSQUARE_API_KEY"`
		BaseURL string `envconfig:"TRIPSMITH_PLACES_BASE_URL"`
	}
	Maps struct {
		// APIKey is optional; travel enrichment is disabled without it.
		APIKey string `envconfig:"GOOGLE_MAPS_API_KEY"`
	}
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the cross-field requirements envconfig cannot express.
func (c Config) Validate() error {
	switch c.AI.Provider {
	case "gemini":
		if c.AI.GeminiKey == "" {
			return fmt.Errorf("config: GEMINI_API_KEY is required when TRIPSMITH_AI_PROVIDER=gemini")
		}
	case "openai":
		if c.AI.OpenAIKey == "" {
			return fmt.Errorf("config: OPENAI_API_KEY is required when TRIPSMITH_AI_PROVIDER=openai")
		}
	default:
		return fmt.Errorf("config: unknown TRIPSMITH_AI_PROVIDER %q", c.AI.Provider)
	}
	if c.Places.APIKey == "" {
		return fmt.Errorf("config: FOURSQUARE_API_KEY is required")
	}
	return nil
}
