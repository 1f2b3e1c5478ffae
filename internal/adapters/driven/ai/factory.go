// Package ai provides factory functions for creating suggestion
// generator adapters.
package ai

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/docketry-labs/docketry-cli/internal/adapters/driven/llm/ollama"
	"github.com/docketry-labs/docketry-cli/internal/adapters/driven/llm/openai"
	"github.com/docketry-labs/docketry-cli/internal/core/domain"
	"github.com/docketry-labs/docketry-cli/internal/core/ports/driven"
)

// Supported providers.
const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// pingTimeout is the maximum time to wait for connectivity validation.
const pingTimeout = 5 * time.Second

// Environment variables consulted by SettingsFromEnv.
const (
	EnvAPIKey   = "OPENAI_API_KEY"
	EnvProvider = "DOCKETRY_AI_PROVIDER"
	EnvModel    = "DOCKETRY_AI_MODEL"
	EnvBaseURL  = "DOCKETRY_AI_BASE_URL"
)

// Settings describes a suggestion generator configuration.
type Settings struct {
	// Provider selects the backend: groq, openai or ollama.
	Provider string

	// APIKey authenticates hosted providers. Unused by ollama.
	APIKey string

	// BaseURL overrides the provider's default endpoint.
	BaseURL string

	// Model is the model identifier, empty for the provider default.
	Model string
}

// IsConfigured reports whether the settings can produce a generator.
// Ollama needs no key; hosted providers do.
func (s Settings) IsConfigured() bool {
	if s.Provider == ProviderOllama {
		return true
	}
	return s.APIKey != ""
}

// SettingsFromEnv assembles generator settings from the config store
// and environment. Environment variables win over stored settings;
// the provider defaults to groq, matching the hosted free tier the
// default model runs on.
func SettingsFromEnv(config driven.ConfigStore) Settings {
	s := Settings{
		Provider: os.Getenv(EnvProvider),
		APIKey:   os.Getenv(EnvAPIKey),
		BaseURL:  os.Getenv(EnvBaseURL),
		Model:    os.Getenv(EnvModel),
	}

	if config != nil {
		if s.Provider == "" {
			s.Provider = config.GetString(driven.ConfigAIProvider)
		}
		if s.Model == "" {
			s.Model = config.GetString(driven.ConfigAIModel)
		}
		if s.BaseURL == "" {
			s.BaseURL = config.GetString(driven.ConfigAIBaseURL)
		}
	}

	if s.Provider == "" {
		s.Provider = ProviderGroq
	}
	return s
}

// CreateGenerator creates the appropriate suggestion generator for the
// settings. Returns nil without error when the settings are not
// configured; the review pipeline then falls back to templated
// suggestions.
func CreateGenerator(settings Settings) (driven.SuggestionGenerator, error) {
	if !settings.IsConfigured() {
		return nil, nil
	}

	switch settings.Provider {
	case ProviderOllama:
		return ollama.NewGenerator(ollama.Config{
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		}), nil

	case ProviderGroq:
		baseURL := settings.BaseURL
		if baseURL == "" {
			baseURL = openai.GroqBaseURL
		}
		model := settings.Model
		if model == "" {
			model = openai.GroqModel
		}
		return openai.NewGenerator(openai.Config{
			APIKey:  settings.APIKey,
			BaseURL: baseURL,
			Model:   model,
		})

	case ProviderOpenAI:
		return openai.NewGenerator(openai.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
		})

	default:
		return nil, fmt.Errorf("unsupported provider: %s", settings.Provider)
	}
}

// CreateAndValidateGenerator creates a generator, wraps it with
// request throttling and validates connectivity. Returns nil without
// error when no generator is configured.
func CreateAndValidateGenerator(settings Settings) (driven.SuggestionGenerator, error) {
	gen, err := CreateGenerator(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGeneratorUnavailable, err)
	}
	if gen == nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := gen.Ping(ctx); err != nil {
		gen.Close()
		return nil, fmt.Errorf("%w: service unreachable: %v", domain.ErrGeneratorUnavailable, err)
	}

	return NewRateLimited(gen, DefaultRequestsPerSecond), nil
}
