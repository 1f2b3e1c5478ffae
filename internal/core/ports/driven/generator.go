package driven

import "context"

// SuggestionGenerator is the external language-model boundary. The core
// treats it as a black box: a prompt goes in, free text comes out. Any
// error, timeout, or malformed response triggers the templated fallback
// in the grounding service; it is never fatal to the pipeline.
//
// Implementations may include:
//   - OpenAI-compatible chat completion APIs (OpenAI, Groq, Azure)
//   - Ollama (local models)
type SuggestionGenerator interface {
	// Generate produces text completion from a prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	Temperature float64
}
