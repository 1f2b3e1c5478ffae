package ai

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/docketry-labs/docketry-cli/internal/core/ports/driven"
)

// DefaultRequestsPerSecond throttles generation calls. Hosted free
// tiers reject bursts well below this.
const DefaultRequestsPerSecond = 1.0

// Ensure RateLimited implements the interface.
var _ driven.SuggestionGenerator = (*RateLimited)(nil)

// RateLimited wraps a suggestion generator with proactive throttling
// so batch reviews of many documents stay inside provider quotas.
type RateLimited struct {
	inner  driven.SuggestionGenerator
	bucket *rate.Limiter
}

// NewRateLimited wraps gen with a token bucket of the given rate.
func NewRateLimited(gen driven.SuggestionGenerator, requestsPerSecond float64) *RateLimited {
	return &RateLimited{
		inner:  gen,
		bucket: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// Generate waits for a token, then delegates.
func (r *RateLimited) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	if err := r.bucket.Wait(ctx); err != nil {
		return "", err
	}
	return r.inner.Generate(ctx, prompt, opts)
}

// ModelName returns the wrapped generator's model name.
func (r *RateLimited) ModelName() string {
	return r.inner.ModelName()
}

// Ping delegates without consuming a token; pings are lightweight.
func (r *RateLimited) Ping(ctx context.Context) error {
	return r.inner.Ping(ctx)
}

// Close releases the wrapped generator's resources.
func (r *RateLimited) Close() error {
	return r.inner.Close()
}
