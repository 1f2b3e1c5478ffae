package driven

import (
	"context"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
)

// ReviewStore persists review reports for later inspection. This is an
// optional service - when nil, history is simply not recorded.
type ReviewStore interface {
	// Save stores a report.
	Save(ctx context.Context, report domain.Report) error

	// List returns stored reports, newest first.
	List(ctx context.Context) ([]domain.Report, error)

	// Get returns a stored report by ID, or domain.ErrNotFound.
	Get(ctx context.Context, id string) (domain.Report, error)

	// Close releases resources.
	Close() error
}
