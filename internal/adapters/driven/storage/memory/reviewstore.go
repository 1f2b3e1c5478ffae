package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
	"github.com/docketry-labs/docketry-cli/internal/core/ports/driven"
)

// Ensure ReviewStore implements the interface.
var _ driven.ReviewStore = (*ReviewStore)(nil)

// ReviewStore is an in-memory implementation of driven.ReviewStore.
type ReviewStore struct {
	mu      sync.RWMutex
	reports map[string]domain.Report
}

// NewReviewStore creates a new in-memory review store.
func NewReviewStore() *ReviewStore {
	return &ReviewStore{
		reports: make(map[string]domain.Report),
	}
}

// Save stores a report.
func (s *ReviewStore) Save(_ context.Context, report domain.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[report.ID] = report
	return nil
}

// List returns stored reports, newest first.
func (s *ReviewStore) List(_ context.Context) ([]domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Report, 0, len(s.reports))
	for _, r := range s.reports {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Get returns a stored report by ID.
func (s *ReviewStore) Get(_ context.Context, id string) (domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[id]
	if !ok {
		return domain.Report{}, domain.ErrNotFound
	}
	return report, nil
}

// Close releases resources.
func (s *ReviewStore) Close() error {
	return nil
}
