package memory

import (
	"github.com/docketry-labs/docketry-cli/internal/core/domain"
	"github.com/docketry-labs/docketry-cli/internal/core/ports/driven"
)

// Ensure SnippetStore implements the interface.
var _ driven.SnippetStore = (*SnippetStore)(nil)

// SnippetStore is an in-memory implementation of driven.SnippetStore.
// The corpus is immutable after construction, so no locking is needed.
type SnippetStore struct {
	entries []domain.SnippetEntry
	byLabel map[string]int
}

// NewSnippetStore creates a snippet store over the given entries,
// preserving declaration order. For duplicate labels the first
// occurrence wins on lookup.
func NewSnippetStore(entries []domain.SnippetEntry) *SnippetStore {
	byLabel := make(map[string]int, len(entries))
	for i, e := range entries {
		if _, ok := byLabel[e.Label]; !ok {
			byLabel[e.Label] = i
		}
	}
	return &SnippetStore{entries: entries, byLabel: byLabel}
}

// All returns every snippet in declaration order.
func (s *SnippetStore) All() []domain.SnippetEntry {
	return s.entries
}

// ByLabel returns the first snippet declared with the exact label.
func (s *SnippetStore) ByLabel(label string) (domain.SnippetEntry, bool) {
	i, ok := s.byLabel[label]
	if !ok {
		return domain.SnippetEntry{}, false
	}
	return s.entries[i], true
}
