package driven

import "github.com/docketry-labs/docketry-cli/internal/core/domain"

// SnippetStore provides the labelled reference snippets used for
// citation grounding. The store is loaded once at startup and is
// read-only for the lifetime of the process.
type SnippetStore interface {
	// All returns every snippet in declaration order. The grounding
	// service relies on this order for deterministic tie-breaking.
	All() []domain.SnippetEntry

	// ByLabel returns the first snippet declared with the exact label.
	// Duplicate labels are allowed in the corpus; first occurrence wins.
	ByLabel(label string) (domain.SnippetEntry, bool)
}
