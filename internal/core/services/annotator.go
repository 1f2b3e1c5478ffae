package services

import (
	"github.com/docketry-labs/docketry-cli/internal/core/domain"
	"github.com/docketry-labs/docketry-cli/internal/logger"
)

// Annotator inserts highlighted inline comments into documents.
// Insertion is idempotent: re-running the same issue and grounding on
// the same document leaves exactly one comment behind.
type Annotator struct{}

// NewAnnotator creates a new annotator.
func NewAnnotator() *Annotator {
	return &Annotator{}
}

// Annotate attaches the grounding's comment to the issue's paragraph,
// clamping out-of-range indexes to the last paragraph. The highlight
// colour follows the issue severity. Returns true when a comment was
// inserted, false when an identical comment was already present or the
// document is empty.
func (a *Annotator) Annotate(doc *domain.Document, issue domain.Issue, grounding domain.Grounding) bool {
	if len(doc.Paragraphs) == 0 {
		return false
	}

	idx := doc.ClampIndex(issue.ParagraphIndex)
	comment := domain.Comment{
		ParagraphIndex: idx,
		Text:           grounding.CommentText(),
		Highlight:      domain.HighlightFor(issue.Severity),
	}

	added := doc.Paragraphs[idx].AddComment(comment)
	if !added {
		logger.Debug("Skipping duplicate comment on %s paragraph %d", doc.Filename, idx)
	}
	return added
}
