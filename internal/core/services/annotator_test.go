package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
)

func TestAnnotator_InsertsComment(t *testing.T) {
	a := NewAnnotator()
	doc := testDocument("articles.docx", "p0", "UAE Federal Courts decide.", "p2")

	issue := jurisdictionIssue()
	grounding := domain.Grounding{Origin: domain.OriginTemplate, Suggestion: "Use ADGM Courts."}

	require.True(t, a.Annotate(doc, issue, grounding))

	para := doc.Paragraphs[1]
	require.Len(t, para.Comments, 1)
	assert.Equal(t, "AI Suggestion: Use ADGM Courts. | Source: N/A", para.Comments[0].Text)
	assert.Equal(t, domain.HighlightRed, para.Comments[0].Highlight)
	assert.Equal(t, 1, para.Comments[0].ParagraphIndex)
}

// TestAnnotator_Idempotent: annotating twice with the same issue and
// grounding leaves exactly one comment.
func TestAnnotator_Idempotent(t *testing.T) {
	a := NewAnnotator()
	doc := testDocument("articles.docx", "p0", "UAE Federal Courts decide.")

	issue := jurisdictionIssue()
	grounding := domain.Grounding{Suggestion: "Use ADGM Courts."}

	assert.True(t, a.Annotate(doc, issue, grounding))
	assert.False(t, a.Annotate(doc, issue, grounding))
	assert.Len(t, doc.Paragraphs[1].Comments, 1)
}

func TestAnnotator_SeverityColours(t *testing.T) {
	a := NewAnnotator()
	doc := testDocument("memo.docx", "hedged wording here")

	issue := domain.Issue{ParagraphIndex: 0, Category: domain.CategoryAmbiguous, Severity: domain.SeverityMedium}
	a.Annotate(doc, issue, domain.Grounding{Suggestion: "Bind it."})

	assert.Equal(t, domain.HighlightYellow, doc.Paragraphs[0].Comments[0].Highlight)
}

// TestAnnotator_OutOfRangeClamps: a missing-document style anchor past
// the end lands on the last paragraph.
func TestAnnotator_OutOfRangeClamps(t *testing.T) {
	a := NewAnnotator()
	doc := testDocument("memo.docx", "p0", "p1")

	issue := domain.Issue{ParagraphIndex: 42, Severity: domain.SeverityHigh}
	require.True(t, a.Annotate(doc, issue, domain.Grounding{Suggestion: "Fix."}))

	assert.Empty(t, doc.Paragraphs[0].Comments)
	assert.Len(t, doc.Paragraphs[1].Comments, 1)
}

func TestAnnotator_EmptyDocument(t *testing.T) {
	a := NewAnnotator()
	doc := &domain.Document{Filename: "empty.docx"}

	assert.False(t, a.Annotate(doc, domain.Issue{}, domain.Grounding{Suggestion: "x"}))
}

// TestAnnotator_PreservesText: annotation never alters paragraph text.
func TestAnnotator_PreservesText(t *testing.T) {
	a := NewAnnotator()
	doc := testDocument("memo.docx", "original text stays")

	a.Annotate(doc, domain.Issue{ParagraphIndex: 0}, domain.Grounding{Suggestion: "x"})
	assert.Equal(t, "original text stays", doc.Paragraphs[0].Text)
}
