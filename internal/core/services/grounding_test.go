package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docketry-labs/docketry-cli/internal/adapters/driven/storage/memory"
	"github.com/docketry-labs/docketry-cli/internal/core/domain"
)

func jurisdictionIssue() domain.Issue {
	return domain.Issue{
		Document:       "articles.docx",
		DocumentType:   domain.TypeArticlesOfAssociation,
		ParagraphIndex: 1,
		Category:       domain.CategoryJurisdiction,
		Severity:       domain.SeverityHigh,
		Match:          "uae federal court",
		Title:          "References UAE Federal Court instead of ADGM",
	}
}

func TestGrounder_AIDisabled_UsesTemplate(t *testing.T) {
	gen := &fakeGenerator{response: `{"rationale":"r","suggestion":"s"}`}
	g := NewGrounder(testSnippets(), testRules(), gen)

	result := g.Ground(context.Background(), jurisdictionIssue(), false)

	assert.Equal(t, domain.OriginTemplate, result.Origin)
	assert.Equal(t, "Refer disputes to the ADGM Courts.", result.Suggestion)
	assert.Empty(t, result.Rationale)
	assert.Nil(t, result.Citation)
	assert.Zero(t, gen.calls, "generator must not be called when AI is disabled")
}

func TestGrounder_NilGenerator_UsesTemplate(t *testing.T) {
	g := NewGrounder(testSnippets(), testRules(), nil)

	result := g.Ground(context.Background(), jurisdictionIssue(), true)
	assert.Equal(t, domain.OriginTemplate, result.Origin)
}

func TestGrounder_AIPath(t *testing.T) {
	gen := &fakeGenerator{
		response: `Here you go: {"rationale":"ADGM entities must litigate in ADGM Courts.","suggestion":"Replace the forum clause with the ADGM Courts."} Hope that helps.`,
	}
	g := NewGrounder(testSnippets(), testRules(), gen)

	result := g.Ground(context.Background(), jurisdictionIssue(), true)

	assert.Equal(t, domain.OriginAI, result.Origin)
	assert.Equal(t, "ADGM entities must litigate in ADGM Courts.", result.Rationale)
	assert.Equal(t, "Replace the forum clause with the ADGM Courts.", result.Suggestion)
	require.NotNil(t, result.Citation)
	assert.Equal(t, "ADGM Courts Jurisdiction", *result.Citation)

	// The prompt embeds issue context and the selected snippet.
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "ADGM Courts Jurisdiction")
	assert.Contains(t, gen.prompts[0], "uae federal court")
}

// TestGrounder_GeneratorError_FallsBack: any generator failure takes
// the templated path with a nil citation, never an error.
func TestGrounder_GeneratorError_FallsBack(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	g := NewGrounder(testSnippets(), testRules(), gen)

	result := g.Ground(context.Background(), jurisdictionIssue(), true)

	assert.Equal(t, domain.OriginTemplate, result.Origin)
	assert.Equal(t, "Refer disputes to the ADGM Courts.", result.Suggestion)
	assert.Nil(t, result.Citation)
}

func TestGrounder_MalformedResponse_FallsBack(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"no json", "I cannot help with that."},
		{"broken json", `{"rationale": "x", "suggestion":`},
		{"empty suggestion", `{"rationale":"x","suggestion":"  "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{response: tt.response}
			g := NewGrounder(testSnippets(), testRules(), gen)

			result := g.Ground(context.Background(), jurisdictionIssue(), true)
			assert.Equal(t, domain.OriginTemplate, result.Origin)
			assert.Nil(t, result.Citation)
		})
	}
}

// TestGrounder_TieBreakDeclarationOrder: equally scored snippets keep
// corpus declaration order, so the first declared wins the citation.
func TestGrounder_TieBreakDeclarationOrder(t *testing.T) {
	snippets := memory.NewSnippetStore([]domain.SnippetEntry{
		{Label: "First", Body: "jurisdiction adgm court"},
		{Label: "Second", Body: "jurisdiction adgm court"},
	})
	gen := &fakeGenerator{response: `{"rationale":"r","suggestion":"s"}`}
	g := NewGrounder(snippets, testRules(), gen)

	result := g.Ground(context.Background(), jurisdictionIssue(), true)

	require.NotNil(t, result.Citation)
	assert.Equal(t, "First", *result.Citation)
}

// TestGrounder_TopKKeepsFirstDeclaredTies: when a later snippet
// outscores a run of equally scored earlier ones, the earlier ties
// still fill the remaining prompt slots in declaration order.
func TestGrounder_TopKKeepsFirstDeclaredTies(t *testing.T) {
	snippets := memory.NewSnippetStore([]domain.SnippetEntry{
		{Label: "Alpha", Body: "court hearings"},
		{Label: "Beta", Body: "court fees"},
		{Label: "Gamma", Body: "court rules"},
		{Label: "Primary", Body: "adgm court jurisdiction"},
	})
	gen := &fakeGenerator{response: `{"rationale":"r","suggestion":"s"}`}
	g := NewGrounder(snippets, testRules(), gen)

	result := g.Ground(context.Background(), jurisdictionIssue(), true)

	require.NotNil(t, result.Citation)
	assert.Equal(t, "Primary", *result.Citation)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Alpha")
	assert.Contains(t, gen.prompts[0], "Beta")
	assert.NotContains(t, gen.prompts[0], "Gamma")
}

func TestGrounder_NoMatchingSnippet_FallsBack(t *testing.T) {
	snippets := memory.NewSnippetStore([]domain.SnippetEntry{
		{Label: "Unrelated", Body: "zoning permits construction"},
	})
	gen := &fakeGenerator{response: `{"rationale":"r","suggestion":"s"}`}
	g := NewGrounder(snippets, testRules(), gen)

	result := g.Ground(context.Background(), jurisdictionIssue(), true)

	assert.Equal(t, domain.OriginTemplate, result.Origin)
	assert.Zero(t, gen.calls)
}

func TestParseSuggestion(t *testing.T) {
	rationale, suggestion, err := parseSuggestion("```json\n{\"rationale\":\"a\",\"suggestion\":\"b\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "a", rationale)
	assert.Equal(t, "b", suggestion)
}
