package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
)

func TestDetector_Jurisdiction(t *testing.T) {
	d := NewDetector(testRules())

	doc := testDocument("articles.docx",
		"Articles of Association",
		"Disputes shall be resolved exclusively by the UAE Federal Courts",
		"Signatories: Adam Smith (Director)")
	doc.Type = domain.TypeArticlesOfAssociation

	issues := d.Scan(doc)
	require.Len(t, issues, 1)
	assert.Equal(t, domain.CategoryJurisdiction, issues[0].Category)
	assert.Equal(t, domain.SeverityHigh, issues[0].Severity)
	assert.Equal(t, 1, issues[0].ParagraphIndex)
	assert.Equal(t, "uae federal court", issues[0].Match)
}

// TestDetector_JurisdictionQualifier verifies an ADGM reference in the
// same paragraph suppresses the jurisdiction flag.
func TestDetector_JurisdictionQualifier(t *testing.T) {
	d := NewDetector(testRules())

	doc := testDocument("articles.docx",
		"Disputes go to the ADGM Courts, not the UAE Federal Courts.",
		"Signed by: Adam Smith")

	assert.Empty(t, d.Scan(doc))
}

func TestDetector_MissingSignatory_AnchoredAtLastParagraph(t *testing.T) {
	d := NewDetector(testRules())

	doc := testDocument("resolution.docx",
		"Board Resolution",
		"Resolved: approve the incorporation documents.",
		"Date: 9 August 2025")

	issues := d.Scan(doc)
	require.Len(t, issues, 1)
	assert.Equal(t, domain.CategoryMissingSignatory, issues[0].Category)
	assert.Equal(t, 2, issues[0].ParagraphIndex)
}

func TestDetector_Ambiguous(t *testing.T) {
	d := NewDetector(testRules())

	doc := testDocument("memo.docx",
		"The company may, at its discretion, distribute dividends.",
		"This term sheet is non-binding.",
		"Signature: ______")

	issues := d.Scan(doc)
	require.Len(t, issues, 2)
	for _, issue := range issues {
		assert.Equal(t, domain.CategoryAmbiguous, issue.Category)
		assert.Equal(t, domain.SeverityMedium, issue.Severity)
	}
	assert.Equal(t, 0, issues[0].ParagraphIndex)
	assert.Equal(t, 1, issues[1].ParagraphIndex)
}

// TestDetector_FirstMatchPerRulePerParagraph: several keywords of the
// same rule in one paragraph yield a single issue.
func TestDetector_FirstMatchPerRulePerParagraph(t *testing.T) {
	d := NewDetector(testRules())

	doc := testDocument("memo.docx",
		"The parties shall use best efforts and may, at its discretion, proceed on a non-binding basis.",
		"Signed by: A")

	issues := d.Scan(doc)
	require.Len(t, issues, 1)
	assert.Equal(t, "may, at its discretion", issues[0].Match)
}

// TestDetector_MultipleCategoriesSameParagraph: one paragraph can
// trigger distinct rule categories.
func TestDetector_MultipleCategoriesSameParagraph(t *testing.T) {
	d := NewDetector(testRules())

	doc := testDocument("articles.docx",
		"The UAE Federal Court may, at its discretion, hear disputes.",
		"Signatories: present")

	issues := d.Scan(doc)
	require.Len(t, issues, 2)
	assert.Equal(t, domain.CategoryJurisdiction, issues[0].Category)
	assert.Equal(t, domain.CategoryAmbiguous, issues[1].Category)
	assert.Equal(t, issues[0].ParagraphIndex, issues[1].ParagraphIndex)
}

func TestDetector_MissingClauses(t *testing.T) {
	rules := testRules()
	rules.Clauses[domain.TypeMemorandumOfAssociation] = []string{"Registered Address", "Share Capital"}
	d := NewDetector(rules)

	doc := testDocument("memorandum.docx",
		"Memorandum of Association",
		"Share Capital: 1000 shares",
		"Signed by: Adam Smith")
	doc.Type = domain.TypeMemorandumOfAssociation

	issues := d.Scan(doc)
	require.Len(t, issues, 1)
	assert.Equal(t, domain.CategoryMissingClause, issues[0].Category)
	assert.Equal(t, "Registered Address", issues[0].Match)
	assert.Equal(t, 0, issues[0].ParagraphIndex)
}

func TestDetector_CleanDocument(t *testing.T) {
	d := NewDetector(testRules())

	doc := testDocument("register.docx",
		"Register of Members and Directors",
		"Jurisdiction: Abu Dhabi Global Market",
		"Signatories: Adam Smith")

	assert.Empty(t, d.Scan(doc))
}

// TestDetector_Deterministic: repeated scans of the same document
// return the same issues in the same order.
func TestDetector_Deterministic(t *testing.T) {
	d := NewDetector(testRules())

	build := func() *domain.Document {
		return testDocument("articles.docx",
			"The UAE Federal Court shall govern.",
			"Best efforts only.",
			"No signing block here.")
	}

	first := d.Scan(build())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, d.Scan(build()))
	}
}
