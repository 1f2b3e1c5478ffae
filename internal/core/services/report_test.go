package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
)

func TestBuildReport_Clean(t *testing.T) {
	reviews := []domain.DocumentReview{
		{Filename: "articles.docx", Type: domain.TypeArticlesOfAssociation},
	}
	checklist := domain.ChecklistResult{
		Process: domain.ProcessIncorporation,
		Present: []domain.DocumentType{domain.TypeArticlesOfAssociation},
	}

	report := BuildReport(domain.ProcessIncorporation, reviews, checklist, false)

	assert.Equal(t, domain.VerdictClean, report.Verdict)
	assert.Empty(t, report.Issues)
	assert.NotEmpty(t, report.ID)
	assert.False(t, report.AIUsed)
}

func TestBuildReport_Flagged(t *testing.T) {
	reviews := []domain.DocumentReview{
		{
			Filename: "articles.docx",
			Type:     domain.TypeArticlesOfAssociation,
			Issues:   []domain.Issue{{Category: domain.CategoryJurisdiction, Severity: domain.SeverityHigh}},
		},
	}
	checklist := domain.ChecklistResult{Process: domain.ProcessIncorporation}

	report := BuildReport(domain.ProcessIncorporation, reviews, checklist, true)

	assert.Equal(t, domain.VerdictFlagged, report.Verdict)
	assert.True(t, report.AIUsed)
}

// TestBuildReport_IncompleteWinsOverSeverity: one missing required
// document makes the verdict incomplete regardless of issue severities.
func TestBuildReport_IncompleteWinsOverSeverity(t *testing.T) {
	reviews := []domain.DocumentReview{
		{
			Filename: "articles.docx",
			Issues:   []domain.Issue{{Category: domain.CategoryJurisdiction, Severity: domain.SeverityHigh}},
		},
	}
	checklist := domain.ChecklistResult{
		Process: domain.ProcessIncorporation,
		Missing: []domain.DocumentType{domain.TypeMemorandumOfAssociation},
	}

	report := BuildReport(domain.ProcessIncorporation, reviews, checklist, false)

	assert.Equal(t, domain.VerdictIncomplete, report.Verdict)

	// Document issues come first, then the batch-level missing-document
	// issue.
	require.Len(t, report.Issues, 2)
	assert.Equal(t, domain.CategoryJurisdiction, report.Issues[0].Category)
	assert.Equal(t, domain.CategoryMissingDocument, report.Issues[1].Category)
}

func TestBuildReport_MediumOnlyIsClean(t *testing.T) {
	reviews := []domain.DocumentReview{
		{
			Filename: "memo.docx",
			Issues:   []domain.Issue{{Category: domain.CategoryAmbiguous, Severity: domain.SeverityMedium}},
		},
	}
	checklist := domain.ChecklistResult{Process: domain.ProcessIncorporation}

	report := BuildReport(domain.ProcessIncorporation, reviews, checklist, false)
	assert.Equal(t, domain.VerdictClean, report.Verdict)
}
