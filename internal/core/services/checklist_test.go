package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
)

func TestChecklistEvaluator_AllPresent(t *testing.T) {
	e := NewChecklistEvaluator(testRules())

	result, err := e.Evaluate(domain.ProcessIncorporation, []domain.DocumentType{
		domain.TypeArticlesOfAssociation,
		domain.TypeMemorandumOfAssociation,
		domain.TypeRegisterOfMembers,
		domain.TypeBoardResolution, // extra, not required
	})
	require.NoError(t, err)

	assert.True(t, result.Complete())
	assert.Len(t, result.Present, 3)
	assert.Empty(t, result.Missing)
}

// TestChecklistEvaluator_DuplicatesCountOnce covers uploading the same
// document twice: the duplicate must not satisfy two requirements.
func TestChecklistEvaluator_DuplicatesCountOnce(t *testing.T) {
	e := NewChecklistEvaluator(testRules())

	result, err := e.Evaluate(domain.ProcessIncorporation, []domain.DocumentType{
		domain.TypeArticlesOfAssociation,
		domain.TypeArticlesOfAssociation,
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.DocumentType{domain.TypeArticlesOfAssociation}, result.Present)
	assert.Equal(t, []domain.DocumentType{
		domain.TypeMemorandumOfAssociation,
		domain.TypeRegisterOfMembers,
	}, result.Missing)
}

func TestChecklistEvaluator_UnknownTypesIgnored(t *testing.T) {
	e := NewChecklistEvaluator(testRules())

	result, err := e.Evaluate(domain.ProcessIncorporation, []domain.DocumentType{
		domain.TypeUnknown,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Present)
	assert.Len(t, result.Missing, 3)
}

func TestChecklistEvaluator_UnrecognisedProcess(t *testing.T) {
	e := NewChecklistEvaluator(testRules())

	_, err := e.Evaluate("company-dissolution", nil)
	assert.ErrorIs(t, err, domain.ErrUnknownProcess)
}

func TestMissingIssues(t *testing.T) {
	issues := MissingIssues(domain.ChecklistResult{
		Process: domain.ProcessIncorporation,
		Missing: []domain.DocumentType{domain.TypeUBODeclaration},
	})

	require.Len(t, issues, 1)
	assert.Equal(t, domain.CategoryMissingDocument, issues[0].Category)
	assert.Equal(t, domain.SeverityHigh, issues[0].Severity)
	assert.Contains(t, issues[0].Title, "UBO Declaration Form")
}
