package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docketry-labs/docketry-cli/internal/adapters/driven/storage/memory"
	"github.com/docketry-labs/docketry-cli/internal/core/domain"
)

func testRuleStore() *memory.RuleStore {
	rules := memory.NewRuleStore()
	rules.Checklists[domain.ProcessIncorporation] = []domain.DocumentType{
		domain.TypeArticlesOfAssociation,
		domain.TypeMemorandumOfAssociation,
	}
	return rules
}

func TestChecklistCmd_Use(t *testing.T) {
	assert.Equal(t, "checklist [process]", checklistCmd.Use)
}

func TestChecklistCmd_NoStoreConfigured(t *testing.T) {
	withServices(t, Dependencies{})

	_, err := execute(t, "checklist")
	assert.ErrorContains(t, err, "rule store not configured")
}

func TestChecklistCmd_ListsAllProcesses(t *testing.T) {
	withServices(t, Dependencies{Rules: testRuleStore()})

	out, err := execute(t, "checklist")

	require.NoError(t, err)
	assert.Contains(t, out, "Company Incorporation")
	assert.Contains(t, out, "Articles of Association")
	assert.Contains(t, out, "Memorandum of Association")
}

func TestChecklistCmd_SpecificProcess(t *testing.T) {
	withServices(t, Dependencies{Rules: testRuleStore()})

	out, err := execute(t, "checklist", "company-incorporation")

	require.NoError(t, err)
	assert.Contains(t, out, "Articles of Association")
}

func TestChecklistCmd_UnknownProcess(t *testing.T) {
	withServices(t, Dependencies{Rules: testRuleStore()})

	_, err := execute(t, "checklist", "company-liquidation")
	assert.ErrorIs(t, err, domain.ErrUnknownProcess)
}
