package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docketry-labs/docketry-cli/internal/core/domain"
)

func TestSnippetStore_All_PreservesOrder(t *testing.T) {
	store := NewSnippetStore([]domain.SnippetEntry{
		{Label: "B", Body: "second"},
		{Label: "A", Body: "first"},
	})

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, "B", all[0].Label)
	assert.Equal(t, "A", all[1].Label)
}

func TestSnippetStore_ByLabel_FirstOccurrenceWins(t *testing.T) {
	store := NewSnippetStore([]domain.SnippetEntry{
		{Label: "ADGM Courts", Body: "first body"},
		{Label: "ADGM Courts", Body: "second body"},
	})

	entry, ok := store.ByLabel("ADGM Courts")
	require.True(t, ok)
	assert.Equal(t, "first body", entry.Body)
}

func TestSnippetStore_ByLabel_Missing(t *testing.T) {
	store := NewSnippetStore(nil)
	_, ok := store.ByLabel("nope")
	assert.False(t, ok)
}

func TestRuleStore_UnknownProcess(t *testing.T) {
	store := NewRuleStore()
	_, err := store.Checklist("not-configured")
	assert.ErrorIs(t, err, domain.ErrUnknownProcess)
}
