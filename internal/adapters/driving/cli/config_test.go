package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docketry-labs/docketry-cli/internal/adapters/driven/config/file"
)

func testConfigStore(t *testing.T) *file.ConfigStore {
	t.Helper()
	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestConfigCmd_NoStoreConfigured(t *testing.T) {
	withServices(t, Dependencies{})

	_, err := execute(t, "config", "get", "ai.provider")
	assert.ErrorContains(t, err, "config store not configured")
}

func TestConfigCmd_SetAndGet(t *testing.T) {
	withServices(t, Dependencies{Config: testConfigStore(t)})

	out, err := execute(t, "config", "set", "ai.provider", "groq")
	require.NoError(t, err)
	assert.Contains(t, out, "Set ai.provider")

	out, err = execute(t, "config", "get", "ai.provider")
	require.NoError(t, err)
	assert.Contains(t, out, "groq")
}

func TestConfigCmd_GetUnsetKey(t *testing.T) {
	withServices(t, Dependencies{Config: testConfigStore(t)})

	_, err := execute(t, "config", "get", "no.such.key")
	assert.ErrorContains(t, err, "not set")
}
