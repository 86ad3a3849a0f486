package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCmd_SetAndGet(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "config", "set", "api.base_url", "https://shop.example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Set api.base_url")

	out, err = execute(t, "config", "get", "api.base_url")
	require.NoError(t, err)
	assert.Contains(t, out, "https://shop.example.com")
}

func TestConfigCmd_GetUnsetKeyFails(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	_, err := execute(t, "config", "get", "api.base_url")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not set")
}

func TestConfigCmd_Path(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "config", "path")

	require.NoError(t, err)
	assert.Contains(t, out, "config.toml")
}

func TestCoerceValue(t *testing.T) {
	assert.Equal(t, true, coerceValue("true"))
	assert.Equal(t, false, coerceValue("false"))
	assert.Equal(t, 300, coerceValue("300"))
	assert.Equal(t, "https://example.com", coerceValue("https://example.com"))
}
