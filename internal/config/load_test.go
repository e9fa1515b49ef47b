package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "cuiconnect_users.txt", cfg.Storage.UsersFile)
	assert.Equal(t, "system_logs.txt", cfg.Storage.AuditFile)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CUICONNECT_STORAGE_USERS_FILE", "/tmp/users.txt")
	t.Setenv("CUICONNECT_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/users.txt", cfg.Storage.UsersFile)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsInvalidLevel(t *testing.T) {
	t.Setenv("CUICONNECT_LOGGING_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
