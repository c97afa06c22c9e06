package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, defaultFinancesURL, cfg.Finances.BaseURL)
	assert.Equal(t, defaultRegistryURL, cfg.Registry.BaseURL)
	assert.Equal(t, 25*time.Second, cfg.Registry.Timeout)
	assert.Equal(t, 3, cfg.Contracts.Concurrency)
	assert.Equal(t, 20, cfg.Paging.DefaultLimit)
	assert.Equal(t, 100, cfg.Paging.MaxLimit)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("REGISTRY_API_KEY", "reg-key")
	t.Setenv("REGISTRY_API_URL", "http://registry.test")
	t.Setenv("FINANCES_TIMEOUT", "3s")
	t.Setenv("CONTRACTS_CONCURRENCY", "6")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "reg-key", cfg.Registry.APIKey)
	assert.Equal(t, "http://registry.test", cfg.Registry.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Finances.Timeout)
	assert.Equal(t, 6, cfg.Contracts.Concurrency)
}

func TestFromEnvRejectsInvalid(t *testing.T) {
	t.Setenv("CONTRACTS_CONCURRENCY", "0")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestLoadReadsDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("KONTROLA_TEST_DOTENV_ADDR=:9999\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("KONTROLA_TEST_DOTENV_ADDR") })

	_, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", os.Getenv("KONTROLA_TEST_DOTENV_ADDR"))
}
