package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8000, cfg.HTTPPort)
	assert.Equal(t, StoreBackendFile, cfg.StoreBackend)
	assert.Empty(t, cfg.KafkaBrokers, "publishing is disabled by default")
	assert.False(t, cfg.TracingEnabled)
}

func TestLoad_PostgresBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("POSTGRES_HOST", "db.internal")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreBackendPostgres, cfg.StoreBackend)
	assert.Equal(t, "db.internal", cfg.PostgresHost)
}

func TestLoad_InvalidStoreBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid store backend")
}

func TestLoad_InvalidHTTPPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "0")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid HTTP port")
}

func TestLoad_TracingToggle(t *testing.T) {
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("TRACING_ENDPOINT", "collector:4318")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.TracingEnabled)
	assert.Equal(t, "collector:4318", cfg.TracingEndpoint)
}

func TestLoad_KafkaBrokers(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker-1:9092,broker-2:9092")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.KafkaBrokers)
}

func TestResolveDataDir_Precedence(t *testing.T) {
	t.Setenv("DATA_DIR", "/var/lib/lookkg")
	t.Setenv("KG_DATA_DIR", "/tmp/kg")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/lookkg", cfg.ResolveDataDir(), "DATA_DIR wins")
}

func TestResolveDataDir_LegacyVariables(t *testing.T) {
	t.Setenv("KG_DATA_DIR", "/tmp/kg")
	t.Setenv("STORAGE_DIR", "/tmp/storage")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/kg", cfg.ResolveDataDir(), "KG_DATA_DIR before STORAGE_DIR")
}

func TestResolveDataDir_Default(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "./data", cfg.ResolveDataDir())
}
