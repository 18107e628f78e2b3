package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.Database.PostgresAutoMigrate)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 8, cfg.Debounce.DefaultSeconds)
	assert.Equal(t, 15, cfg.Debounce.MaxSeconds)
	assert.Equal(t, 20, cfg.SLA.AckDeadlineSeconds)
	assert.Equal(t, 300, cfg.SLA.UrgentResponseSeconds)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://user:pass@db:5432/supportdesk")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("SECRET_KEY", "supersecret")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "postgres://user:pass@db:5432/supportdesk", cfg.Database.PostgresDSN)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "redis:6380", cfg.Redis.Addr)
	assert.Equal(t, "supersecret", cfg.SecretKey)
}
