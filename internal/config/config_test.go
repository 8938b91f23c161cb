package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://localhost/tours")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/tours", cfg.Database.DSN)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "/api", cfg.Server.APIPrefix)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "uploads", cfg.Storage.Bucket)
	assert.False(t, cfg.Storage.Enabled())
}

func TestLoadPrefixedEnvWins(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://plain")
	t.Setenv("TOURCMS_DATABASE_DSN", "postgres://prefixed")
	t.Setenv("PORT", "9000")
	t.Setenv("TOURCMS_SERVER_MODE", "debug")
	t.Setenv("TOURCMS_STORAGE_ENDPOINT", "minio:9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://prefixed", cfg.Database.DSN)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.True(t, cfg.Storage.Enabled())
}

func TestLoadValidates(t *testing.T) {
	t.Setenv("POSTGRES_URL", "")
	t.Setenv("TOURCMS_DATABASE_DSN", "")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("POSTGRES_URL", "postgres://localhost/tours")
	t.Setenv("TOURCMS_SERVER_MODE", "verbose")
	_, err = Load()
	assert.Error(t, err)
}
