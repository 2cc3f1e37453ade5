package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_EmbeddedDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := InitConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.HTTPPort)
	assert.Equal(t, 60*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "localhost", cfg.Repositories.Postgres.Host)
	assert.Equal(t, "disable", cfg.Repositories.Postgres.SSLMode)
	assert.Equal(t, int32(10), cfg.Repositories.Postgres.MaxConns)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestInitConfig_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/sw")
	t.Setenv("PORT", "8080")

	cfg, err := InitConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/sw", cfg.Repositories.Postgres.URL)
	assert.Equal(t, "8080", cfg.Server.HTTPPort)
}
