package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, DBDriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "turnos.db", cfg.DB.SQLitePath)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:5174"}, cfg.App.CORSAllowedOrigins)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DB_NAME", "turnos")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://turnos.example.com , ")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, DBDriverPostgres, cfg.DB.Driver)
	assert.Equal(t, "turnos", cfg.DB.Name)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.Equal(t, []string{"https://turnos.example.com"}, cfg.App.CORSAllowedOrigins)
}

func TestLoadConfig_UnusableCacheTTLFallsBackToAMinute(t *testing.T) {
	for _, ttl := range []string{"soon", "0s", "-5m"} {
		t.Run(ttl, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv("CACHE_TTL", ttl)

			cfg, err := LoadConfig()
			require.NoError(t, err)
			assert.Equal(t, time.Minute, cfg.Redis.CacheTTL)
		})
	}
}

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "mysql")

	_, err := LoadConfig()
	assert.Error(t, err)
}
