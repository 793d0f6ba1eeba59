package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7008", cfg.Port)
	assert.Equal(t, 4, cfg.DefaultTeamSize)
	assert.Equal(t, "hackathon_registration", cfg.DatabaseName)
	assert.Contains(t, cfg.DatabaseURL, "/hackathon_registration?sslmode=disable")
	assert.False(t, cfg.EventsEnabled())
	assert.False(t, cfg.DBSkipMigrate)
	assert.Equal(t, 2*time.Second, cfg.NATSReconnectWait())
	assert.Equal(t, 5*time.Second, cfg.NATSTimeout())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/events?sslmode=require")
	t.Setenv("NATS_URL", "nats://localhost:4222")
	t.Setenv("DEFAULT_TEAM_SIZE", "3")
	t.Setenv("DB_SKIP_MIGRATE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://u:p@db:5432/events?sslmode=require", cfg.DatabaseURL)
	assert.True(t, cfg.EventsEnabled())
	assert.Equal(t, 3, cfg.DefaultTeamSize)
	assert.True(t, cfg.DBSkipMigrate)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Environment:     "development",
			DatabaseName:    "hackathon_registration",
			JWTSecret:       defaultJWTSecret,
			DefaultTeamSize: 4,
		}
	}

	t.Run("valid development config", func(t *testing.T) {
		assert.NoError(t, validate(base()))
	})

	t.Run("default secret in production", func(t *testing.T) {
		cfg := base()
		cfg.Environment = "production"
		err := validate(cfg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("missing database name", func(t *testing.T) {
		cfg := base()
		cfg.DatabaseName = ""
		assert.Error(t, validate(cfg))
	})

	t.Run("non-positive team size", func(t *testing.T) {
		cfg := base()
		cfg.DefaultTeamSize = 0
		assert.Error(t, validate(cfg))
	})
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := &Config{Environment: "production"}
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}
