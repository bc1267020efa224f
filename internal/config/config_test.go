package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 168*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, "@every 1h", cfg.Jobs.TokenPurgeSchedule)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://carwash@localhost/carwash")
	t.Setenv("ACCESS_TOKEN_TTL", "5m")
	t.Setenv("LOGIN_BURST", "3")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("SEED_ADMIN_CEDULA", "1020304050")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "postgres://carwash@localhost/carwash", cfg.DB.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 3, cfg.Auth.LoginBurst)
	assert.Equal(t, int64(1020304050), cfg.Seed.AdminCedula)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unsupported driver", key: "DB_DRIVER", value: "sqlite"},
		{name: "zero access ttl", key: "ACCESS_TOKEN_TTL", value: "0s"},
		{name: "unparsable ttl", key: "REFRESH_TOKEN_TTL", value: "a week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
