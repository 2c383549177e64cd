package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	path := writeConfig(t, "jwt:\n  secret: file-secret\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 168*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10*time.Minute, cfg.OTPTTL)
	assert.Equal(t, 6, cfg.OTPLength)
	assert.Equal(t, "streamsvc", cfg.JWTIssuer)
	assert.Equal(t, "config/rbac_model.conf", cfg.CasbinModelPath)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFile_EnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `
app:
  port: 9000
  environment: development
jwt:
  secret: file-secret
  ttl: 1h
redis:
  addr: file-redis:6379
`)

	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("REDIS_ADDR", "env-redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, "env-redis:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.True(t, cfg.IsProduction())
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing secret", body: "app:\n  port: 8080\n"},
		{name: "bad ttl", body: "jwt:\n  secret: s\n  ttl: soon\n"},
		{name: "bad yaml", body: "jwt: [unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
