package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_FullSet(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "production")
	t.Setenv("APP_HCAPTCHA_SECRET_KEY", "0xsecret")
	t.Setenv("APP_VERSION", "2.1.0")
	t.Setenv("STORAGE_DB_HOST", "db.internal")
	t.Setenv("STORAGE_DB_PORT", "6432")
	t.Setenv("STORAGE_DB_NAME", "portfolio")
	t.Setenv("STORAGE_DB_USER", "api")
	t.Setenv("STORAGE_DB_PASSWORD", "hunter2")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8080")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("SERVER_CORS_ORIGIN", "https://example.com")
	t.Setenv("CONFIG", "/etc/portfolio/config.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "0xsecret", cfg.App.HCaptchaSecret)
	assert.Equal(t, "2.1.0", cfg.App.Version)
	assert.Equal(t, "db.internal", cfg.Storage.DB.Host)
	assert.Equal(t, 6432, cfg.Storage.DB.Port)
	assert.Equal(t, "portfolio", cfg.Storage.DB.Database)
	assert.Equal(t, "api", cfg.Storage.DB.User)
	assert.Equal(t, "hunter2", cfg.Storage.DB.Password)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://example.com", cfg.Server.CORSOrigin)
	assert.Equal(t, "/etc/portfolio/config.json", cfg.JSONFilePath)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Zero(t, cfg.App.Environment)
	assert.Zero(t, cfg.Storage.DB.Port)
	assert.Zero(t, cfg.Server.RequestTimeout)
}

func TestParseEnv_InvalidPort(t *testing.T) {
	t.Setenv("STORAGE_DB_PORT", "not-a-number")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	assert.Error(t, err)
}
