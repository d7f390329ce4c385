package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.False(t, cfg.Auth.RequireBearer)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "auto", cfg.SMTP.TLSMode)
	assert.Equal(t, time.Hour, cfg.AccessTTL())

	// Fallback inseguro documentado
	assert.True(t, cfg.UsingDefaultSecret())
	assert.Equal(t, DefaultJWTSecret, cfg.JWT.Secret)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("JWT_SECRET_KEY", "super-secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/postjohn")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_FROM", "noreply@example.com")
	t.Setenv("AUTH_REQUIRE_BEARER", "true")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.com, https://b.com")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8088", cfg.Server.Addr)
	assert.Equal(t, "super-secret", cfg.JWT.Secret)
	assert.False(t, cfg.UsingDefaultSecret())
	assert.Equal(t, "postgres://localhost/postjohn", cfg.Storage.DSN)
	assert.Equal(t, 465, cfg.SMTP.Port)
	assert.True(t, cfg.Auth.RequireBearer)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, cfg.Server.CORSAllowedOrigins)

	require.NoError(t, cfg.Validate())
}

func TestLoad_YAMLAndEnvPrecedence(t *testing.T) {
	yml := `
server:
  addr: ":7000"
storage:
  dsn: "postgres://yaml/db"
jwt:
  secret: "yaml-secret"
smtp:
  host: "yaml.smtp"
  from: "yaml@from"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	// Env pisa YAML
	t.Setenv("JWT_SECRET_KEY", "env-secret")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "postgres://yaml/db", cfg.Storage.DSN)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "yaml.smtp", cfg.SMTP.Host)
}

func TestValidate_MissingRequired(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Error(t, cfg.Validate()) // sin DSN ni SMTP

	cfg.Storage.DSN = "postgres://x/y"
	require.Error(t, cfg.Validate()) // falta smtp

	cfg.SMTP.Host = "smtp.example.com"
	cfg.SMTP.From = "noreply@example.com"
	require.NoError(t, cfg.Validate())
}

func TestAccessTTL_InvalidFallsBack(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.JWT.AccessTTL = "nonsense"
	assert.Equal(t, time.Hour, cfg.AccessTTL())
}
