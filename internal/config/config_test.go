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

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "http://localhost:8080", cfg.PublicBaseURL)
	assert.Equal(t, "kafka", cfg.MailerDriver)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, time.Duration(0), cfg.SessionTTL)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.False(t, cfg.CookieSecure)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("MAILER_DRIVER", "log")
	t.Setenv("SESSION_TTL", "24h")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.Equal(t, "log", cfg.MailerDriver)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "99999")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid HTTP port")
}

func TestLoad_InvalidMailerDriver(t *testing.T) {
	t.Setenv("MAILER_DRIVER", "carrier-pigeon")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid mailer driver")
}

func TestLoad_ProductionRequiresSecureCookies(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	_, err := Load()
	assert.ErrorContains(t, err, "COOKIE_SECURE")

	t.Setenv("COOKIE_SECURE", "true")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.CookieSecure)
}
