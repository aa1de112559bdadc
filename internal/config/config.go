// Package config loads the identity service configuration from the
// environment.
package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/iamdarshshah/devcollective/pkg/config"
)

// Config holds all configuration for the identity service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// PublicBaseURL is the externally reachable origin used to build
	// confirmation links.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`

	// PostgreSQL
	PostgresHost string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser string `env:"POSTGRES_USER" envDefault:"devcollective"`
	PostgresPass string `env:"POSTGRES_PASSWORD" envDefault:"devcollective_secret"`
	PostgresDB   string `env:"POSTGRES_DB" envDefault:"devcollective"`
	PostgresSSL  string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`

	// Redis (session store)
	RedisHost string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort int    `env:"REDIS_PORT" envDefault:"6379"`
	RedisPass string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// SessionTTL of zero keeps sessions until explicit logout.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"0"`

	// Kafka (mail events)
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`

	// MailerDriver selects how confirmation emails leave the service:
	// "kafka" publishes mail events, "log" writes the link to the log.
	MailerDriver string `env:"MAILER_DRIVER" envDefault:"kafka"`

	// BcryptCost applies to password and confirmation token hashing.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"12"`

	// CookieSecure marks the session cookie Secure; required outside
	// development.
	CookieSecure bool `env:"COOKIE_SECURE" envDefault:"false"`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load identity config: %w", err)
	}
	if cfg.HTTPPort < 1 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("invalid HTTP port: %d", cfg.HTTPPort)
	}
	if cfg.MailerDriver != "kafka" && cfg.MailerDriver != "log" {
		return nil, fmt.Errorf("invalid mailer driver: %q", cfg.MailerDriver)
	}

	// Outside development, session cookies must not travel over plain HTTP.
	if cfg.Environment != "development" && !cfg.CookieSecure {
		return nil, fmt.Errorf("COOKIE_SECURE must be true in %q mode", cfg.Environment)
	}

	return cfg, nil
}
