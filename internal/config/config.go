// internal/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const defaultSessionSecret = "your-session-secret-change-in-production"

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	Server      ServerConfig
	Database    DatabaseConfig
	Session     SessionConfig
	Storage     StorageConfig
	CORS        CORSConfig
	Seed        SeedConfig
	RateLimit   RateLimitConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8080"`
	Host         string        `envconfig:"SERVER_HOST" default:"localhost"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout  time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
}

type DatabaseConfig struct {
	Host         string        `envconfig:"DB_HOST" default:"localhost"`
	Port         string        `envconfig:"DB_PORT" default:"5432"`
	User         string        `envconfig:"DB_USER" default:"postgres"`
	Password     string        `envconfig:"DB_PASSWORD"`
	Database     string        `envconfig:"DB_NAME" default:"storefront"`
	SSLMode      string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns int           `envconfig:"DB_MAX_IDLE_CONNS" default:"25"`
	MaxLifetime  time.Duration `envconfig:"DB_MAX_LIFETIME" default:"5m"`
	LogLevel     string        `envconfig:"DB_LOG_LEVEL" default:"warn"`
}

type SessionConfig struct {
	Secret     string        `envconfig:"SESSION_SECRET" default:"your-session-secret-change-in-production"`
	TTL        time.Duration `envconfig:"SESSION_TTL" default:"168h"`
	CookieName string        `envconfig:"SESSION_COOKIE_NAME" default:"session_token"`
	Issuer     string        `envconfig:"SESSION_ISSUER" default:"automation-storefront"`
}

type StorageConfig struct {
	Region          string        `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID     string        `envconfig:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string        `envconfig:"AWS_SECRET_ACCESS_KEY"`
	S3Bucket        string        `envconfig:"AWS_S3_BUCKET" default:"storefront-resources"`
	PresignTTL      time.Duration `envconfig:"RESOURCE_URL_TTL" default:"15m"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type SeedConfig struct {
	EndpointEnabled *bool `envconfig:"SEED_ENDPOINT_ENABLED"`
	OnStartup       bool  `envconfig:"SEED_ON_STARTUP" default:"false"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `envconfig:"RATE_LIMIT_RPS" default:"10"`
	Burst             int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &config, config.Validate()
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// SeedEndpointEnabled reports whether POST /v1/seed is mounted. Without an
// explicit SEED_ENDPOINT_ENABLED it is on everywhere except production.
func (c *Config) SeedEndpointEnabled() bool {
	if c.Seed.EndpointEnabled != nil {
		return *c.Seed.EndpointEnabled
	}
	return !c.IsProduction()
}

func (c *Config) Validate() error {
	if c.IsProduction() {
		if c.Session.Secret == defaultSessionSecret {
			return fmt.Errorf("session secret must be changed in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("database password is required in production")
		}
	}

	if len(c.Session.Secret) < 16 {
		return fmt.Errorf("session secret must be at least 16 characters")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session ttl must be positive")
	}
	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit must allow at least one request")
	}

	return nil
}
