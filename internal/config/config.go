package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// Config holds every process-wide setting. It is built once at startup and
// passed to the components that need it; nothing reads env vars after Load.
type Config struct {
	Port string

	// Reported by the health endpoint; empty when unset.
	Version string

	JWTSecret []byte
	TokenTTL  time.Duration

	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string

	// Comma-separated list of allowed CORS origins.
	CORSOrigins string

	// Upper bound for any single storage operation.
	DBTimeout time.Duration
}

const (
	defaultTokenTTL  = 24 * time.Hour
	defaultDBTimeout = 5 * time.Second
	minSecretLen     = 32
)

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        envOr("PORT", "8080"),
		Version:     os.Getenv("APP_VERSION"),
		TokenTTL:    defaultTokenTTL,
		DBUser:      os.Getenv("DB_USER"),
		DBPass:      os.Getenv("DB_PASS"),
		DBHost:      envOr("DB_HOST", "127.0.0.1"),
		DBPort:      envOr("DB_PORT", "3306"),
		DBName:      os.Getenv("DB_NAME"),
		CORSOrigins: envOr("CORS_ORIGINS", "http://localhost:3000"),
		DBTimeout:   defaultDBTimeout,
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if isProduction() {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("⚠️ WARNING: Using default JWT secret (development only)")
		secret = "dev-secret-change-me-before-deploying"
	}
	if len(secret) < minSecretLen {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d characters long (current: %d)", minSecretLen, len(secret))
	}
	cfg.JWTSecret = []byte(secret)

	if ttl := os.Getenv("JWT_TTL"); ttl != "" {
		dur, err := time.ParseDuration(ttl)
		if err != nil || dur <= 0 {
			log.Printf("invalid JWT_TTL=%q, using default %s", ttl, defaultTokenTTL)
		} else {
			cfg.TokenTTL = dur
		}
	}

	if timeout := os.Getenv("DB_TIMEOUT"); timeout != "" {
		dur, err := time.ParseDuration(timeout)
		if err != nil || dur <= 0 {
			log.Printf("invalid DB_TIMEOUT=%q, using default %s", timeout, defaultDBTimeout)
		} else {
			cfg.DBTimeout = dur
		}
	}

	return cfg, nil
}

// DSN builds the MariaDB connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4,utf8",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

func isProduction() bool {
	env := os.Getenv("ENV")
	if env == "" {
		env = os.Getenv("ENVIRONMENT")
	}
	return strings.EqualFold(env, "production")
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
