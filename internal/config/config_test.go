package config

import (
	"strings"
	"testing"
	"time"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", strings.Repeat("s", 32))
	t.Setenv("ENV", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("DB_TIMEOUT", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("PORT", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("APP_VERSION", "")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASS", "pw")
	t.Setenv("DB_NAME", "dashboards")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %q", cfg.Port)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("Expected default TTL 24h, got %s", cfg.TokenTTL)
	}
	if cfg.CORSOrigins != "http://localhost:3000" {
		t.Errorf("Expected default CORS origin, got %q", cfg.CORSOrigins)
	}
	if cfg.DBTimeout != 5*time.Second {
		t.Errorf("Expected default DB timeout 5s, got %s", cfg.DBTimeout)
	}
	dsn := cfg.DSN()
	if !strings.Contains(dsn, "app:pw@tcp(127.0.0.1:3306)/dashboards") || !strings.Contains(dsn, "parseTime=true") {
		t.Errorf("Unexpected DSN: %q", dsn)
	}
}

func TestLoadOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("DB_TIMEOUT", "2s")
	t.Setenv("CORS_ORIGINS", "https://painel.example.com")
	t.Setenv("APP_VERSION", "1.2.3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.TokenTTL != 90*time.Minute {
		t.Errorf("Expected TTL 90m, got %s", cfg.TokenTTL)
	}
	if cfg.DBTimeout != 2*time.Second {
		t.Errorf("Expected DB timeout 2s, got %s", cfg.DBTimeout)
	}
	if cfg.CORSOrigins != "https://painel.example.com" {
		t.Errorf("Expected overridden CORS origins, got %q", cfg.CORSOrigins)
	}
	if cfg.Version != "1.2.3" {
		t.Errorf("Expected version '1.2.3', got %q", cfg.Version)
	}
}

func TestLoadInvalidTTLFallsBack(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_TTL", "not-a-duration")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("Expected fallback TTL 24h, got %s", cfg.TokenTTL)
	}
}

func TestLoadShortSecretRejected(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_SECRET", "too-short")

	if _, err := Load(); err == nil {
		t.Error("Expected error for short JWT secret")
	}
}

func TestLoadProductionRequiresSecret(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ENV", "production")

	if _, err := Load(); err == nil {
		t.Error("Expected error when JWT_SECRET is unset in production")
	}
}
