package config

import (
	"testing"
)

func TestNewComposesDatabaseURLFromParts(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "office")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "listings")
	t.Setenv("DB_SSLMODE", "require")

	cfg := New()

	want := "host=db.internal port=5433 user=office password=secret dbname=listings sslmode=require"
	if cfg.DatabaseURL != want {
		t.Fatalf("DatabaseURL = %q, want %q", cfg.DatabaseURL, want)
	}
}

func TestNewPrefersExplicitDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "host=primary port=5432 user=u password=p dbname=d sslmode=disable")
	t.Setenv("FALLBACK_DATABASE_URL", "host=standby port=5432 user=u password=p dbname=d sslmode=disable")

	cfg := New()

	if cfg.DatabaseURL != "host=primary port=5432 user=u password=p dbname=d sslmode=disable" {
		t.Fatalf("explicit DATABASE_URL was not used: %q", cfg.DatabaseURL)
	}
	if cfg.FallbackDatabaseURL == "" {
		t.Fatalf("fallback URL not picked up")
	}
}

func TestCORSOriginsSplitAndTrimmed(t *testing.T) {
	t.Setenv("CORS_ORIGINS", " https://office.example.com , https://admin.example.com ,")

	cfg := New()

	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSOrigins)
	}
	if cfg.CORSOrigins[0] != "https://office.example.com" {
		t.Fatalf("origin not trimmed: %q", cfg.CORSOrigins[0])
	}
}

func TestEnvParsersFallBackOnGarbage(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "not-a-number")
	t.Setenv("ENABLE_CACHE", "maybe")
	t.Setenv("NOTIFICATION_RETENTION_DAYS", "")

	cfg := New()

	if cfg.RateLimitRequests != 120 {
		t.Fatalf("expected default rate limit 120, got %d", cfg.RateLimitRequests)
	}
	if !cfg.EnableCache {
		t.Fatalf("expected cache enabled by default on unparseable value")
	}
	if cfg.NotificationRetentionDays != 90 {
		t.Fatalf("expected default retention 90 days, got %d", cfg.NotificationRetentionDays)
	}
}
