package config

import (
	"os"
	"testing"
	"time"
)

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	original, existed := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset %s: %v", key, err)
	}
	t.Cleanup(func() {
		if !existed {
			_ = os.Unsetenv(key)
			return
		}
		_ = os.Setenv(key, original)
	})
}

func TestDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "SITE_NAME", "PAGE_CACHE_TTL", "ENABLE_METRICS"} {
		unsetEnv(t, key)
	}

	cfg := New()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected default environment to be development")
	}
	if cfg.SiteName != "学习中心" {
		t.Fatalf("unexpected default site name: %q", cfg.SiteName)
	}
	if cfg.PageCacheTTL != time.Hour {
		t.Fatalf("expected default page cache TTL of 1h, got %v", cfg.PageCacheTTL)
	}
	if !cfg.EnableMetrics {
		t.Fatalf("expected metrics to default on")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ENABLE_CACHE", "false")

	cfg := New()
	if cfg.Port != "9090" {
		t.Fatalf("expected port override, got %q", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Fatalf("expected production environment")
	}
	if cfg.EnableCache {
		t.Fatalf("expected cache to be disabled")
	}
}

func TestDurationParsing(t *testing.T) {
	t.Setenv("PAGE_CACHE_TTL", "15m")
	cfg := New()
	if cfg.PageCacheTTL != 15*time.Minute {
		t.Fatalf("expected 15m TTL, got %v", cfg.PageCacheTTL)
	}
}

func TestDurationFallsBackToSeconds(t *testing.T) {
	t.Setenv("PAGE_CACHE_REFRESH", "90")
	cfg := New()
	if cfg.PageCacheRefresh != 90*time.Second {
		t.Fatalf("expected bare number to parse as seconds, got %v", cfg.PageCacheRefresh)
	}
}

func TestInvalidDurationUsesDefault(t *testing.T) {
	t.Setenv("PAGE_CACHE_TTL", "not-a-duration")
	cfg := New()
	if cfg.PageCacheTTL != time.Hour {
		t.Fatalf("expected invalid duration to fall back to default, got %v", cfg.PageCacheTTL)
	}
}
