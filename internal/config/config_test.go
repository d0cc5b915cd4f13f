package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SEARCH_API_URL", "http://search")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("ACQUISITION_MODE", "simulation")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("RATE_LIMIT_HUNT", "10/min")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" || cfg.SearchBaseURL != "http://search" {
		t.Fatalf("unexpected config values: %+v", cfg)
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Fatalf("unexpected gemini key: %s", cfg.GeminiAPIKey)
	}
	if cfg.AcquisitionMode != ModeSimulation {
		t.Fatalf("expected simulation mode, got %s", cfg.AcquisitionMode)
	}
	if cfg.TokenTTL != 2*time.Hour {
		t.Fatalf("expected token ttl 2h, got %s", cfg.TokenTTL)
	}
	if cfg.RateLimitHunt.Requests != 10 || cfg.RateLimitHunt.Interval != time.Minute {
		t.Fatalf("unexpected rate limit config: %+v", cfg.RateLimitHunt)
	}

	// invalid acquisition mode should error
	t.Setenv("ACQUISITION_MODE", "turbo")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid acquisition mode")
	}

	t.Setenv("ACQUISITION_MODE", "real")
	t.Setenv("RATE_LIMIT_HUNT", "xyz")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid rate limit")
	}
}

func TestGeminiKeyFallback(t *testing.T) {
	os.Unsetenv("GEMINI_API_KEY")
	t.Setenv("API_KEY", "legacy-key")
	t.Setenv("RATE_LIMIT_HUNT", "5/min")
	t.Setenv("ACQUISITION_MODE", "real")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GeminiAPIKey != "legacy-key" {
		t.Fatalf("expected API_KEY fallback, got %q", cfg.GeminiAPIKey)
	}
}

func TestParseRateLimit(t *testing.T) {
	cfg, err := parseRateLimit("5/sec")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Requests != 5 || cfg.Interval != time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	if _, err := parseRateLimit("bad-format"); err == nil {
		t.Fatalf("expected error for malformed value")
	}
	if _, err := parseRateLimit("0/min"); err == nil {
		t.Fatalf("expected error for zero requests")
	}
	if _, err := parseRateLimit("5/day"); err == nil {
		t.Fatalf("expected error for unsupported unit")
	}
}

func TestGetEnv(t *testing.T) {
	os.Unsetenv("FOO")
	if val := getEnv("FOO", "fallback"); val != "fallback" {
		t.Fatalf("expected fallback, got %s", val)
	}
	t.Setenv("FOO", "value")
	if val := getEnv("FOO", "fallback"); val != "value" {
		t.Fatalf("expected env value, got %s", val)
	}
}

func TestParseBool(t *testing.T) {
	if !parseBool("true") || parseBool("false") {
		t.Fatalf("unexpected bool parsing")
	}
	if !parseBool("not-a-bool") {
		t.Fatalf("expected fallback true for invalid input")
	}
}
