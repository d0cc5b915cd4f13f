package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Acquisition modes for the lead hunt workflow.
const (
	ModeReal       = "real"
	ModeSimulation = "simulation"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	Port               string
	SearchBaseURL      string
	GeminiAPIKey       string
	GeminiModel        string
	GeminiBaseURL      string
	AcquisitionMode    string
	Narration          bool
	JWTSecret          string
	TokenTTL           time.Duration
	OperatorEmail      string
	OperatorPassword   string
	DefaultPhoneRegion string
	RateLimitHunt      RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		SearchBaseURL:      getEnv("SEARCH_API_URL", "http://localhost:8000/api"),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", os.Getenv("API_KEY")),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL:      getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		AcquisitionMode:    strings.ToLower(getEnv("ACQUISITION_MODE", ModeReal)),
		Narration:          parseBool(getEnv("HUNT_NARRATION", "true")),
		JWTSecret:          getEnv("JWT_SECRET", "dev-secret"),
		TokenTTL:           parseDuration(getEnv("JWT_TTL", "24h")),
		OperatorEmail:      getEnv("OPERATOR_EMAIL", "operator@huntflow.local"),
		OperatorPassword:   getEnv("OPERATOR_PASSWORD", "huntflow"),
		DefaultPhoneRegion: getEnv("PHONE_REGION", "US"),
	}

	if cfg.AcquisitionMode != ModeReal && cfg.AcquisitionMode != ModeSimulation {
		return nil, fmt.Errorf("invalid ACQUISITION_MODE value: %q", cfg.AcquisitionMode)
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_HUNT", "5/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_HUNT value: %w", err)
	}
	cfg.RateLimitHunt = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}

func parseBool(input string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(input))
	if err != nil {
		return true
	}
	return b
}
