package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.HTTPPort)
	}
	if cfg.DatabaseMaxConns != 25 {
		t.Errorf("expected 25 max conns, got %d", cfg.DatabaseMaxConns)
	}
	if cfg.SummaryCacheTTL != 30*time.Second {
		t.Errorf("expected 30s summary cache TTL, got %s", cfg.SummaryCacheTTL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected info log level, got %s", cfg.LogLevel)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SUMMARY_CACHE_TTL", "2m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPPort != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.HTTPPort)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug log level, got %s", cfg.LogLevel)
	}
	if cfg.SummaryCacheTTL != 2*time.Minute {
		t.Errorf("expected 2m summary cache TTL, got %s", cfg.SummaryCacheTTL)
	}
}
