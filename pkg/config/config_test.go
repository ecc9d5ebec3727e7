package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "environment: test\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("unexpected port %d", cfg.Server.Port)
	}
	if cfg.Provider.Mode != "mock" {
		t.Fatalf("unexpected mode %q", cfg.Provider.Mode)
	}
	if cfg.Cache.SeriesTTL != time.Hour {
		t.Fatalf("unexpected series ttl %v", cfg.Cache.SeriesTTL)
	}
	if cfg.Throttle.SearchWindow != 15*time.Second {
		t.Fatalf("unexpected search window %v", cfg.Throttle.SearchWindow)
	}
}

func TestLoadMissingEnvironment(t *testing.T) {
	if _, err := Load(writeConfig(t, "server:\n  port: 9000\n")); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadInvalidProviderMode(t *testing.T) {
	if _, err := Load(writeConfig(t, "environment: test\nprovider:\n  mode: yahoo\n")); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadAlphaVantageRequiresKey(t *testing.T) {
	content := "environment: test\nprovider:\n  mode: alphavantage\n"
	if _, err := Load(writeConfig(t, content)); err == nil {
		t.Fatalf("expected validation error without api key")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("PROVIDER_MODE", "alphavantage")
	t.Setenv("ALPHA_VANTAGE_API_KEY", "demo")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")

	cfg, err := LoadWithEnv(writeConfig(t, "environment: test\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider.Mode != "alphavantage" || cfg.Provider.APIKey != "demo" {
		t.Fatalf("env overrides not applied: %+v", cfg.Provider)
	}
	if !cfg.Cache.Redis.Enabled || cfg.Cache.Redis.Host != "redis.internal" || cfg.Cache.Redis.Port != 6380 {
		t.Fatalf("redis override not applied: %+v", cfg.Cache.Redis)
	}
}
