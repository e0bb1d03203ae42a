package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EngineURL != "http://localhost:8090" {
		t.Errorf("unexpected default engine URL: %q", cfg.EngineURL)
	}
	if cfg.EngineTimeout != 30*time.Second {
		t.Errorf("unexpected default engine timeout: %v", cfg.EngineTimeout)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("unexpected default listen addr: %q", cfg.ListenAddr)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WALLPLAN_ENGINE_URL", "https://engine.example.com")
	t.Setenv("WALLPLAN_ENGINE_TIMEOUT", "5s")
	t.Setenv("WALLPLAN_REDIS_DB", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EngineURL != "https://engine.example.com" {
		t.Errorf("engine URL not read from env: %q", cfg.EngineURL)
	}
	if cfg.EngineTimeout != 5*time.Second {
		t.Errorf("engine timeout not read from env: %v", cfg.EngineTimeout)
	}
	if cfg.RedisDB != 3 {
		t.Errorf("redis db not read from env: %d", cfg.RedisDB)
	}
}
