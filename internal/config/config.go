// Package config loads runtime configuration from WALLPLAN_* environment
// variables. File-backed preferences live in the project package; this
// package only covers process-level settings such as service endpoints.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds process-level settings for the CLI and API server.
type Config struct {
	// Packing engine service.
	EngineURL     string        `env:"WALLPLAN_ENGINE_URL"     envDefault:"http://localhost:8090"`
	EngineToken   string        `env:"WALLPLAN_ENGINE_TOKEN"`
	EngineSecret  string        `env:"WALLPLAN_ENGINE_SECRET"`
	EngineTimeout time.Duration `env:"WALLPLAN_ENGINE_TIMEOUT" envDefault:"30s"`

	// Response cache for engine lookups.
	CacheDir string        `env:"WALLPLAN_CACHE_DIR"`
	CacheTTL time.Duration `env:"WALLPLAN_CACHE_TTL" envDefault:"24h"`

	// HTTP API server.
	ListenAddr string `env:"WALLPLAN_LISTEN_ADDR" envDefault:":8080"`

	// Project storage backends.
	SQLitePath string `env:"WALLPLAN_SQLITE_PATH"`
	RedisAddr  string `env:"WALLPLAN_REDIS_ADDR"`
	RedisDB    int    `env:"WALLPLAN_REDIS_DB"   envDefault:"0"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
