package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// Config holds server configuration read from the environment
type Config struct {
	Host string `env:"HOST" envDefault:""`
	Port int    `env:"PORT" envDefault:"8080"`

	// StorageType selects the storage backend: memory, redis, or sqlite
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"data/sessiontrack.db"`

	// CatalogPath is the icon and achievement seed file
	CatalogPath string `env:"CATALOG_PATH" envDefault:"data/catalog.json"`
}

// Load reads configuration from a .env file (if present) and the environment
func Load() (*Config, error) {
	// A missing .env file is fine; real environments set variables directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	switch cfg.StorageType {
	case StorageTypeMemory, StorageTypeRedis, StorageTypeSQLite:
	default:
		return nil, fmt.Errorf("invalid STORAGE_TYPE %q: must be memory, redis, or sqlite", cfg.StorageType)
	}

	if cfg.StorageType == StorageTypeRedis && cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL required when STORAGE_TYPE=redis")
	}

	return cfg, nil
}
