// Package config reads the server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Storage backends selectable with STORAGE_BACKEND.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds everything the server needs at startup.
type Config struct {
	Port           int
	StorageBackend string
	DBPath         string
	RedisAddr      string
	RedisPrefix    string
	StaticPath     string
	LogLevel       string
	LogFormat      string
}

// Addr returns the listen address for Port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads the configuration from environment variables, applying
// defaults for unset ones.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if value := strings.TrimSpace(getenv(key)); value != "" {
			return value
		}
		return fallback
	}

	port, err := strconv.Atoi(get("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", getenv("PORT"))
	}

	cfg := Config{
		Port:           port,
		StorageBackend: strings.ToLower(get("STORAGE_BACKEND", BackendSQLite)),
		DBPath:         get("DB_PATH", "./data/creditline.db"),
		RedisAddr:      get("REDIS_ADDR", "localhost:6379"),
		RedisPrefix:    get("REDIS_PREFIX", "creditline:"),
		StaticPath:     get("STATIC_PATH", "../frontend/dist"),
		LogLevel:       strings.ToLower(get("LOG_LEVEL", "info")),
		LogFormat:      strings.ToLower(get("LOG_FORMAT", "text")),
	}

	switch cfg.StorageBackend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		return Config{}, fmt.Errorf("invalid STORAGE_BACKEND %q: want sqlite, redis or memory", cfg.StorageBackend)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("invalid LOG_FORMAT %q: want text or json", cfg.LogFormat)
	}

	return cfg, nil
}
