// Package backend opens the storage.Slot selected by the configuration.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/creditline/internal/config"
	"github.com/mmynk/creditline/internal/storage"
	"github.com/mmynk/creditline/internal/storage/memory"
	"github.com/mmynk/creditline/internal/storage/redis"
	"github.com/mmynk/creditline/internal/storage/sqlite"
)

// Open returns the slot for cfg.StorageBackend. The caller closes it.
func Open(ctx context.Context, cfg config.Config) (storage.Slot, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		slot, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		slog.Info("Storage initialized", "backend", cfg.StorageBackend, "database", cfg.DBPath)
		return slot, nil
	case config.BackendRedis:
		slot, err := redis.New(ctx, cfg.RedisAddr, cfg.RedisPrefix)
		if err != nil {
			return nil, err
		}
		slog.Info("Storage initialized", "backend", cfg.StorageBackend, "addr", cfg.RedisAddr, "prefix", cfg.RedisPrefix)
		return slot, nil
	case config.BackendMemory:
		slog.Warn("Storage initialized in memory; data is lost on exit", "backend", cfg.StorageBackend)
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
