// Package redis provides a Redis-backed implementation of storage.Slot, for
// deployments where several server processes share one ledger.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mmynk/creditline/internal/storage"
)

var _ storage.Slot = (*Slot)(nil)

// Slot stores each collection as a plain Redis string under prefix+key.
type Slot struct {
	rdb    *goredis.Client
	prefix string
}

// New connects to the Redis server at addr and verifies it with a PING.
func New(ctx context.Context, addr, prefix string) (*Slot, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		MaxRetries:   2,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewFromClient(rdb, prefix), nil
}

// NewFromClient wraps an existing client.
func NewFromClient(rdb *goredis.Client, prefix string) *Slot {
	return &Slot{rdb: rdb, prefix: prefix}
}

func (s *Slot) redisKey(key string) string {
	return s.prefix + key
}

// Load returns the value stored under key.
func (s *Slot) Load(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.rdb.Get(ctx, s.redisKey(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, true, nil
}

// Save overwrites the value stored under key. Values never expire.
func (s *Slot) Save(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, s.redisKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *Slot) Close() error {
	return s.rdb.Close()
}
