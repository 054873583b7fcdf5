// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a lookup or update targets an id that does
// not exist. Callers test for it with errors.Is.
var ErrNotFound = errors.New("not found")

// Slot defines the persistence boundary: a key-value store where each key
// holds one whole serialized collection. Reads return the full blob and
// writes overwrite it; there are no partial writes.
// This abstraction allows swapping storage backends (SQLite, Redis, memory)
// without changing the stores built on top of it.
type Slot interface {
	// Load returns the value stored under key.
	// ok is false if the key has never been written.
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Save overwrites the value stored under key.
	Save(ctx context.Context, key string, value []byte) error

	// Close releases any resources held by the slot.
	Close() error
}
