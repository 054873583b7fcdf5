package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/bytedance/sonic"
)

// Collection reads and writes a slice of T serialized as a JSON array under
// a single slot key.
type Collection[T any] struct {
	slot Slot
	key  string
}

// NewCollection returns a Collection bound to key in slot.
func NewCollection[T any](slot Slot, key string) *Collection[T] {
	return &Collection[T]{slot: slot, key: key}
}

// Load returns every item in the collection, in stored order.
// A key that has never been written is initialized to an empty array, so
// callers must hold the lock that serializes writers of the collection.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	items, ok, err := c.read(ctx)
	if err != nil || ok {
		return items, err
	}
	if err := c.Save(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// View returns every item for a reader that does not hold the writers'
// lock. If the key has never been written, the empty array is written
// while holding mu, so it cannot overwrite a concurrent writer's save.
func (c *Collection[T]) View(ctx context.Context, mu sync.Locker) ([]T, error) {
	items, ok, err := c.read(ctx)
	if err != nil || ok {
		return items, err
	}
	mu.Lock()
	defer mu.Unlock()
	return c.Load(ctx)
}

// read decodes the stored collection. ok is false if the key has never
// been written, in which case items is empty.
func (c *Collection[T]) read(ctx context.Context) (items []T, ok bool, err error) {
	raw, ok, err := c.slot.Load(ctx, c.key)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %s: %w", c.key, err)
	}

	items = []T{}
	if !ok || len(raw) == 0 {
		return items, ok, nil
	}
	if err := sonic.ConfigStd.Unmarshal(raw, &items); err != nil {
		return nil, true, fmt.Errorf("failed to decode %s: %w", c.key, err)
	}
	return items, true, nil
}

// Save serializes items and overwrites the slot.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := sonic.ConfigStd.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	if err := c.slot.Save(ctx, c.key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", c.key, err)
	}
	return nil
}
