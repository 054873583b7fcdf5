package storage_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mmynk/creditline/internal/storage"
	"github.com/mmynk/creditline/internal/storage/memory"
)

type item struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestCollection(t *testing.T) {
	ctx := context.Background()
	slot := memory.New()
	c := storage.NewCollection[item](slot, "items")

	t.Run("first Load initializes empty array", func(t *testing.T) {
		items, err := c.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if items == nil || len(items) != 0 {
			t.Fatalf("expected empty slice, got %#v", items)
		}
		raw, ok, _ := slot.Load(ctx, "items")
		if !ok || string(raw) != "[]" {
			t.Errorf("expected slot to hold [], got ok=%v raw=%q", ok, raw)
		}
	})

	t.Run("Save then Load preserves order", func(t *testing.T) {
		want := []item{{"b", 2}, {"a", 1}, {"c", 3}}
		if err := c.Save(ctx, want); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		got, err := c.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(got) != len(want) {
			t.Fatalf("expected %d items, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("item %d: got %+v, want %+v", i, got[i], want[i])
			}
		}
	})

	t.Run("Save nil writes empty array", func(t *testing.T) {
		if err := c.Save(ctx, nil); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		raw, _, _ := slot.Load(ctx, "items")
		if string(raw) != "[]" {
			t.Errorf("expected [], got %q", raw)
		}
	})

	t.Run("corrupt blob is an error", func(t *testing.T) {
		slot.Save(ctx, "items", []byte("{not json"))
		if _, err := c.Load(ctx); err == nil {
			t.Error("expected decode error")
		}
	})
}

func TestCollection_View(t *testing.T) {
	ctx := context.Background()

	t.Run("initializes missing key only under the lock", func(t *testing.T) {
		slot := memory.New()
		c := storage.NewCollection[item](slot, "items")

		var mu sync.Mutex
		mu.Lock()

		done := make(chan error, 1)
		go func() {
			_, err := c.View(ctx, &mu)
			done <- err
		}()

		select {
		case <-done:
			t.Fatal("View returned while the writers' lock was held")
		case <-time.After(50 * time.Millisecond):
		}

		// A writer holding the lock saves first.
		if err := c.Save(ctx, []item{{"x", 1}}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		mu.Unlock()

		if err := <-done; err != nil {
			t.Fatalf("View failed: %v", err)
		}
		got, err := c.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(got) != 1 || got[0].Name != "x" {
			t.Errorf("expected writer's item to survive, got %+v", got)
		}
	})

	t.Run("existing key needs no lock", func(t *testing.T) {
		slot := memory.New()
		c := storage.NewCollection[item](slot, "items")
		if err := c.Save(ctx, []item{{"a", 1}}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		var mu sync.Mutex
		mu.Lock()
		defer mu.Unlock()

		got, err := c.View(ctx, &mu)
		if err != nil {
			t.Fatalf("View failed: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("expected 1 item, got %d", len(got))
		}
	})
}
