package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestSQLiteSlot(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "creditline-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	slot, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create slot: %v", err)
	}
	defer slot.Close()

	ctx := context.Background()

	t.Run("Load reports missing key", func(t *testing.T) {
		value, ok, err := slot.Load(ctx, "never-written")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if ok {
			t.Error("Expected ok=false for missing key")
		}
		if value != nil {
			t.Errorf("Expected nil value, got %q", value)
		}
	})

	t.Run("Save then Load round trips", func(t *testing.T) {
		if err := slot.Save(ctx, "records", []byte(`[{"id":"a"}]`)); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		value, ok, err := slot.Load(ctx, "records")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !ok {
			t.Fatal("Expected ok=true after Save")
		}
		if string(value) != `[{"id":"a"}]` {
			t.Errorf("Value mismatch: got %q", value)
		}
	})

	t.Run("Save overwrites whole value", func(t *testing.T) {
		if err := slot.Save(ctx, "overwrite", []byte(`[1,2,3]`)); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if err := slot.Save(ctx, "overwrite", []byte(`[]`)); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		value, _, err := slot.Load(ctx, "overwrite")
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if string(value) != `[]` {
			t.Errorf("Expected overwritten value, got %q", value)
		}
	})

	t.Run("Keys are independent", func(t *testing.T) {
		slot.Save(ctx, "a", []byte("1"))
		slot.Save(ctx, "b", []byte("2"))

		a, _, _ := slot.Load(ctx, "a")
		b, _, _ := slot.Load(ctx, "b")
		if string(a) != "1" || string(b) != "2" {
			t.Errorf("Unexpected values: a=%q b=%q", a, b)
		}
	})
}

func TestSQLiteSlot_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	first, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create slot: %v", err)
	}
	if err := first.Save(ctx, "credit_line_apartment_records", []byte(`[{"id":"apt_1"}]`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	first.Close()

	second, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen slot: %v", err)
	}
	defer second.Close()

	value, ok, err := second.Load(ctx, "credit_line_apartment_records")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !ok || string(value) != `[{"id":"apt_1"}]` {
		t.Errorf("Value not persisted: ok=%v value=%q", ok, value)
	}
}
