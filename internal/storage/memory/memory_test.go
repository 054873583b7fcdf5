package memory

import (
	"context"
	"testing"
)

func TestSlot_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	slot := New()

	in := []byte("abc")
	if err := slot.Save(ctx, "k", in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	in[0] = 'x'

	out, ok, err := slot.Load(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Load failed: ok=%v err=%v", ok, err)
	}
	if string(out) != "abc" {
		t.Errorf("stored value changed through caller slice: %q", out)
	}

	out[0] = 'y'
	again, _, _ := slot.Load(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("stored value changed through returned slice: %q", again)
	}
}

func TestSlot_MissingKey(t *testing.T) {
	_, ok, err := New().Load(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ok {
		t.Error("expected ok=false")
	}
}
