package memory_test

import (
	"context"
	"testing"

	"github.com/vladislavdragonenkov/cart/internal/domain"
	"github.com/vladislavdragonenkov/cart/internal/storage/memory"
)

func TestSessionStore_GetMissingKey(t *testing.T) {
	store := memory.NewSessionStore()

	lines, err := store.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if lines != nil {
		t.Fatalf("absent key must yield nil sequence, got %v", lines)
	}
}

func TestSessionStore_SetGetRoundTrip(t *testing.T) {
	store := memory.NewSessionStore()
	ctx := context.Background()

	in := []domain.StoredLine{
		{ProductPK: "p2", Quantity: 3},
		{ProductPK: "p1", Quantity: 1},
	}
	if err := store.Set(ctx, "sid/cart", in); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	out, err := store.Get(ctx, "sid/cart")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(out))
	}
	if out[0] != in[0] || out[1] != in[1] {
		t.Fatalf("order must be preserved, got %v", out)
	}
}

func TestSessionStore_SetOverwrites(t *testing.T) {
	store := memory.NewSessionStore()
	ctx := context.Background()

	if err := store.Set(ctx, "k", []domain.StoredLine{{ProductPK: "p1", Quantity: 1}}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Set(ctx, "k", nil); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	out, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty sequence after overwrite, got %v", out)
	}
}

func TestSessionStore_ReturnsCopies(t *testing.T) {
	store := memory.NewSessionStore()
	ctx := context.Background()

	in := []domain.StoredLine{{ProductPK: "p1", Quantity: 1}}
	if err := store.Set(ctx, "k", in); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	in[0].Quantity = 99

	out, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if out[0].Quantity != 1 {
		t.Fatalf("stored value must not alias caller slice, got %d", out[0].Quantity)
	}

	out[0].Quantity = 77
	again, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if again[0].Quantity != 1 {
		t.Fatalf("returned value must not alias stored slice, got %d", again[0].Quantity)
	}
}
