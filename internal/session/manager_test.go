package session_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/cart/internal/domain"
	"github.com/vladislavdragonenkov/cart/internal/session"
	"github.com/vladislavdragonenkov/cart/internal/storage/memory"
)

func TestManager_NewID(t *testing.T) {
	manager := session.NewManager(memory.NewSessionStore())

	first := manager.NewID()
	second := manager.NewID()

	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("session id must be a uuid: %v", err)
	}
	if first == second {
		t.Fatal("session ids must be unique")
	}
}

func TestManager_ScopeIsolatesSessions(t *testing.T) {
	backend := memory.NewSessionStore()
	manager := session.NewManager(backend)
	ctx := context.Background()

	alice := manager.Scope("sid-alice")
	bob := manager.Scope("sid-bob")

	if err := alice.Set(ctx, "cart", []domain.StoredLine{{ProductPK: "p1", Quantity: 2}}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := bob.Get(ctx, "cart")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Fatalf("sessions must not see each other's carts, got %v", got)
	}

	got, err = alice.Get(ctx, "cart")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(got) != 1 || got[0].ProductPK != "p1" {
		t.Fatalf("unexpected cart content: %v", got)
	}
}

func TestManager_ScopeSeparatesCartNames(t *testing.T) {
	manager := session.NewManager(memory.NewSessionStore())
	ctx := context.Background()

	scoped := manager.Scope("sid-1")
	if err := scoped.Set(ctx, "cart", []domain.StoredLine{{ProductPK: "p1", Quantity: 1}}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := scoped.Set(ctx, "wishlist", []domain.StoredLine{{ProductPK: "p2", Quantity: 1}}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	cart, err := scoped.Get(ctx, "cart")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(cart) != 1 || cart[0].ProductPK != "p1" {
		t.Fatalf("unexpected cart: %v", cart)
	}

	wishlist, err := scoped.Get(ctx, "wishlist")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(wishlist) != 1 || wishlist[0].ProductPK != "p2" {
		t.Fatalf("unexpected wishlist: %v", wishlist)
	}
}
