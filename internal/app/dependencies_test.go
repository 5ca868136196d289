package app

import (
	"context"
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

func TestNewDependencies(t *testing.T) {
	logger := log.WithField("test", "dependencies")
	deps, err := NewDependencies(context.Background(), DefaultConfig(), logger)
	if err != nil {
		t.Fatalf("NewDependencies failed: %v", err)
	}

	if deps == nil {
		t.Fatal("NewDependencies should not return nil")
	}

	if deps.Sessions == nil {
		t.Error("Sessions should not be nil")
	}

	if deps.Binding.Lookup == nil {
		t.Error("Binding.Lookup should not be nil")
	}

	if deps.Metrics == nil {
		t.Error("Metrics should not be nil")
	}

	if deps.Logger == nil {
		t.Error("Logger should not be nil")
	}
}

func TestNewDependencies_WithNilLogger(t *testing.T) {
	deps, err := NewDependencies(context.Background(), DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewDependencies failed: %v", err)
	}

	if deps.Logger == nil {
		t.Error("Logger should be initialized even when nil is passed")
	}
}

func TestNewDependencies_BindingOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CartName = "wishlist"
	cfg.ProductsFallback = true
	cfg.RejectNegative = true

	deps, err := NewDependencies(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("NewDependencies failed: %v", err)
	}

	if deps.Binding.Name != "wishlist" {
		t.Errorf("expected binding name wishlist, got %s", deps.Binding.Name)
	}
	if !deps.Binding.Products {
		t.Error("expected Products to be carried into the binding")
	}
	if !deps.Binding.RejectNegative {
		t.Error("expected RejectNegative to be carried into the binding")
	}
}

func TestNewDependencies_UnknownCartModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CartModel = "warehouse"

	_, err := NewDependencies(context.Background(), cfg, nil)
	if err == nil {
		t.Fatal("expected error for unknown cart model")
	}
	if !errors.Is(err, domain.ErrCartModelBinding) {
		t.Fatalf("expected ErrCartModelBinding, got %v", err)
	}
}

func TestNewDependencies_IndependentInstances(t *testing.T) {
	deps1, err := NewDependencies(context.Background(), DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewDependencies failed: %v", err)
	}
	deps2, err := NewDependencies(context.Background(), DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewDependencies failed: %v", err)
	}

	// Каждый вызов должен создавать новые экземпляры
	if deps1 == deps2 {
		t.Error("NewDependencies should create independent instances")
	}

	if deps1.Sessions == deps2.Sessions {
		t.Error("session managers should be independent")
	}
}
