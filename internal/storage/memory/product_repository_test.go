package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/cart/internal/domain"
	"github.com/vladislavdragonenkov/cart/internal/storage/memory"
)

func TestProductRepository_GetByPK(t *testing.T) {
	repo := memory.NewProductRepository()
	repo.Seed(domain.CatalogProduct{ID: "p1", Name: "tea", PriceMinor: 100})

	product, err := repo.GetByPK(context.Background(), "p1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if product.PK() != "p1" {
		t.Fatalf("unexpected pk: %s", product.PK())
	}

	if _, err := repo.GetByPK(context.Background(), "missing"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductRepository_GetScoped(t *testing.T) {
	repo := memory.NewProductRepository()
	repo.Seed(domain.CatalogProduct{ID: "main", PriceMinor: 10})
	repo.SeedScoped(domain.CatalogProduct{ID: "secondary", PriceMinor: 20})

	// products=true читает только вторичный каталог.
	if _, err := repo.GetScoped(context.Background(), "main", true); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected miss in scoped catalog, got %v", err)
	}
	product, err := repo.GetScoped(context.Background(), "secondary", true)
	if err != nil {
		t.Fatalf("scoped get failed: %v", err)
	}
	if product.PK() != "secondary" {
		t.Fatalf("unexpected pk: %s", product.PK())
	}

	// products=false читает основной каталог.
	if _, err := repo.GetScoped(context.Background(), "main", false); err != nil {
		t.Fatalf("primary get via scoped failed: %v", err)
	}
}
