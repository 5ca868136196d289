package domain_test

import (
	"testing"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

func TestNewCartLine_ZeroQuantity(t *testing.T) {
	line := domain.NewCartLine(domain.CatalogProduct{ID: "p1"}, 0)

	if line.Quantity != 0 {
		t.Fatalf("expected zero quantity, got %d", line.Quantity)
	}
	if line.Product.PK() != "p1" {
		t.Fatalf("unexpected product pk: %s", line.Product.PK())
	}
}

func TestCartLine_SameProduct(t *testing.T) {
	product := domain.CatalogProduct{ID: "p1", PriceMinor: 100}
	other := domain.CatalogProduct{ID: "p2"}
	line := domain.NewCartLine(product, 3)

	// Идентичность определяется товаром, количество не участвует.
	if !line.SameProduct(domain.NewCartLine(product, 99)) {
		t.Fatal("lines with the same product must match regardless of quantity")
	}
	if !line.SameProduct(product) {
		t.Fatal("line must match its own product")
	}
	if !line.SameProduct("p1") {
		t.Fatal("line must match its product pk")
	}
	if line.SameProduct(other) {
		t.Fatal("line must not match a different product")
	}
	if line.SameProduct(42) {
		t.Fatal("unsupported comparand must not match")
	}
}

func TestCartLine_SameProductNilProduct(t *testing.T) {
	var line domain.CartLine
	if line.SameProduct("p1") {
		t.Fatal("zero-value line must not match anything")
	}
}
