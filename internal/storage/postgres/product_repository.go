package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

const opTimeout = 5 * time.Second

// productRepository читает товары из PostgreSQL. Основной каталог — таблица
// products, вторичный ("products"-режим) — catalog_products.
type productRepository struct {
	db *sql.DB
}

// NewProductRepository создаёт PostgreSQL-реализацию ProductLookup.
// Возвращаемое значение также реализует ScopedLookup.
func NewProductRepository(store *Store) domain.ProductLookup {
	return &productRepository{db: store.DB()}
}

func (r *productRepository) GetByPK(ctx context.Context, pk string) (domain.Product, error) {
	return r.query(ctx, "products", pk)
}

func (r *productRepository) GetScoped(ctx context.Context, pk string, products bool) (domain.Product, error) {
	table := "products"
	if products {
		table = "catalog_products"
	}
	return r.query(ctx, table, pk)
}

func (r *productRepository) query(ctx context.Context, table, pk string) (domain.Product, error) {
	queryCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Имя таблицы подставляется только из фиксированного набора выше.
	var product domain.CatalogProduct
	err := r.db.QueryRowContext(queryCtx, fmt.Sprintf(`
		SELECT id, name, price_minor, created_at
		FROM %s
		WHERE id = $1
	`, table), pk).Scan(&product.ID, &product.Name, &product.PriceMinor, &product.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product %q: %w", pk, err)
	}

	return product, nil
}

var (
	_ domain.ProductLookup = (*productRepository)(nil)
	_ domain.ScopedLookup  = (*productRepository)(nil)
)
