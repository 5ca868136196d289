package memory

import (
	"context"
	"sync"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

// ProductRepository — in-memory источник товаров с двумя каталогами:
// основным и вторичным ("products"). Вторичный каталог обслуживает
// запасной этап резолва корзины.
type ProductRepository struct {
	mu      sync.RWMutex
	primary map[string]domain.CatalogProduct
	scoped  map[string]domain.CatalogProduct
}

// NewProductRepository возвращает пустой репозиторий; каталоги наполняются
// через Seed/SeedScoped.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		primary: make(map[string]domain.CatalogProduct),
		scoped:  make(map[string]domain.CatalogProduct),
	}
}

// Seed добавляет товары в основной каталог.
func (r *ProductRepository) Seed(products ...domain.CatalogProduct) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range products {
		r.primary[p.ID] = p
	}
}

// SeedScoped добавляет товары во вторичный каталог.
func (r *ProductRepository) SeedScoped(products ...domain.CatalogProduct) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range products {
		r.scoped[p.ID] = p
	}
}

// GetByPK возвращает товар основного каталога или ErrProductNotFound.
func (r *ProductRepository) GetByPK(_ context.Context, pk string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.primary[pk]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// GetScoped ищет товар во вторичном каталоге при products=true,
// иначе в основном.
func (r *ProductRepository) GetScoped(_ context.Context, pk string, products bool) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	catalog := r.primary
	if products {
		catalog = r.scoped
	}
	product, ok := catalog[pk]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

var (
	_ domain.ProductLookup = (*ProductRepository)(nil)
	_ domain.ScopedLookup  = (*ProductRepository)(nil)
)
