package domain

import "context"

// StoredLine — сериализованная строка корзины: первичный ключ товара и количество.
// Порядок строк в сессии значим и сохраняется при round-trip.
type StoredLine struct {
	ProductPK string `json:"product_pk"`
	Quantity  int    `json:"quantity"`
}

// SessionStore описывает внешнее key-value хранилище, привязанное к сессии
// пользователя. Отсутствующий ключ трактуется как пустая последовательность
// (nil, nil), а не как ошибка.
type SessionStore interface {
	Get(ctx context.Context, key string) ([]StoredLine, error)
	Set(ctx context.Context, key string, lines []StoredLine) error
}

// ProductLookup разрешает первичный ключ в полную запись товара.
type ProductLookup interface {
	// GetByPK возвращает товар или ErrProductNotFound, если его нет.
	GetByPK(ctx context.Context, pk string) (Product, error)
}

// ScopedLookup — опциональная возможность источника товаров с двумя каталогами.
// Используется как второй этап резолва, когда основной поиск завершился
// ошибкой, отличной от ErrProductNotFound.
type ScopedLookup interface {
	// GetScoped ищет товар во вторичном каталоге, если products=true,
	// иначе в основном.
	GetScoped(ctx context.Context, pk string, products bool) (Product, error)
}
