package domain

import "time"

// Product — минимальное представление товара, которое нужно корзине.
// Корзина не владеет товарами: она держит ссылки, разрешённые через ProductLookup.
type Product interface {
	// PK возвращает первичный ключ товара. По нему строится идентичность строк.
	PK() string
}

// PricedProduct дополнительно отдаёт цену за единицу в минимальных денежных
// единицах. Типы товаров без цены не обязаны его реализовывать — тогда
// итоговая стоимость корзины не определена.
type PricedProduct interface {
	Product
	UnitPriceMinor() int64
}

// CatalogProduct — конкретная запись каталога, которую возвращает слой хранения.
type CatalogProduct struct {
	ID         string
	Name       string
	PriceMinor int64
	CreatedAt  time.Time
}

// PK возвращает первичный ключ записи каталога.
func (p CatalogProduct) PK() string { return p.ID }

// UnitPriceMinor возвращает цену за единицу в минорных единицах.
func (p CatalogProduct) UnitPriceMinor() int64 { return p.PriceMinor }

var (
	_ Product       = CatalogProduct{}
	_ PricedProduct = CatalogProduct{}
)
