package domain

// CartLine — одна строка корзины: разрешённый товар и количество.
// Идентичность строки определяется только первичным ключом товара,
// количество в сравнении не участвует.
type CartLine struct {
	Product  Product
	Quantity int
}

// NewCartLine собирает строку корзины. Нулевое или отсутствующее количество —
// это ноль, а не ошибка.
func NewCartLine(product Product, quantity int) CartLine {
	return CartLine{Product: product, Quantity: quantity}
}

// SameProduct сравнивает строку с другим значением по идентичности товара.
// Принимает другую строку, товар или первичный ключ.
func (l CartLine) SameProduct(item any) bool {
	if l.Product == nil {
		return false
	}
	pk, ok := pkOf(item)
	return ok && l.Product.PK() == pk
}

// pkOf извлекает первичный ключ из значения без обращения к хранилищу.
func pkOf(item any) (string, bool) {
	switch v := item.(type) {
	case CartLine:
		if v.Product == nil {
			return "", false
		}
		return v.Product.PK(), true
	case Product:
		return v.PK(), true
	case string:
		return v, true
	}
	return "", false
}
