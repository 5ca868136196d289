package domain

import "errors"

var (
	// ErrCartModelBinding — некорректная привязка модели товара из конфигурации.
	// Фатальная ошибка: должна всплывать на старте процесса, а не внутри запроса.
	ErrCartModelBinding = errors.New("cart model binding is invalid")
	// ErrProductNotFound возвращается, если товар не найден ни одним из этапов резолва.
	ErrProductNotFound = errors.New("product not found")
	// ErrLineNotFound возвращается, если в корзине нет строки для указанного товара.
	ErrLineNotFound = errors.New("cart line not found")
	// ErrPriceUnsupported — тип товара не несёт цену, итоговая стоимость не определена.
	ErrPriceUnsupported = errors.New("product type does not expose a price")
	// ErrQuantityNegative возвращается только в строгом режиме (Binding.RejectNegative).
	ErrQuantityNegative = errors.New("quantity must be non-negative")
)

// IsNotFound проверяет, относится ли ошибка к семейству "не найдено":
// промах по товару или по строке корзины.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrLineNotFound)
}
