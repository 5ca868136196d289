package domain

import "fmt"

// DefaultCartName — ключ сессии по умолчанию, под которым хранится корзина.
const DefaultCartName = "cart"

// Binding — привязка корзины к модели товара и её настройкам.
// Разрешается один раз на процесс из конфигурации и передаётся в каждый
// экземпляр Cart; скрытого глобального состояния нет.
type Binding struct {
	// Lookup — разрешённый источник товаров.
	Lookup ProductLookup
	// Name — ключ сессии; пустая строка означает DefaultCartName.
	Name string
	// Products включает вторичный каталог при fallback-резолве.
	Products bool
	// RejectNegative переводит Add/SetQuantity в строгий режим:
	// отрицательные количества отклоняются с ErrQuantityNegative.
	// По умолчанию поведение разрешительное.
	RejectNegative bool
}

// ResolveBinding выбирает модель товара по имени из реестра доступных
// источников. Неизвестное имя — ошибка конфигурации, а не запроса.
func ResolveBinding(model string, lookups map[string]ProductLookup) (Binding, error) {
	lookup, ok := lookups[model]
	if !ok || lookup == nil {
		return Binding{}, fmt.Errorf("%w: %q", ErrCartModelBinding, model)
	}
	return Binding{Lookup: lookup, Name: DefaultCartName}, nil
}
