package domain

import (
	"context"
	"errors"
	"fmt"
)

// Cart — упорядоченная корзина без дубликатов, живущая в пределах одного
// запроса. Создаётся из сессионного хранилища, мутируется операциями ниже и
// сохраняется обратно только явным вызовом Save. Инвариант: никакие две строки
// не ссылаются на один товар, каждая мутация работает по схеме find-or-create.
//
// Cart не потокобезопасен: экземпляр не должен разделяться между обработчиками.
type Cart struct {
	session SessionStore
	binding Binding
	lines   []CartLine
	dropped int
}

// NewCart создаёт корзину и сразу гидрирует её из сессии. Записи, чей товар
// исчез из каталога, молча отбрасываются: устаревшая корзина не должна ронять
// запрос. Ошибки самого сессионного хранилища всплывают наружу.
func NewCart(ctx context.Context, session SessionStore, binding Binding) (*Cart, error) {
	if session == nil {
		return nil, fmt.Errorf("%w: session store is nil", ErrCartModelBinding)
	}
	if binding.Lookup == nil {
		return nil, fmt.Errorf("%w: product lookup is nil", ErrCartModelBinding)
	}
	if binding.Name == "" {
		binding.Name = DefaultCartName
	}

	c := &Cart{session: session, binding: binding}

	stored, err := session.Get(ctx, binding.Name)
	if err != nil {
		return nil, fmt.Errorf("read session cart %q: %w", binding.Name, err)
	}
	for _, line := range stored {
		product, err := c.resolve(ctx, line.ProductPK)
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				c.dropped++
				continue
			}
			return nil, err
		}
		// Дубликаты в сохранённой последовательности сливаются аддитивно,
		// как и при обычном Add.
		if idx, ierr := c.IndexOf(product); ierr == nil {
			c.lines[idx].Quantity += line.Quantity
			continue
		}
		c.lines = append(c.lines, CartLine{Product: product, Quantity: line.Quantity})
	}

	return c, nil
}

// Name возвращает ключ сессии, под которым корзина сохраняется.
func (c *Cart) Name() string { return c.binding.Name }

// Dropped возвращает количество строк, отброшенных при гидрации.
func (c *Cart) Dropped() int { return c.dropped }

// resolve приводит item к товару. Готовый товар или строка возвращаются как
// есть; первичный ключ разрешается в два этапа: (1) прямой поиск по ключу,
// (2) при ошибке, отличной от ErrProductNotFound, — запасной поиск во
// вторичном каталоге, если источник его поддерживает; (3) иначе не найдено.
func (c *Cart) resolve(ctx context.Context, item any) (Product, error) {
	switch v := item.(type) {
	case CartLine:
		if v.Product == nil {
			return nil, ErrProductNotFound
		}
		return v.Product, nil
	case Product:
		return v, nil
	case string:
		product, err := c.binding.Lookup.GetByPK(ctx, v)
		if err == nil {
			return product, nil
		}
		if errors.Is(err, ErrProductNotFound) {
			return nil, fmt.Errorf("resolve product %q: %w", v, ErrProductNotFound)
		}
		if scoped, ok := c.binding.Lookup.(ScopedLookup); ok {
			if product, serr := scoped.GetScoped(ctx, v, c.binding.Products); serr == nil {
				return product, nil
			}
		}
		return nil, fmt.Errorf("resolve product %q: %w", v, ErrProductNotFound)
	default:
		return nil, fmt.Errorf("resolve product of type %T: %w", item, ErrProductNotFound)
	}
}

// IndexOf возвращает позицию строки с тем же товаром. Принимает товар, строку
// или первичный ключ; промах — ErrLineNotFound. Это строгий поиск, на котором
// построена дедупликация всех мутаторов.
func (c *Cart) IndexOf(item any) (int, error) {
	pk, ok := pkOf(item)
	if !ok {
		return 0, ErrLineNotFound
	}
	for i, line := range c.lines {
		if line.Product.PK() == pk {
			return i, nil
		}
	}
	return 0, fmt.Errorf("line for product %q: %w", pk, ErrLineNotFound)
}

// Add добавляет quantity единиц товара: существующая строка наращивается,
// отсутствующая создаётся. Повторные Add аккумулируются.
func (c *Cart) Add(ctx context.Context, item any, quantity int) error {
	if err := c.checkQuantity(quantity); err != nil {
		return err
	}
	product, err := c.resolve(ctx, item)
	if err != nil {
		return err
	}
	if idx, err := c.IndexOf(product); err == nil {
		c.lines[idx].Quantity += quantity
		return nil
	}
	c.lines = append(c.lines, NewCartLine(product, quantity))
	return nil
}

// SetQuantity перезаписывает количество товара (не аддитивно); отсутствующая
// строка создаётся.
func (c *Cart) SetQuantity(ctx context.Context, item any, quantity int) error {
	if err := c.checkQuantity(quantity); err != nil {
		return err
	}
	product, err := c.resolve(ctx, item)
	if err != nil {
		return err
	}
	if idx, err := c.IndexOf(product); err == nil {
		c.lines[idx].Quantity = quantity
		return nil
	}
	c.lines = append(c.lines, NewCartLine(product, quantity))
	return nil
}

// SetQuantities применяет SetQuantity к каждой паре (ключ, количество).
// Записи с исчезнувшими товарами пропускаются молча, обработка продолжается —
// частичный отказ без отката. Остальные ошибки всплывают.
func (c *Cart) SetQuantities(ctx context.Context, quantities map[string]int) error {
	for pk, quantity := range quantities {
		if err := c.SetQuantity(ctx, pk, quantity); err != nil {
			if errors.Is(err, ErrProductNotFound) {
				continue
			}
			return err
		}
	}
	return nil
}

// Remove удаляет ровно одну строку по идентичности товара. Отсутствие товара
// или строки — ошибка вызывающего, она не глотается.
func (c *Cart) Remove(ctx context.Context, item any) error {
	product, err := c.resolve(ctx, item)
	if err != nil {
		return err
	}
	idx, err := c.IndexOf(product)
	if err != nil {
		return err
	}
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
	return nil
}

// RemoveMany последовательно удаляет перечисленные товары. Первая же ошибка
// прерывает обработку — в отличие от терпимого SetQuantities, здесь политики
// намеренно разные.
func (c *Cart) RemoveMany(ctx context.Context, items []any) error {
	for _, item := range items {
		if err := c.Remove(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// Clear удаляет все строки корзины.
func (c *Cart) Clear() {
	c.lines = nil
}

// Save сериализует текущие строки в пары (ключ, количество) в актуальном
// порядке и перезаписывает значение в сессии. Никогда не вызывается неявно.
func (c *Cart) Save(ctx context.Context) error {
	stored := make([]StoredLine, 0, len(c.lines))
	for _, line := range c.lines {
		stored = append(stored, StoredLine{ProductPK: line.Product.PK(), Quantity: line.Quantity})
	}
	if err := c.session.Set(ctx, c.binding.Name, stored); err != nil {
		return fmt.Errorf("write session cart %q: %w", c.binding.Name, err)
	}
	return nil
}

// Lines возвращает копию строк корзины в актуальном порядке.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// ItemsTotal возвращает число различных строк.
func (c *Cart) ItemsTotal() int { return len(c.lines) }

// TotalQuantity возвращает сумму количеств по всем строкам; для пустой
// корзины это ноль. Отрицательные количества суммируются как есть.
func (c *Cart) TotalQuantity() int {
	var total int
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// Items возвращает товары корзины по одной записи на строку, в порядке строк.
func (c *Cart) Items() []Product {
	items := make([]Product, 0, len(c.lines))
	for _, line := range c.lines {
		items = append(items, line.Product)
	}
	return items
}

// TotalPrice суммирует price*quantity в минорных единицах. Если тип товара
// хоть одной строки не несёт цену, итог не определён — возвращается
// ErrPriceUnsupported, а не молчаливый ноль.
func (c *Cart) TotalPrice() (int64, error) {
	var total int64
	for _, line := range c.lines {
		priced, ok := line.Product.(PricedProduct)
		if !ok {
			return 0, fmt.Errorf("product %q: %w", line.Product.PK(), ErrPriceUnsupported)
		}
		total += priced.UnitPriceMinor() * int64(line.Quantity)
	}
	return total, nil
}

func (c *Cart) checkQuantity(quantity int) error {
	if c.binding.RejectNegative && quantity < 0 {
		return fmt.Errorf("%w: %d", ErrQuantityNegative, quantity)
	}
	return nil
}
