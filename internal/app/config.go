package app

import (
	"fmt"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

// Поддерживаемые драйверы хранилища.
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Config описывает настройки запуска приложения.
type Config struct {
	HTTPAddr    string
	MetricsAddr string

	StorageDriver       string
	PostgresDSN         string
	PostgresAutoMigrate bool

	// CartModel — имя зарегистрированного каталога, к которому привязана
	// корзина. Разрешается один раз на старте; неизвестное имя — отказ запуска.
	CartModel string
	// CartName задаёт ключ корзины внутри сессии.
	CartName string
	// ProductsFallback передаётся в резервный поиск товара при сбое
	// основного каталога.
	ProductsFallback bool
	// RejectNegative включает строгую валидацию отрицательных количеств.
	RejectNegative bool

	// KafkaBrokers — список брокеров через запятую, пустая строка
	// отключает публикацию событий.
	KafkaBrokers string
}

// DefaultConfig возвращает базовые настройки сервиса корзины.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:            ":8080",
		MetricsAddr:         ":9090",
		StorageDriver:       StorageDriverMemory,
		PostgresAutoMigrate: true,
		CartModel:           "catalog",
		CartName:            domain.DefaultCartName,
	}
}

// Validate проверяет согласованность конфигурации до инициализации зависимостей.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("postgres storage driver requires a DSN")
		}
	default:
		return fmt.Errorf("unsupported storage driver %q", c.StorageDriver)
	}

	if c.CartModel == "" {
		return fmt.Errorf("%w: cart model is not configured", domain.ErrCartModelBinding)
	}
	return nil
}
