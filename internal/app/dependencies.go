package app

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cart/internal/domain"
	"github.com/vladislavdragonenkov/cart/internal/metrics"
	"github.com/vladislavdragonenkov/cart/internal/session"
	"github.com/vladislavdragonenkov/cart/internal/storage/postgres"
)

// Dependencies содержит все зависимости приложения.
type Dependencies struct {
	Sessions *session.Manager
	Binding  domain.Binding
	Metrics  *metrics.CartMetrics
	Store    *postgres.Store
	Logger   *log.Entry
}

// NewDependencies создаёт и инициализирует все зависимости приложения.
// Привязка корзины к каталогу разрешается здесь, один раз на старте:
// неизвестное имя каталога — это ошибка конфигурации, а не запроса.
func NewDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	runtime, err := initRuntimeDependencies(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	binding, err := domain.ResolveBinding(cfg.CartModel, runtime.lookups)
	if err != nil {
		runtime.close(logger)
		return nil, err
	}
	if cfg.CartName != "" {
		binding.Name = cfg.CartName
	}
	binding.Products = cfg.ProductsFallback
	binding.RejectNegative = cfg.RejectNegative

	return &Dependencies{
		Sessions: session.NewManager(runtime.sessions),
		Binding:  binding,
		Metrics:  metrics.NewCartMetrics(),
		Store:    runtime.store,
		Logger:   logger,
	}, nil
}

// Close освобождает ресурсы зависимостей.
func (d *Dependencies) Close() {
	if d.Store == nil {
		return
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.WithError(err).Warn("failed to close postgres store")
	}
}
