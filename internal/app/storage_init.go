package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cart/internal/domain"
	"github.com/vladislavdragonenkov/cart/internal/storage/memory"
	"github.com/vladislavdragonenkov/cart/internal/storage/postgres"
)

// runtimeDependencies — хранилища, выбранные по конфигурации.
type runtimeDependencies struct {
	sessions domain.SessionStore
	lookups  map[string]domain.ProductLookup
	store    *postgres.Store
}

// initRuntimeDependencies собирает хранилища по драйверу из конфигурации.
// Для postgres при включённой автомиграции схема приводится к актуальной.
func initRuntimeDependencies(ctx context.Context, cfg Config, logger *log.Entry) (runtimeDependencies, error) {
	switch cfg.StorageDriver {
	case StorageDriverMemory, "":
		logger.Info("используем in-memory хранилище")
		return runtimeDependencies{
			sessions: memory.NewSessionStore(),
			lookups: map[string]domain.ProductLookup{
				"catalog": memory.NewProductRepository(),
			},
		}, nil

	case StorageDriverPostgres:
		if cfg.PostgresDSN == "" {
			return runtimeDependencies{}, fmt.Errorf("postgres storage driver requires a DSN")
		}

		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return runtimeDependencies{}, fmt.Errorf("open postgres: %w", err)
		}

		if cfg.PostgresAutoMigrate {
			if err := store.EnsureSchema(ctx); err != nil {
				_ = store.Close()
				return runtimeDependencies{}, fmt.Errorf("migrate postgres schema: %w", err)
			}
			logger.Info("схема postgres актуальна")
		}

		logger.Info("используем postgres хранилище")
		return runtimeDependencies{
			sessions: postgres.NewSessionStore(store),
			lookups: map[string]domain.ProductLookup{
				"catalog": postgres.NewProductRepository(store),
			},
			store: store,
		}, nil

	default:
		return runtimeDependencies{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// close освобождает ресурсы хранилища.
func (d runtimeDependencies) close(logger *log.Entry) {
	if d.store == nil {
		return
	}
	if err := d.store.Close(); err != nil {
		logger.WithError(err).Warn("failed to close postgres store")
	}
}
