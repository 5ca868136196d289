package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

// Manager выдаёт идентификаторы сессий и скоупит общее хранилище по ним.
// Само хранилище (memory или postgres) процессно-общее; корзина каждого
// пользователя живёт под ключами с префиксом его сессии.
type Manager struct {
	backend domain.SessionStore
}

// NewManager оборачивает общее сессионное хранилище.
func NewManager(backend domain.SessionStore) *Manager {
	return &Manager{backend: backend}
}

// NewID возвращает новый идентификатор сессии.
func (m *Manager) NewID() string {
	return uuid.NewString()
}

// Scope возвращает SessionStore, видящий только ключи данной сессии.
func (m *Manager) Scope(id string) domain.SessionStore {
	return &scopedStore{backend: m.backend, id: id}
}

// scopedStore добавляет префикс сессии к каждому ключу.
type scopedStore struct {
	backend domain.SessionStore
	id      string
}

func (s *scopedStore) key(name string) string {
	return s.id + "/" + name
}

func (s *scopedStore) Get(ctx context.Context, name string) ([]domain.StoredLine, error) {
	return s.backend.Get(ctx, s.key(name))
}

func (s *scopedStore) Set(ctx context.Context, name string, lines []domain.StoredLine) error {
	return s.backend.Set(ctx, s.key(name), lines)
}

var _ domain.SessionStore = (*scopedStore)(nil)
