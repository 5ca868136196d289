package memory

import (
	"context"
	"sync"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

// sessionStoreInMemory — простая in-memory реализация SessionStore.
type sessionStoreInMemory struct {
	mu    sync.RWMutex
	items map[string][]domain.StoredLine
}

// NewSessionStore возвращает in-memory сессионное хранилище для локальной
// разработки и тестов.
func NewSessionStore() domain.SessionStore {
	return &sessionStoreInMemory{
		items: make(map[string][]domain.StoredLine),
	}
}

// Get возвращает сохранённую последовательность или (nil, nil), если ключа нет.
func (s *sessionStoreInMemory) Get(_ context.Context, key string) ([]domain.StoredLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.items[key]
	if !ok {
		return nil, nil
	}
	// Возвращаем копию, чтобы избежать непредсказуемых мутаций извне.
	out := make([]domain.StoredLine, len(stored))
	copy(out, stored)
	return out, nil
}

// Set перезаписывает значение под ключом целиком (last-writer-wins).
func (s *sessionStoreInMemory) Set(_ context.Context, key string, lines []domain.StoredLine) error {
	stored := make([]domain.StoredLine, len(lines))
	copy(stored, lines)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = stored
	return nil
}

var _ domain.SessionStore = (*sessionStoreInMemory)(nil)
