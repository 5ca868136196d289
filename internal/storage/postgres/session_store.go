package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/cart/internal/domain"
)

// sessionStore хранит сериализованные корзины в таблице cart_sessions.
// Значение — JSONB-массив пар (product_pk, quantity); порядок элементов
// массива и есть порядок строк корзины.
type sessionStore struct {
	db *sql.DB
}

// NewSessionStore создаёт PostgreSQL-реализацию SessionStore.
func NewSessionStore(store *Store) domain.SessionStore {
	return &sessionStore{db: store.DB()}
}

func (s *sessionStore) Get(ctx context.Context, key string) ([]domain.StoredLine, error) {
	queryCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var payload []byte
	err := s.db.QueryRowContext(queryCtx, `
		SELECT payload
		FROM cart_sessions
		WHERE key = $1
	`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session %q: %w", key, err)
	}

	var lines []domain.StoredLine
	if err := json.Unmarshal(payload, &lines); err != nil {
		return nil, fmt.Errorf("decode session payload %q: %w", key, err)
	}
	return lines, nil
}

func (s *sessionStore) Set(ctx context.Context, key string, lines []domain.StoredLine) error {
	if lines == nil {
		lines = []domain.StoredLine{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode session payload %q: %w", key, err)
	}

	execCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := s.db.ExecContext(execCtx, `
		INSERT INTO cart_sessions (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = NOW()
	`, key, payload); err != nil {
		return fmt.Errorf("upsert session %q: %w", key, err)
	}
	return nil
}

var _ domain.SessionStore = (*sessionStore)(nil)
