package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"petcare-registry/internal/ports/kv"
)

// KVStore implementa kv.Store sobre la tabla kv_entries.
type KVStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db, now: time.Now}
}

func (s *KVStore) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT value
		FROM kv_entries
		WHERE namespace = $1 AND key = $2
	`, namespace, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, kv.ErrNotFound
		}
		return nil, fmt.Errorf("postgres: get %s/%s: %w", namespace, key, err)
	}
	return value, nil
}

// Set hace upsert: el valor completo se reemplaza en una sola sentencia.
func (s *KVStore) Set(ctx context.Context, namespace, key string, value []byte) error {
	if strings.TrimSpace(namespace) == "" || strings.TrimSpace(key) == "" {
		return errors.New("namespace and key required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_entries (namespace, key, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (namespace, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, namespace, key, value, s.now().UTC())
	if err != nil {
		return fmt.Errorf("postgres: set %s/%s: %w", namespace, key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, namespace, key string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM kv_entries
		WHERE namespace = $1 AND key = $2
	`, namespace, key)
	if err != nil {
		return fmt.Errorf("postgres: delete %s/%s: %w", namespace, key, err)
	}
	return nil
}
