package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/qrninja/internal/client/storage"
)

// Get returns the value stored under key
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	if s.closed.Load() {
		return nil, storage.ErrStorageClosed
	}

	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to query slot: %w", err)
	}

	return value, nil
}

// Put replaces the value stored under key
func (s *Storage) Put(ctx context.Context, key string, value []byte) error {
	if s.closed.Load() {
		return storage.ErrStorageClosed
	}
	if value == nil {
		value = []byte{}
	}

	query := `
		INSERT INTO slots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, key, value, time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("failed to save slot: %w", err)
	}

	return nil
}
