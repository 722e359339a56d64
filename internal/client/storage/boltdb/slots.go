package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/qrninja/internal/client/storage"
)

// Get returns the value stored under key
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	if s.closed.Load() {
		return nil, storage.ErrStorageClosed
	}

	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSlots)
		if bucket == nil {
			return fmt.Errorf("slots bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrSlotNotFound
		}

		// данные валидны только внутри транзакции, поэтому копируем
		value = make([]byte, len(data))
		copy(value, data)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Put replaces the value stored under key
func (s *Storage) Put(ctx context.Context, key string, value []byte) error {
	if s.closed.Load() {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSlots)
		if bucket == nil {
			return fmt.Errorf("slots bucket not found")
		}

		if err := bucket.Put([]byte(key), value); err != nil {
			return fmt.Errorf("failed to save slot: %w", err)
		}
		return nil
	})
}
