package boltdb

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/qrninja/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketSlots = []byte("slots")
)

// Ensure, that Storage does implement storage.KeyValueStorage.
var _ storage.KeyValueStorage = (*Storage)(nil)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db     *bbolt.DB
	closed atomic.Bool
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB; таймаут не дает зависнуть, если файл держит другой процесс
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	// Инициализируем buckets
	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil || s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketSlots); err != nil {
			return fmt.Errorf("failed to create slots bucket: %w", err)
		}
		return nil
	})
}
