// Package storage defines the persistence port for the record store.
package storage

import "context"

//go:generate moq -out storage_mock.go . KeyValueStorage

// DefaultKey is the slot holding the serialized record sequence
const DefaultKey = "qrData"

// KeyValueStorage is a flat string-keyed store of opaque blobs.
// Каждая запись перезаписывает значение целиком, частичных обновлений нет.
type KeyValueStorage interface {
	// Get returns the value stored under key
	// Returns ErrSlotNotFound if nothing was written under key
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the value stored under key
	Put(ctx context.Context, key string, value []byte) error
}

// Backend names accepted by configuration
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)
