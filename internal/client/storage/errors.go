package storage

import "errors"

// Common client storage errors
var (
	// ErrSlotNotFound indicates that nothing was ever written under the key
	ErrSlotNotFound = errors.New("slot not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
