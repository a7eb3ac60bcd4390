// Package storage provides the durable key-value store that project data is
// persisted to.
//
// A Store holds opaque byte payloads under string keys. FileStore keeps one
// file per key in a directory; MemoryStore keeps payloads in memory and is
// used by tests and by callers that do not need durability.
package storage

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidKey is returned when a key is empty or cannot name a file.
	ErrInvalidKey = errors.New("invalid storage key")

	// ErrQuotaExceeded is returned when a write would exceed the store's capacity.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Store is a persistent key-value store.
type Store interface {
	// Get returns the payload stored under key. The boolean is false when
	// the key is absent.
	Get(key string) ([]byte, bool, error)

	// Set replaces the payload stored under key.
	Set(key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// ValidateKey checks that key can be used with every Store implementation.
func ValidateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
