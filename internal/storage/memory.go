package storage

import (
	"fmt"
	"slices"
	"sync"
)

// MemoryStore is an in-memory Store.
type MemoryStore struct {
	// MaxBytes caps the total size of all stored payloads. Zero means no limit.
	MaxBytes int

	mu sync.RWMutex
	m  map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	if err := ValidateKey(key); err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.m[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(value), true, nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.m == nil {
		s.m = make(map[string][]byte)
	}

	if s.MaxBytes > 0 {
		total := len(value)
		for k, v := range s.m {
			if k != key {
				total += len(v)
			}
		}
		if total > s.MaxBytes {
			return fmt.Errorf("%w: %d > %d bytes", ErrQuotaExceeded, total, s.MaxBytes)
		}
	}

	s.m[key] = slices.Clone(value)
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.m, key)
	return nil
}
