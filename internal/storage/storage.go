// package storage provides durable persistence for the catalog snapshot.
//
// The catalog owns exactly one document, stored under a fixed namespaced key
// in a key-value backend. [Backend] is the contract the adapter consumes;
// [SQLiteBackend] is the production implementation and [MemoryBackend] backs
// tests and throwaway sessions.
package storage

import (
	"context"
	"sync"
)

// Backend is the key-value contract the persistence adapter consumes:
// get returns the stored bytes or reports absence, set overwrites.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// MemoryBackend is an in-process [Backend] for tests and ":memory:" sessions.
type MemoryBackend struct {
	mu sync.RWMutex
	m  map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{m: map[string][]byte{}}
}

func (b *MemoryBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.m[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (b *MemoryBackend) Set(ctx context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	b.m[key] = v
	return nil
}
