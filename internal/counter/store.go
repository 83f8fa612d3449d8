// Package counter keeps the simulated marketplace download count.
package counter

import (
	"context"
	"sync"
)

// DownloadsKey is the key the download total is stored under.
const DownloadsKey = "zp_downloads"

// Store is a tiny key/value store of integer counters.
type Store interface {
	Get(ctx context.Context, key string) (int64, error)
	Add(ctx context.Context, key string, delta int64) (int64, error)
	Close() error
}

// MemoryStore keeps counters in process memory.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]int64
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int64)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

func (m *MemoryStore) Add(_ context.Context, key string, delta int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] += delta
	return m.values[key], nil
}

func (m *MemoryStore) Close() error { return nil }
