package storage

import (
	"context"
	"sync"
)

// MemoryAdapter is an in-process adapter for tests and ephemeral runs.
type MemoryAdapter struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{data: map[string]string{}}
}

func (m *MemoryAdapter) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemoryAdapter) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryAdapter) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
