package repositories

import (
	"context"
	"slices"
	"supachat/errors"
	"sync"

	"github.com/samber/lo"
)

// MemoryBackend keeps records in a process local map. Stored and returned
// byte slices are copied so callers cannot alias them.
type MemoryBackend struct {
	mu      sync.RWMutex
	records map[string][]byte
	closed  bool
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{records: make(map[string][]byte)}
}

func (m *MemoryBackend) Read(_ context.Context, namespace string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, errors.ErrBackendClosed
	}
	data, ok := m.records[namespace]
	if !ok {
		return nil, nil
	}
	return slices.Clone(data), nil
}

func (m *MemoryBackend) Write(_ context.Context, namespace string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errors.ErrBackendClosed
	}
	m.records[namespace] = slices.Clone(data)
	return nil
}

func (m *MemoryBackend) Keys(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, errors.ErrBackendClosed
	}
	keys := lo.Keys(m.records)
	slices.Sort(keys)
	return keys, nil
}

func (m *MemoryBackend) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
