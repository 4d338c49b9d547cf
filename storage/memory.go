package storage

import (
	"context"
	"sync"
)

// MemorySlots keeps slots in process memory. Values are stored encoded so a reload
// behaves like reading a fresh process' storage.
type MemorySlots struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemorySlots creates an empty in-memory store
func NewMemorySlots() *MemorySlots {
	return &MemorySlots{slots: make(map[string][]byte)}
}

func (m *MemorySlots) Load(_ context.Context, key string, v any) (bool, error) {
	m.mu.RLock()
	data, ok := m.slots[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, decode(key, data, v)
}

func (m *MemorySlots) Save(_ context.Context, key string, v any) error {
	data, err := encode(key, v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.slots[key] = data
	m.mu.Unlock()
	return nil
}

// SaveRaw stores bytes as-is; used to seed legacy or broken documents.
func (m *MemorySlots) SaveRaw(key string, data []byte) {
	m.mu.Lock()
	m.slots[key] = append([]byte(nil), data...)
	m.mu.Unlock()
}

func (m *MemorySlots) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.slots, key)
	m.mu.Unlock()
	return nil
}

func (m *MemorySlots) Close() error { return nil }
