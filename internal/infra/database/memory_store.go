package database

import (
	"context"
	"sync"
)

// MemorySlotStore keeps slots in a map. Used when no DATABASE_URL is
// configured (local demo runs) and as the storage double in tests.
// Contents are lost on restart, matching the defaults-only behavior of a
// fresh deployment.
type MemorySlotStore struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func NewMemorySlotStore() *MemorySlotStore {
	return &MemorySlotStore{slots: make(map[string][]byte)}
}

func (m *MemorySlotStore) Load(ctx context.Context, name string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.slots[name]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), raw...), true, nil
}

func (m *MemorySlotStore) Save(ctx context.Context, name string, raw []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[name] = append([]byte(nil), raw...)
	return nil
}
