package storage

import (
	"context"
	"sync"
	"time"

	"guardianclima.app/pkg/errors"
)

// MemoryStorageProvider keeps values in process memory. Everything is lost on restart.
type MemoryStorageProvider struct {
	data  map[string]memoryItem
	mutex sync.RWMutex
	now   func() time.Time
}

type memoryItem struct {
	data      []byte
	expiresAt time.Time
}

func (i memoryItem) expired(now time.Time) bool {
	return !i.expiresAt.IsZero() && !now.Before(i.expiresAt)
}

func NewMemoryStorageProvider() *MemoryStorageProvider {
	return &MemoryStorageProvider{
		data: make(map[string]memoryItem),
		now:  time.Now,
	}
}

func (m *MemoryStorageProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("storage key cannot be empty")
	}

	m.mutex.RLock()
	item, exists := m.data[key]
	m.mutex.RUnlock()

	if !exists || item.expired(m.now()) {
		return nil, errors.NewNotFoundError("key not found")
	}

	out := make([]byte, len(item.data))
	copy(out, item.data)
	return out, nil
}

func (m *MemoryStorageProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("storage key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("storage value cannot be nil")
	}
	if ttl < 0 {
		return errors.NewValidationError("storage TTL cannot be negative")
	}

	item := memoryItem{data: append([]byte(nil), value...)}
	if ttl > 0 {
		item.expiresAt = m.now().Add(ttl)
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.data[key] = item

	return nil
}

func (m *MemoryStorageProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("storage key cannot be empty")
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.data, key)

	return nil
}

func (m *MemoryStorageProvider) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("storage key cannot be empty")
	}

	m.mutex.RLock()
	item, exists := m.data[key]
	m.mutex.RUnlock()

	return exists && !item.expired(m.now()), nil
}

func (m *MemoryStorageProvider) Close() error {
	return nil
}
