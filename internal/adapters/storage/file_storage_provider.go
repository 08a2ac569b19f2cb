package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"guardianclima.app/pkg/errors"
)

// FileStorageProvider keeps all keys in one JSON document on disk so a
// session survives a restart of the host process
type FileStorageProvider struct {
	path  string
	mutex sync.Mutex
	now   func() time.Time
}

type fileEntry struct {
	Value     []byte     `json:"value"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (e fileEntry) expired(now time.Time) bool {
	return e.ExpiresAt != nil && !now.Before(*e.ExpiresAt)
}

// NewFileStorageProvider creates the parent directory of path if needed
func NewFileStorageProvider(path string) (*FileStorageProvider, error) {
	if path == "" {
		return nil, errors.NewConfigurationError("storage file path cannot be empty", nil)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.NewStorageError("failed to create storage directory", err)
	}
	return &FileStorageProvider{path: path, now: time.Now}, nil
}

func (f *FileStorageProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("storage key cannot be empty")
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	entries, err := f.read()
	if err != nil {
		return nil, err
	}
	entry, ok := entries[key]
	if !ok || entry.expired(f.now()) {
		return nil, errors.NewNotFoundError("key not found")
	}
	return entry.Value, nil
}

func (f *FileStorageProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("storage key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("storage value cannot be nil")
	}
	if ttl < 0 {
		return errors.NewValidationError("storage TTL cannot be negative")
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	entries, err := f.read()
	if err != nil {
		return err
	}
	entry := fileEntry{Value: value}
	if ttl > 0 {
		expiresAt := f.now().Add(ttl)
		entry.ExpiresAt = &expiresAt
	}
	entries[key] = entry
	return f.write(entries)
}

func (f *FileStorageProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("storage key cannot be empty")
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	entries, err := f.read()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return f.write(entries)
}

func (f *FileStorageProvider) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("storage key cannot be empty")
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	entries, err := f.read()
	if err != nil {
		return false, err
	}
	entry, ok := entries[key]
	return ok && !entry.expired(f.now()), nil
}

func (f *FileStorageProvider) Close() error {
	return nil
}

// read loads the document. A missing file is an empty store.
func (f *FileStorageProvider) read() (map[string]fileEntry, error) {
	entries := make(map[string]fileEntry)

	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return entries, nil
	}
	if err != nil {
		return nil, errors.NewStorageError("failed to read storage file", err)
	}
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.NewStorageError("storage file is corrupted", err)
	}
	return entries, nil
}

// write replaces the document atomically
func (f *FileStorageProvider) write(entries map[string]fileEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return errors.NewStorageError("failed to encode storage file", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".session-*.tmp")
	if err != nil {
		return errors.NewStorageError("failed to create temporary storage file", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.NewStorageError("failed to write storage file", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.NewStorageError("failed to write storage file", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return errors.NewStorageError("failed to replace storage file", err)
	}
	return nil
}
