package storage

import (
	"fmt"

	"guardianclima.app/internal/adapters/database"
	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/errors"
)

const (
	TypeMemory   = "memory"
	TypeFile     = "file"
	TypeRedis    = "redis"
	TypeDatabase = "database"
)

type StorageProviderFactory struct{}

func NewStorageProviderFactory() *StorageProviderFactory {
	return &StorageProviderFactory{}
}

// CreateStorageProvider builds the backend selected by cfg.Type
func (f *StorageProviderFactory) CreateStorageProvider(cfg *ports.StorageConfig) (ports.StorageProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("storage config cannot be nil", nil)
	}

	switch cfg.Type {
	case TypeMemory:
		return NewMemoryStorageProvider(), nil
	case TypeFile:
		return NewFileStorageProvider(cfg.FilePath)
	case TypeRedis:
		return NewRedisStorageProvider(&cfg.Redis)
	case TypeDatabase:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, err
		}
		return database.NewStorageRepositoryAdapter(db), nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported storage type: %s", cfg.Type), nil)
	}
}
