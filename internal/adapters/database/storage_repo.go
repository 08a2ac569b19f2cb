package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"guardianclima.app/pkg/errors"
)

// StorageEntryModel is one key of the session storage
type StorageEntryModel struct {
	Key       string     `gorm:"column:storage_key;primaryKey;size:191"`
	Value     []byte     `gorm:"not null"`
	ExpiresAt *time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (StorageEntryModel) TableName() string {
	return "session_storage"
}

// StorageRepositoryAdapter implements ports.StorageProvider using GORM
type StorageRepositoryAdapter struct {
	db  *gorm.DB
	now func() time.Time
}

func NewStorageRepositoryAdapter(db *gorm.DB) *StorageRepositoryAdapter {
	return &StorageRepositoryAdapter{db: db, now: time.Now}
}

func (r *StorageRepositoryAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("storage key cannot be empty")
	}

	var model StorageEntryModel
	result := r.live(ctx).Where("storage_key = ?", key).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("key not found")
		}
		return nil, errors.NewStorageError("failed to read key", result.Error)
	}

	return model.Value, nil
}

// Set upserts a key. A zero ttl stores it without expiry.
func (r *StorageRepositoryAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("storage key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("storage value cannot be nil")
	}
	if ttl < 0 {
		return errors.NewValidationError("storage TTL cannot be negative")
	}

	model := StorageEntryModel{Key: key, Value: value}
	if ttl > 0 {
		expiresAt := r.now().Add(ttl)
		model.ExpiresAt = &expiresAt
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
	}).Create(&model)
	if result.Error != nil {
		return errors.NewStorageError("failed to write key", result.Error)
	}

	return nil
}

func (r *StorageRepositoryAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("storage key cannot be empty")
	}

	result := r.db.WithContext(ctx).Where("storage_key = ?", key).Delete(&StorageEntryModel{})
	if result.Error != nil {
		return errors.NewStorageError("failed to delete key", result.Error)
	}

	return nil
}

func (r *StorageRepositoryAdapter) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("storage key cannot be empty")
	}

	var count int64
	result := r.live(ctx).Model(&StorageEntryModel{}).Where("storage_key = ?", key).Count(&count)
	if result.Error != nil {
		return false, errors.NewStorageError("failed to check key", result.Error)
	}

	return count > 0, nil
}

// DeleteExpired purges keys whose TTL has elapsed and returns how many were removed
func (r *StorageRepositoryAdapter) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at IS NOT NULL AND expires_at <= ?", r.now()).Delete(&StorageEntryModel{})
	if result.Error != nil {
		return 0, errors.NewStorageError("failed to delete expired keys", result.Error)
	}
	return result.RowsAffected, nil
}

// Ping checks the database connection
func (r *StorageRepositoryAdapter) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.NewStorageError("failed to get database handle", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.NewStorageError("database ping failed", err)
	}
	return nil
}

func (r *StorageRepositoryAdapter) Close() error {
	return Close(r.db)
}

func (r *StorageRepositoryAdapter) live(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Where("expires_at IS NULL OR expires_at > ?", r.now())
}
