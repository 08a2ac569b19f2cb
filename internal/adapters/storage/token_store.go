package storage

import (
	"context"
	"time"

	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/errors"
)

// TokenStoreAdapter keeps the bearer token under a single key of a
// StorageProvider. The key expires together with the token.
type TokenStoreAdapter struct {
	storage ports.StorageProvider
	key     string
	now     func() time.Time
}

func NewTokenStoreAdapter(storage ports.StorageProvider, key string) (*TokenStoreAdapter, error) {
	if storage == nil {
		return nil, errors.NewValidationError("storage provider is required")
	}
	if key == "" {
		return nil, errors.NewValidationError("token key is required")
	}
	return &TokenStoreAdapter{storage: storage, key: key, now: time.Now}, nil
}

// Load returns a NotFound error when no token is stored
func (a *TokenStoreAdapter) Load(ctx context.Context) (string, error) {
	data, err := a.storage.Get(ctx, a.key)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", errors.NewNotFoundError("no token stored")
	}
	return string(data), nil
}

func (a *TokenStoreAdapter) Save(ctx context.Context, token string, expiresAt time.Time) error {
	if token == "" {
		return errors.NewValidationError("token cannot be empty")
	}

	var ttl time.Duration
	if !expiresAt.IsZero() {
		ttl = expiresAt.Sub(a.now())
		if ttl <= 0 {
			return errors.NewValidationError("token is already expired")
		}
	}

	return a.storage.Set(ctx, a.key, []byte(token), ttl)
}

func (a *TokenStoreAdapter) Clear(ctx context.Context) error {
	return a.storage.Delete(ctx, a.key)
}
