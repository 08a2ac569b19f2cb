package ports

import (
	"context"
	"time"
)

// StorageProvider defines the contract for persistent key/value storage.
// A zero ttl stores the value without expiry.
type StorageProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Close() error
}

// TokenStore persists the single bearer token of the session
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string, expiresAt time.Time) error
	Clear(ctx context.Context) error
}
