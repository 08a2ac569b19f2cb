package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mocks "guardianclima.app/internal/mocks"
	"guardianclima.app/pkg/errors"
)

func TestNewTokenStoreAdapter(t *testing.T) {
	_, err := NewTokenStoreAdapter(nil, "token")
	assert.True(t, errors.IsValidationError(err))

	_, err = NewTokenStoreAdapter(NewMemoryStorageProvider(), "")
	assert.True(t, errors.IsValidationError(err))
}

func TestTokenStoreAdapter_RoundTrip(t *testing.T) {
	store, err := NewTokenStoreAdapter(NewMemoryStorageProvider(), "token")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Load(ctx)
	assert.True(t, errors.IsNotFoundError(err))

	require.NoError(t, store.Save(ctx, "jwt", time.Now().Add(time.Hour)))
	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt", token)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Load(ctx)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTokenStoreAdapter_Save_TTLFollowsExpiry(t *testing.T) {
	storage := mocks.NewStorageProvider(t)
	store, err := NewTokenStoreAdapter(storage, "session:token")
	require.NoError(t, err)
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	storage.EXPECT().Set(mock.Anything, "session:token", []byte("jwt"), 15*time.Minute).Return(nil).Once()

	require.NoError(t, store.Save(context.Background(), "jwt", now.Add(15*time.Minute)))
}

func TestTokenStoreAdapter_Save_Rejects(t *testing.T) {
	store, err := NewTokenStoreAdapter(NewMemoryStorageProvider(), "token")
	require.NoError(t, err)
	ctx := context.Background()

	assert.True(t, errors.IsValidationError(store.Save(ctx, "", time.Now().Add(time.Hour))))
	assert.True(t, errors.IsValidationError(store.Save(ctx, "jwt", time.Now().Add(-time.Minute))))
}

func TestTokenStoreAdapter_Load_StorageError(t *testing.T) {
	storage := mocks.NewStorageProvider(t)
	store, err := NewTokenStoreAdapter(storage, "token")
	require.NoError(t, err)
	storage.EXPECT().Get(mock.Anything, "token").Return(nil, errors.NewStorageError("redis down", nil)).Once()

	_, err = store.Load(context.Background())

	assert.True(t, errors.IsStorageError(err))
}
