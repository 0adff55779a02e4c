package identity

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chipsync/internal/client/storage/boltdb"
	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/pkg/api"
)

func createTestStorage(t *testing.T) *boltdb.Storage {
	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "identity.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestDeviceProvider(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)
	provider := NewDeviceProvider(store)

	first, err := provider.AnonymousIdentity(ctx)
	require.NoError(t, err)
	second, err := provider.AnonymousIdentity(ctx)
	require.NoError(t, err)

	// Устройство одно, участники разные
	assert.Equal(t, first.DeviceID, second.DeviceID)
	assert.NotEqual(t, first.ParticipantID, second.ParticipantID)
	assert.NotEmpty(t, first.ParticipantID)
}

func TestRemoteProvider_CachesToken(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	client := &IdentityClientMock{
		AnonymousIdentityFunc: func(ctx context.Context, deviceID string) (*api.IdentityResponse, error) {
			return &api.IdentityResponse{ParticipantID: "anon-1", Token: "jwt", ExpiresIn: 3600}, nil
		},
	}
	provider := NewRemoteProvider(client, store, store, nil)

	id, err := provider.AnonymousIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, "anon-1", id.ParticipantID)
	assert.NotEmpty(t, id.DeviceID)

	// Второй вызов берет токен из кэша
	id, err = provider.AnonymousIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, "anon-1", id.ParticipantID)
	require.Len(t, client.AnonymousIdentityCalls(), 1)
	assert.Equal(t, id.DeviceID, client.AnonymousIdentityCalls()[0].DeviceID)

	cached, err := store.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt", cached.Token)
}

func TestRemoteProvider_RefreshesExpiredToken(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SaveToken(ctx, &models.IdentityToken{
		ParticipantID: "old", Token: "expired", ExpiresAt: time.Now().Add(-time.Minute),
	}))

	client := &IdentityClientMock{
		AnonymousIdentityFunc: func(ctx context.Context, deviceID string) (*api.IdentityResponse, error) {
			return &api.IdentityResponse{ParticipantID: "new", Token: "fresh", ExpiresIn: 60}, nil
		},
	}
	provider := NewRemoteProvider(client, store, store, nil)

	token, err := provider.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fresh", token.Token)
	assert.Equal(t, "new", token.ParticipantID)
	assert.Len(t, client.AnonymousIdentityCalls(), 1)
}

func TestFallback(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	failing := NewRemoteProvider(&IdentityClientMock{
		AnonymousIdentityFunc: func(ctx context.Context, deviceID string) (*api.IdentityResponse, error) {
			return nil, errors.New("connection refused")
		},
	}, store, store, nil)

	provider := NewFallback(failing, NewDeviceProvider(store), nil)

	id, err := provider.AnonymousIdentity(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, id.ParticipantID)

	deviceID, err := store.GetOrCreateDeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, deviceID, id.DeviceID)
}

func TestFallback_BothFail(t *testing.T) {
	store := createTestStorage(t)
	require.NoError(t, store.Close())

	provider := NewFallback(NewDeviceProvider(store), NewDeviceProvider(store), nil)

	_, err := provider.AnonymousIdentity(context.Background())
	assert.Error(t, err)
}
