package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/storage"
)

func TestIdentityStorage(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now()
	identity := &models.Identity{
		ParticipantID: uuid.New().String(),
		DeviceID:      "device-1",
		CreatedAt:     now,
		LastSeenAt:    now,
	}

	require.NoError(t, s.CreateIdentity(ctx, identity))
	assert.ErrorIs(t, s.CreateIdentity(ctx, identity), storage.ErrIdentityAlreadyExists)

	got, err := s.GetIdentity(ctx, identity.ParticipantID)
	require.NoError(t, err)
	assert.Equal(t, identity.ParticipantID, got.ParticipantID)
	assert.Equal(t, "device-1", got.DeviceID)
	assert.Equal(t, now.UnixMilli(), got.CreatedAt.UnixMilli())

	later := now.Add(time.Hour)
	require.NoError(t, s.TouchIdentity(ctx, identity.ParticipantID, later))

	got, err = s.GetIdentity(ctx, identity.ParticipantID)
	require.NoError(t, err)
	assert.Equal(t, later.UnixMilli(), got.LastSeenAt.UnixMilli())
}

func TestIdentityStorage_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetIdentity(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrIdentityNotFound)

	assert.ErrorIs(t, s.TouchIdentity(ctx, "missing", time.Now()), storage.ErrIdentityNotFound)
}
