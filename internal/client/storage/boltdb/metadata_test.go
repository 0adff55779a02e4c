package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chipsync/internal/client/storage"
	"github.com/iudanet/chipsync/internal/clock"
	"github.com/iudanet/chipsync/internal/models"
)

func TestSaveAndGetKnownVersion(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Изначально, если версия не сохранена, ожидаем 0
	v, err := store.GetKnownVersion(ctx, "R1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	require.NoError(t, store.SaveKnownVersion(ctx, "R1", 42))
	require.NoError(t, store.SaveKnownVersion(ctx, "R2", 7))

	v, err = store.GetKnownVersion(ctx, "R1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = store.GetKnownVersion(ctx, "R2")
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)
}

func TestKnownVersion_TrackerSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	tracker, err := clock.NewTracker(ctx, "R1", store)
	require.NoError(t, err)
	_, err = tracker.Observe(ctx, 9)
	require.NoError(t, err)

	restored, err := clock.NewTracker(ctx, "R1", store)
	require.NoError(t, err)
	assert.Equal(t, int64(9), restored.Known())
}

func TestGetOrCreateDeviceID(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	first, err := store.GetOrCreateDeviceID(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := store.GetOrCreateDeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSession_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	session := &models.SessionState{
		RoomID:        "R1abcd",
		ParticipantID: "p-1",
		Name:          "Host",
		IsHost:        true,
		JoinedAt:      time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.SaveSession(ctx, session))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, got)

	require.NoError(t, store.DeleteSession(ctx))
	require.NoError(t, store.DeleteSession(ctx))

	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}
