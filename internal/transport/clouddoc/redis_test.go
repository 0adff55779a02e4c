package clouddoc

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chipsync/internal/models"
)

// getTestRedisStore connects to the local test Redis (DB 1) or skips the test.
func getTestRedisStore(t *testing.T) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("redis is not available: %v", err)
	}

	// Уникальный префикс, чтобы тесты не мешали друг другу
	store := NewRedisStore(client, "chipsync-test-"+uuid.NewString(), nil)
	t.Cleanup(func() {
		keys, err := client.Keys(context.Background(), store.prefix+":*").Result()
		if err == nil && len(keys) > 0 {
			_ = client.Del(context.Background(), keys...).Err()
		}
		_ = store.Close()
	})

	return store
}

func TestRedisStore_RoomLifecycle(t *testing.T) {
	ctx := context.Background()
	store := getTestRedisStore(t)

	now := time.Now().UTC()
	room := RoomDoc{ID: "R1abcd", HostParticipantID: "host", Version: 1, CreatedAt: now, LastUpdatedAt: now}
	docs := []RecordDoc{{
		ID: "R1abcd-players", SessionID: "R1abcd", DataType: models.DataTypePlayers,
		Data: "[]", UpdatedBy: "host", Version: 1, CreatedAt: now, UpdatedAt: now,
	}}

	require.NoError(t, store.CreateRoom(ctx, room, docs))
	assert.ErrorIs(t, store.CreateRoom(ctx, room, nil), ErrDocExists)

	got, err := store.GetRoom(ctx, "R1abcd")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Version)
	assert.Equal(t, "host", got.HostParticipantID)
	assert.True(t, now.Equal(got.CreatedAt))

	version, err := store.PutRecord(ctx, RecordDoc{
		ID: "R1abcd-players", SessionID: "R1abcd", DataType: models.DataTypePlayers,
		Data: `[{"id":"p1"}]`, UpdatedBy: "guest", UpdatedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	record, err := store.GetRecord(ctx, "R1abcd", models.DataTypePlayers)
	require.NoError(t, err)
	assert.Equal(t, int64(2), record.Version)
	assert.Equal(t, "guest", record.UpdatedBy)
	assert.True(t, now.Equal(record.CreatedAt))

	require.NoError(t, store.DeleteRoom(ctx, "R1abcd"))
	_, err = store.GetRoom(ctx, "R1abcd")
	assert.ErrorIs(t, err, ErrDocNotFound)
	_, err = store.GetRecord(ctx, "R1abcd", models.DataTypePlayers)
	assert.ErrorIs(t, err, ErrDocNotFound)

	_, err = store.PutRecord(ctx, RecordDoc{ID: "R1abcd-players", SessionID: "R1abcd", DataType: models.DataTypePlayers})
	assert.ErrorIs(t, err, ErrDocNotFound)
	assert.ErrorIs(t, store.TouchRoom(ctx, "R1abcd", now), ErrDocNotFound)
}

func TestRedisStore_WatchAndPresence(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store := getTestRedisStore(t)

	require.NoError(t, store.CreateRoom(ctx, RoomDoc{ID: "R1abcd", Version: 1}, nil))

	changes, err := store.Watch(ctx, "R1abcd")
	require.NoError(t, err)

	require.NoError(t, store.PutPresence(ctx, PresenceDoc{UID: "guest", SessionID: "R1abcd", Name: "Guest"}))
	list, err := store.ListPresence(ctx, "R1abcd")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Guest", list[0].Name)

	version, err := store.PutRecord(ctx, RecordDoc{
		ID: "R1abcd-history", SessionID: "R1abcd", DataType: models.DataTypeHistory, Data: "[]", UpdatedAt: time.Now(),
	})
	require.NoError(t, err)

	var kinds []ChangeKind
	timeout := time.After(2 * time.Second)
	for len(kinds) < 2 {
		select {
		case change := <-changes:
			kinds = append(kinds, change.Kind)
			if change.Kind == ChangeRecord {
				assert.Equal(t, version, change.Version)
				assert.Equal(t, models.DataTypeHistory, change.DataType)
			}
		case <-timeout:
			t.Fatalf("timed out waiting for changes, got %v", kinds)
		}
	}
	assert.Equal(t, []ChangeKind{ChangePresence, ChangeRecord}, kinds)

	require.NoError(t, store.DeletePresence(ctx, "R1abcd", "guest"))
	list, err = store.ListPresence(ctx, "R1abcd")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRedisStore_PutPresenceNeedsRoom(t *testing.T) {
	ctx := context.Background()
	store := getTestRedisStore(t)

	err := store.PutPresence(ctx, PresenceDoc{UID: "guest", SessionID: "R1abcd", Name: "Guest"})
	require.ErrorIs(t, err, ErrDocNotFound)

	exists, err := store.client.Exists(ctx, store.presenceKey("R1abcd")).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}

func TestRedisStore_PutPresenceRacesDeleteRoom(t *testing.T) {
	ctx := context.Background()
	store := getTestRedisStore(t)

	for i := 0; i < 20; i++ {
		roomID := fmt.Sprintf("R%05d", i)
		require.NoError(t, store.CreateRoom(ctx, RoomDoc{ID: roomID, Version: 1}, nil))

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.PutPresence(ctx, PresenceDoc{UID: "guest", SessionID: roomID, Name: "Guest"})
		}()
		go func() {
			defer wg.Done()
			_ = store.DeleteRoom(ctx, roomID)
		}()
		wg.Wait()

		// Либо комнаты нет и присутствия тоже, либо комната жива
		roomExists, err := store.client.Exists(ctx, store.roomKey(roomID)).Result()
		require.NoError(t, err)
		presenceExists, err := store.client.Exists(ctx, store.presenceKey(roomID)).Result()
		require.NoError(t, err)
		if roomExists == 0 {
			assert.Zero(t, presenceExists, "orphaned presence in %s", roomID)
		}
	}
}
