package local

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/storage/sqlite"
	"github.com/iudanet/chipsync/internal/transport"
)

func setupTestStore(t *testing.T) *sqlite.Storage {
	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newTestTransport(t *testing.T, store *sqlite.Storage, bus *Bus, interval time.Duration) *Transport {
	tr := New(store, Options{
		Bus:          bus,
		PollInterval: interval,
		Logger:       slog.New(slog.NewTextHandler(os.Stdout, nil)),
	})
	t.Cleanup(func() { _ = tr.Close() })
	return tr
}

func createRoom(t *testing.T, tr transport.Transport, roomID string) {
	now := time.Now().UTC()
	room := &models.Room{ID: roomID, HostParticipantID: "host", Version: 1, CreatedAt: now, LastUpdatedAt: now}

	records := make([]*models.SyncRecord, 0, len(models.AllDataTypes))
	for _, dt := range models.AllDataTypes {
		records = append(records, &models.SyncRecord{
			RoomID: roomID, DataType: dt, Payload: dt.EmptyPayload(), Version: 1, UpdatedBy: "host", UpdatedAt: now,
		})
	}

	require.NoError(t, tr.CreateRoom(context.Background(), room, records))
}

// recorder собирает записи, доставленные подпиской
type recorder struct {
	records []*models.SyncRecord
	mu      sync.Mutex
}

func (r *recorder) handle(record *models.SyncRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
}

func (r *recorder) last() *models.SyncRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.records) == 0 {
		return nil
	}
	return r.records[len(r.records)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

func TestTransport_CreateAndGetRoom(t *testing.T) {
	ctx := context.Background()
	tr := newTestTransport(t, setupTestStore(t), NewBus(nil), time.Hour)

	createRoom(t, tr, "R1abcd")
	require.NoError(t, tr.Register(ctx, models.Participant{
		ID: "host", RoomID: "R1abcd", Name: "Host", IsHost: true, JoinedAt: time.Now(),
	}))

	room, err := tr.GetRoom(ctx, "R1abcd")
	require.NoError(t, err)
	assert.Equal(t, int64(1), room.Version)
	require.Len(t, room.Participants, 1)
	assert.Equal(t, "Host", room.Participants[0].Name)

	exists, err := tr.RoomExists(ctx, "R1abcd")
	require.NoError(t, err)
	assert.True(t, exists)

	// Повторное создание
	err = tr.CreateRoom(ctx, &models.Room{ID: "R1abcd"}, nil)
	assert.ErrorIs(t, err, transport.ErrRoomExists)

	_, err = tr.GetRoom(ctx, "missing")
	assert.ErrorIs(t, err, transport.ErrRoomNotFound)
	assert.Equal(t, Name, tr.Name())
}

func TestTransport_PutAndSubscribe(t *testing.T) {
	ctx := context.Background()
	tr := newTestTransport(t, setupTestStore(t), NewBus(nil), time.Hour)
	createRoom(t, tr, "R1abcd")

	rec := &recorder{}
	unsubscribe, err := tr.Subscribe(ctx, "R1abcd", models.DataTypePlayers, rec.handle)
	require.NoError(t, err)
	defer unsubscribe()

	// Текущее значение доставляется сразу
	require.Equal(t, 1, rec.count())
	assert.Equal(t, "[]", rec.last().Payload)
	assert.Equal(t, int64(1), rec.last().Version)

	record := &models.SyncRecord{
		RoomID:    "R1abcd",
		DataType:  models.DataTypePlayers,
		Payload:   `[{"currentChips":5000,"id":"1","name":"Bob"}]`,
		UpdatedBy: "host",
	}
	require.NoError(t, tr.Put(ctx, record))
	assert.Equal(t, int64(2), record.Version)

	assert.Eventually(t, func() bool { return rec.count() == 2 }, time.Second, time.Millisecond)
	assert.Equal(t, record.Payload, rec.last().Payload)

	version, err := tr.RoomVersion(ctx, "R1abcd")
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
}

func TestTransport_BroadcastBetweenDevices(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)
	bus := NewBus(nil)

	// Опрос фактически выключен: доставка только через шину
	a := newTestTransport(t, store, bus, time.Hour)
	b := newTestTransport(t, store, bus, time.Hour)
	createRoom(t, a, "R1abcd")

	rec := &recorder{}
	unsubscribe, err := b.Subscribe(ctx, "R1abcd", models.DataTypeReceipts, rec.handle)
	require.NoError(t, err)
	defer unsubscribe()

	require.NoError(t, a.Put(ctx, &models.SyncRecord{
		RoomID: "R1abcd", DataType: models.DataTypeReceipts, Payload: `[{"id":"r1"}]`, UpdatedBy: "host",
	}))

	assert.Eventually(t, func() bool {
		last := rec.last()
		return last != nil && last.Version == 2
	}, time.Second, time.Millisecond)
	assert.Equal(t, `[{"id":"r1"}]`, rec.last().Payload)
}

func TestTransport_PollingWithoutBroadcast(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	// Нет шины: сходимость только за счет опроса
	a := newTestTransport(t, store, nil, time.Hour)
	b := newTestTransport(t, store, nil, 10*time.Millisecond)
	createRoom(t, a, "R1abcd")

	rec := &recorder{}
	unsubscribe, err := b.Subscribe(ctx, "R1abcd", models.DataTypePlayers, rec.handle)
	require.NoError(t, err)
	defer unsubscribe()

	require.NoError(t, a.Put(ctx, &models.SyncRecord{
		RoomID: "R1abcd", DataType: models.DataTypePlayers, Payload: `[{"id":"1"}]`, UpdatedBy: "host",
	}))
	require.NoError(t, a.Put(ctx, &models.SyncRecord{
		RoomID: "R1abcd", DataType: models.DataTypeHistory, Payload: `[{"id":"h"}]`, UpdatedBy: "host",
	}))

	assert.Eventually(t, func() bool {
		last := rec.last()
		return last != nil && last.Version == 2
	}, time.Second, 5*time.Millisecond)

	// Подписка на players не получает чужие типы
	time.Sleep(30 * time.Millisecond)
	rec.mu.Lock()
	defer rec.mu.Unlock()
	for _, r := range rec.records {
		assert.Equal(t, models.DataTypePlayers, r.DataType)
	}
}

func TestTransport_UnsubscribeIndependent(t *testing.T) {
	ctx := context.Background()
	tr := newTestTransport(t, setupTestStore(t), NewBus(nil), time.Hour)
	createRoom(t, tr, "R1abcd")

	first, second := &recorder{}, &recorder{}
	unsubFirst, err := tr.Subscribe(ctx, "R1abcd", models.DataTypePlayers, first.handle)
	require.NoError(t, err)
	unsubSecond, err := tr.Subscribe(ctx, "R1abcd", models.DataTypePlayers, second.handle)
	require.NoError(t, err)
	defer unsubSecond()

	unsubFirst()
	unsubFirst()

	require.NoError(t, tr.Put(ctx, &models.SyncRecord{
		RoomID: "R1abcd", DataType: models.DataTypePlayers, Payload: `[1]`, UpdatedBy: "host",
	}))

	assert.Eventually(t, func() bool { return second.count() == 2 }, time.Second, time.Millisecond)
	assert.Equal(t, 1, first.count())
}

func TestTransport_Presence(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)
	bus := NewBus(nil)
	a := newTestTransport(t, store, bus, time.Hour)
	b := newTestTransport(t, store, bus, time.Hour)
	createRoom(t, a, "R1abcd")

	host := models.Participant{ID: "host", RoomID: "R1abcd", Name: "Host", IsHost: true, JoinedAt: time.Now()}
	require.NoError(t, a.Register(ctx, host))

	var mu sync.Mutex
	var snapshots [][]models.Participant
	unsubscribe, err := a.SubscribePresence(ctx, "R1abcd", func(list []models.Participant) {
		mu.Lock()
		snapshots = append(snapshots, list)
		mu.Unlock()
	})
	require.NoError(t, err)
	defer unsubscribe()

	latest := func() []models.Participant {
		mu.Lock()
		defer mu.Unlock()
		if len(snapshots) == 0 {
			return nil
		}
		return snapshots[len(snapshots)-1]
	}

	require.Len(t, latest(), 1)

	alice := models.Participant{ID: "alice", RoomID: "R1abcd", Name: "Alice", JoinedAt: time.Now()}
	require.NoError(t, b.Register(ctx, alice))
	require.NoError(t, b.Register(ctx, alice))

	assert.Eventually(t, func() bool { return len(latest()) == 2 }, time.Second, time.Millisecond)

	list, err := b.ListPresence(ctx, "R1abcd")
	require.NoError(t, err)
	assert.Len(t, list, 2, "register is idempotent")

	require.NoError(t, a.Deregister(ctx, "R1abcd", "host"))
	assert.Eventually(t, func() bool { return len(latest()) == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, "alice", latest()[0].ID)
	assert.False(t, latest()[0].IsHost)
}

func TestTransport_DeleteRoom(t *testing.T) {
	ctx := context.Background()
	tr := newTestTransport(t, setupTestStore(t), NewBus(nil), time.Hour)
	createRoom(t, tr, "R1abcd")

	require.NoError(t, tr.DeleteRoom(ctx, "R1abcd"))

	_, err := tr.GetRoom(ctx, "R1abcd")
	assert.ErrorIs(t, err, transport.ErrRoomNotFound)

	_, err = tr.Get(ctx, "R1abcd", models.DataTypePlayers)
	assert.ErrorIs(t, err, transport.ErrRecordNotFound)

	err = tr.Put(ctx, &models.SyncRecord{RoomID: "R1abcd", DataType: models.DataTypePlayers, Payload: "[]"})
	assert.ErrorIs(t, err, transport.ErrRoomNotFound)

	assert.ErrorIs(t, tr.DeleteRoom(ctx, "R1abcd"), transport.ErrRoomNotFound)
	assert.ErrorIs(t, tr.Register(ctx, models.Participant{ID: "x", RoomID: "R1abcd", Name: "X"}), transport.ErrRoomNotFound)
}

func TestTransport_Touch(t *testing.T) {
	ctx := context.Background()
	tr := newTestTransport(t, setupTestStore(t), nil, time.Hour)
	createRoom(t, tr, "R1abcd")

	at := time.Now().Add(time.Minute).UTC()
	require.NoError(t, tr.Touch(ctx, "R1abcd", at))

	room, err := tr.GetRoom(ctx, "R1abcd")
	require.NoError(t, err)
	assert.Equal(t, at.UnixMilli(), room.LastUpdatedAt.UnixMilli())
	assert.Equal(t, int64(1), room.Version)
}

func TestTransport_Close(t *testing.T) {
	ctx := context.Background()
	tr := newTestTransport(t, setupTestStore(t), NewBus(nil), time.Hour)
	createRoom(t, tr, "R1abcd")

	_, err := tr.Subscribe(ctx, "R1abcd", models.DataTypePlayers, func(*models.SyncRecord) {})
	require.NoError(t, err)

	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close())

	_, err = tr.Get(ctx, "R1abcd", models.DataTypePlayers)
	assert.ErrorIs(t, err, transport.ErrClosed)

	_, err = tr.Subscribe(ctx, "R1abcd", models.DataTypePlayers, func(*models.SyncRecord) {})
	assert.ErrorIs(t, err, transport.ErrClosed)
}

func TestTransport_ReleasesBusChannels(t *testing.T) {
	ctx := context.Background()
	bus := NewBus(nil)
	tr := newTestTransport(t, setupTestStore(t), bus, time.Hour)

	for _, roomID := range []string{"R1abcd", "R2abcd", "R3abcd"} {
		createRoom(t, tr, roomID)

		unsubRecords, err := tr.Subscribe(ctx, roomID, models.DataTypePlayers, func(*models.SyncRecord) {})
		require.NoError(t, err)
		unsubPresence, err := tr.SubscribePresence(ctx, roomID, func([]models.Participant) {})
		require.NoError(t, err)

		// Канал комнаты и глобальный канал
		assert.Equal(t, 2, bus.Channels())
		assert.Equal(t, 1, bus.Listeners(RoomChannel(roomID)))

		unsubRecords()
		unsubPresence()
		assert.Zero(t, bus.Channels(), "room %s left a channel behind", roomID)
	}
}
