package local

import (
	"context"
	"errors"
	"sync"

	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/notify"
	"github.com/iudanet/chipsync/internal/poll"
	"github.com/iudanet/chipsync/internal/presence"
	"github.com/iudanet/chipsync/internal/storage"
)

// roomWatch keeps subscribers of one room up to date from the bus and the poll loop.
type roomWatch struct {
	t         *Transport
	members   *presence.Set
	delivered map[models.DataType]int64
	loop      *poll.Loop
	unlisten  []func()
	records   notify.Topics[models.DataType, *models.SyncRecord]
	presence  notify.Listeners[[]models.Participant]
	roomID    string
	version   int64 // последняя версия комнаты, просмотренная опросом
	refs      int   // guarded by t.mu
	mu        sync.Mutex
}

func newRoomWatch(t *Transport, roomID string) *roomWatch {
	w := &roomWatch{
		t:         t,
		roomID:    roomID,
		members:   presence.NewSet(),
		delivered: make(map[models.DataType]int64),
	}
	w.loop = poll.New("local-room-"+roomID, t.pollInterval, w.poll, t.logger)
	return w
}

func (w *roomWatch) start(ctx context.Context) {
	version, err := w.t.store.RoomVersion(ctx, w.roomID)
	if err != nil && !errors.Is(err, storage.ErrRoomNotFound) {
		w.t.logger.Warn("Failed to read initial room version", "room_id", w.roomID, "error", err)
	}
	w.mu.Lock()
	w.version = version
	w.mu.Unlock()

	if w.t.bus != nil {
		w.unlisten = append(w.unlisten,
			w.t.bus.Listen(RoomChannel(w.roomID), w.t.id, w.onRoomMessage),
			w.t.bus.Listen(GlobalChannel, w.t.id, w.onGlobalMessage),
		)
	}

	// Цикл живет дольше запроса, поэтому не наследует его контекст
	w.loop.Start(context.Background())
}

func (w *roomWatch) stop() {
	w.loop.Stop()
	for _, unlisten := range w.unlisten {
		unlisten()
	}
	w.records.Clear()
	w.presence.Clear()
}

func (w *roomWatch) onRoomMessage(msg Message) {
	switch msg.Type {
	case MessageDataUpdate:
		if msg.RoomID == w.roomID {
			w.deliver(msg.Record())
		}
	case MessagePresenceChanged, MessageRoomClosed:
		w.refreshPresence(context.Background())
	}
}

func (w *roomWatch) onGlobalMessage(msg Message) {
	if msg.Type == MessageRoomClosed && msg.RoomID == w.roomID {
		w.loop.Trigger()
	}
}

// deliver notifies subscribers if the record is newer than the last one delivered.
func (w *roomWatch) deliver(record *models.SyncRecord) {
	w.mu.Lock()
	if record.Version <= w.delivered[record.DataType] {
		w.mu.Unlock()
		return
	}
	w.delivered[record.DataType] = record.Version
	w.mu.Unlock()

	w.records.Notify(record.DataType, record.Clone())
}

func (w *roomWatch) markDelivered(record *models.SyncRecord) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if record.Version > w.delivered[record.DataType] {
		w.delivered[record.DataType] = record.Version
	}
}

// poll re-reads the room version and fetches records changed since the last look.
func (w *roomWatch) poll(ctx context.Context) error {
	version, err := w.t.store.RoomVersion(ctx, w.roomID)
	if err != nil {
		if errors.Is(err, storage.ErrRoomNotFound) {
			w.refreshPresence(ctx)
			return nil
		}
		return err
	}

	w.mu.Lock()
	since := w.version
	w.mu.Unlock()

	if version > since {
		records, err := w.t.store.ListRecordsSince(ctx, w.roomID, since)
		if err != nil {
			return err
		}
		for _, record := range records {
			w.deliver(record)
		}

		w.mu.Lock()
		if version > w.version {
			w.version = version
		}
		w.mu.Unlock()

		w.t.logger.Debug("Poll picked up changes",
			"room_id", w.roomID, "from_version", since, "to_version", version, "records", len(records))
	}

	w.refreshPresence(ctx)
	return nil
}

func (w *roomWatch) refreshPresence(ctx context.Context) {
	participants, err := w.t.store.ListParticipants(ctx, w.roomID)
	if err != nil {
		w.t.logger.Warn("Failed to refresh presence", "room_id", w.roomID, "error", err)
		return
	}

	if w.members.Replace(participants) {
		w.presence.Notify(participants)
	}
}

func (w *roomWatch) setPresence(participants []models.Participant) {
	w.members.Replace(participants)
}
