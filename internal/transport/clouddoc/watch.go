package clouddoc

import (
	"context"
	"errors"
	"sync"

	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/notify"
	"github.com/iudanet/chipsync/internal/presence"
	"github.com/iudanet/chipsync/internal/transport"
)

// docWatch fans out the store's pushed changes of one room to subscribers.
type docWatch struct {
	t         *Transport
	members   *presence.Set
	delivered map[models.DataType]int64
	cancel    context.CancelFunc
	records   notify.Topics[models.DataType, *models.SyncRecord]
	presence  notify.Listeners[[]models.Participant]
	roomID    string
	refs      int // guarded by t.mu
	mu        sync.Mutex
}

func startDocWatch(t *Transport, roomID string) (*docWatch, error) {
	// Наблюдение живет дольше запроса
	watchCtx, cancel := context.WithCancel(context.Background())

	changes, err := t.store.Watch(watchCtx, roomID)
	if err != nil {
		cancel()
		return nil, translateRead(err, transport.ErrRoomNotFound)
	}

	w := &docWatch{
		t:         t,
		roomID:    roomID,
		members:   presence.NewSet(),
		delivered: make(map[models.DataType]int64),
		cancel:    cancel,
	}

	go w.run(watchCtx, changes)

	return w, nil
}

func (w *docWatch) run(ctx context.Context, changes <-chan Change) {
	for change := range changes {
		switch change.Kind {
		case ChangeRecord:
			w.fetch(ctx, change)
		case ChangePresence, ChangeRoom:
			w.refreshPresence(ctx)
		}
	}
}

// stop does not wait for run: a subscriber may unsubscribe from inside a callback.
func (w *docWatch) stop() {
	w.cancel()
	w.records.Clear()
	w.presence.Clear()
}

// fetch reads the changed record unless it was already delivered.
func (w *docWatch) fetch(ctx context.Context, change Change) {
	w.mu.Lock()
	seen := change.Version <= w.delivered[change.DataType]
	w.mu.Unlock()
	if seen || w.records.Len(change.DataType) == 0 {
		return
	}

	doc, err := w.t.store.GetRecord(ctx, w.roomID, change.DataType)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			w.t.logger.Warn("Failed to fetch changed record",
				"room_id", w.roomID, "data_type", change.DataType, "error", err)
		}
		return
	}

	record, err := fromRecordDoc(doc)
	if err != nil {
		w.t.logger.Warn("Failed to restore record", "room_id", w.roomID, "data_type", change.DataType, "error", err)
		return
	}

	w.deliver(record)
}

func (w *docWatch) deliver(record *models.SyncRecord) {
	w.mu.Lock()
	if record.Version <= w.delivered[record.DataType] {
		w.mu.Unlock()
		return
	}
	w.delivered[record.DataType] = record.Version
	w.mu.Unlock()

	w.records.Notify(record.DataType, record)
}

func (w *docWatch) markDelivered(record *models.SyncRecord) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if record.Version > w.delivered[record.DataType] {
		w.delivered[record.DataType] = record.Version
	}
}

func (w *docWatch) refreshPresence(ctx context.Context) {
	participants, err := w.t.listParticipants(ctx, w.roomID)
	if err != nil {
		w.t.logger.Warn("Failed to refresh presence", "room_id", w.roomID, "error", err)
		return
	}

	if w.members.Replace(participants) {
		w.presence.Notify(participants)
	}
}
