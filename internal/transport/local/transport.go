// Package local implements the broadcast + polling transport: a shared SQLite
// store visible to every device on the machine, an in-process broadcast bus for
// fast fan-out, and a polling loop that re-reads room versions so that missed
// broadcasts never prevent convergence.
package local

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/storage"
	"github.com/iudanet/chipsync/internal/transport"
)

// Name is the configuration name of this transport.
const Name = "local"

// DefaultPollInterval is used when Options.PollInterval is not set.
const DefaultPollInterval = 3 * time.Second

// Options configures the transport.
type Options struct {
	// Bus is the broadcast bus. Nil means broadcast is unavailable and
	// convergence relies on polling alone.
	Bus *Bus

	Logger *slog.Logger

	// PollInterval bounds how long a missed broadcast stays undetected.
	PollInterval time.Duration
}

// Transport is the local broadcast + polling transport.
type Transport struct {
	store        storage.RoomStorage
	bus          *Bus
	logger       *slog.Logger
	rooms        map[string]*roomWatch
	id           string
	pollInterval time.Duration
	mu           sync.Mutex
	closed       bool
}

var _ transport.Transport = (*Transport)(nil)

// New creates a transport over the shared store. The store is not closed by Close.
func New(store storage.RoomStorage, opts Options) *Transport {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}

	t := &Transport{
		store:        store,
		bus:          opts.Bus,
		logger:       opts.Logger.With("transport", Name),
		rooms:        make(map[string]*roomWatch),
		id:           uuid.New().String(),
		pollInterval: opts.PollInterval,
	}

	return t
}

// Name returns the transport kind.
func (t *Transport) Name() string {
	return Name
}

// CreateRoom creates the room with its initial records.
func (t *Transport) CreateRoom(ctx context.Context, room *models.Room, records []*models.SyncRecord) error {
	if err := t.checkOpen(); err != nil {
		return err
	}

	if err := t.store.CreateRoom(ctx, room, records); err != nil {
		if errors.Is(err, storage.ErrRoomAlreadyExists) {
			return transport.ErrRoomExists
		}
		return fmt.Errorf("%w: failed to create room: %v", transport.ErrTransportUnavailable, err)
	}

	t.postGlobal(Message{Type: MessageRoomCreated, RoomID: room.ID})
	t.logger.Debug("Room created", "room_id", room.ID)

	return nil
}

// GetRoom returns the room with its participants.
func (t *Transport) GetRoom(ctx context.Context, roomID string) (*models.Room, error) {
	if err := t.checkOpen(); err != nil {
		return nil, err
	}

	room, err := t.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, translateRead(err)
	}

	participants, err := t.store.ListParticipants(ctx, roomID)
	if err != nil {
		return nil, translateRead(err)
	}
	room.Participants = participants

	return room, nil
}

// RoomExists reports whether the room exists.
func (t *Transport) RoomExists(ctx context.Context, roomID string) (bool, error) {
	if err := t.checkOpen(); err != nil {
		return false, err
	}

	exists, err := t.store.RoomExists(ctx, roomID)
	if err != nil {
		return false, translateRead(err)
	}
	return exists, nil
}

// DeleteRoom removes the room with its records and presence.
func (t *Transport) DeleteRoom(ctx context.Context, roomID string) error {
	if err := t.checkOpen(); err != nil {
		return err
	}

	if err := t.store.DeleteRoom(ctx, roomID); err != nil {
		return translateWrite(err)
	}

	t.postRoom(roomID, Message{Type: MessageRoomClosed, RoomID: roomID})
	t.postGlobal(Message{Type: MessageRoomClosed, RoomID: roomID})

	if w := t.lookup(roomID); w != nil {
		w.refreshPresence(ctx)
	}

	t.logger.Debug("Room deleted", "room_id", roomID)
	return nil
}

// Touch rewrites the room's lastUpdatedAt.
func (t *Transport) Touch(ctx context.Context, roomID string, at time.Time) error {
	if err := t.checkOpen(); err != nil {
		return err
	}

	if err := t.store.TouchRoom(ctx, roomID, at); err != nil {
		return translateWrite(err)
	}
	return nil
}

// RoomVersion returns the current room version.
func (t *Transport) RoomVersion(ctx context.Context, roomID string) (int64, error) {
	if err := t.checkOpen(); err != nil {
		return 0, err
	}

	version, err := t.store.RoomVersion(ctx, roomID)
	if err != nil {
		return 0, translateRead(err)
	}
	return version, nil
}

// Put stores the record with a new room version and broadcasts it.
func (t *Transport) Put(ctx context.Context, record *models.SyncRecord) error {
	if err := t.checkOpen(); err != nil {
		return err
	}

	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now().UTC()
	}

	if _, err := t.store.PutRecord(ctx, record); err != nil {
		return translateWrite(err)
	}

	t.postRoom(record.RoomID, Message{
		Type:      MessageDataUpdate,
		RoomID:    record.RoomID,
		DataType:  record.DataType,
		Version:   record.Version,
		Payload:   record.Payload,
		UpdatedBy: record.UpdatedBy,
		UpdatedAt: record.UpdatedAt,
	})

	// Свои подписчики получают запись сразу, без шины
	if w := t.lookup(record.RoomID); w != nil {
		w.deliver(record)
	}

	return nil
}

// Get returns the current record.
func (t *Transport) Get(ctx context.Context, roomID string, dataType models.DataType) (*models.SyncRecord, error) {
	if err := t.checkOpen(); err != nil {
		return nil, err
	}

	record, err := t.store.GetRecord(ctx, roomID, dataType)
	if err != nil {
		return nil, translateRead(err)
	}
	return record, nil
}

// Subscribe delivers the current record, then every newer one observed
// through the bus or the polling loop.
func (t *Transport) Subscribe(ctx context.Context, roomID string, dataType models.DataType, fn transport.RecordHandler) (func(), error) {
	w, err := t.acquire(ctx, roomID)
	if err != nil {
		return nil, err
	}

	remove := w.records.Add(dataType, func(r *models.SyncRecord) { fn(r) })
	unsubscribe := t.releaser(w, remove)

	record, err := t.store.GetRecord(ctx, roomID, dataType)
	switch {
	case err == nil:
		w.markDelivered(record)
		fn(record)
	case errors.Is(err, storage.ErrRecordNotFound):
	default:
		unsubscribe()
		return nil, translateRead(err)
	}

	return unsubscribe, nil
}

// Register adds or overwrites a participant.
func (t *Transport) Register(ctx context.Context, p models.Participant) error {
	if err := t.checkOpen(); err != nil {
		return err
	}

	if err := t.store.UpsertParticipant(ctx, p); err != nil {
		return translateWrite(err)
	}

	t.presenceChanged(ctx, p.RoomID)
	return nil
}

// Deregister removes a participant. The host role is not reassigned.
func (t *Transport) Deregister(ctx context.Context, roomID, participantID string) error {
	if err := t.checkOpen(); err != nil {
		return err
	}

	if err := t.store.DeleteParticipant(ctx, roomID, participantID); err != nil {
		return translateWrite(err)
	}

	t.presenceChanged(ctx, roomID)
	return nil
}

// ListPresence returns the participants of the room.
func (t *Transport) ListPresence(ctx context.Context, roomID string) ([]models.Participant, error) {
	if err := t.checkOpen(); err != nil {
		return nil, err
	}

	participants, err := t.store.ListParticipants(ctx, roomID)
	if err != nil {
		return nil, translateRead(err)
	}
	return participants, nil
}

// SubscribePresence delivers the participant list now and on every change.
func (t *Transport) SubscribePresence(ctx context.Context, roomID string, fn func([]models.Participant)) (func(), error) {
	w, err := t.acquire(ctx, roomID)
	if err != nil {
		return nil, err
	}

	remove := w.presence.Add(fn)
	unsubscribe := t.releaser(w, remove)

	participants, err := t.store.ListParticipants(ctx, roomID)
	if err != nil {
		unsubscribe()
		return nil, translateRead(err)
	}
	w.setPresence(participants)
	fn(participants)

	return unsubscribe, nil
}

// Close stops every room watch. Subsequent calls fail with ErrClosed.
func (t *Transport) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	watches := make([]*roomWatch, 0, len(t.rooms))
	for _, w := range t.rooms {
		watches = append(watches, w)
	}
	t.rooms = make(map[string]*roomWatch)
	t.mu.Unlock()

	for _, w := range watches {
		w.stop()
	}

	return nil
}

func (t *Transport) checkOpen() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return transport.ErrClosed
	}
	return nil
}

func (t *Transport) lookup(roomID string) *roomWatch {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.rooms[roomID]
}

// acquire returns the watch of the room, starting it on first use.
func (t *Transport) acquire(ctx context.Context, roomID string) (*roomWatch, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, transport.ErrClosed
	}

	w, ok := t.rooms[roomID]
	if !ok {
		w = newRoomWatch(t, roomID)
		t.rooms[roomID] = w
		w.start(ctx)
	}
	w.refs++

	return w, nil
}

// releaser wraps remove so that the watch stops with its last subscriber.
func (t *Transport) releaser(w *roomWatch, remove func()) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			remove()

			t.mu.Lock()
			w.refs--
			last := w.refs == 0
			if last && t.rooms[w.roomID] == w {
				delete(t.rooms, w.roomID)
			}
			t.mu.Unlock()

			if last {
				w.stop()
			}
		})
	}
}

func (t *Transport) presenceChanged(ctx context.Context, roomID string) {
	t.postRoom(roomID, Message{Type: MessagePresenceChanged, RoomID: roomID})

	if w := t.lookup(roomID); w != nil {
		w.refreshPresence(ctx)
	}
}

func (t *Transport) postRoom(roomID string, msg Message) {
	if t.bus == nil {
		return
	}
	msg.Sender = t.id
	t.bus.Post(RoomChannel(roomID), msg)
}

func (t *Transport) postGlobal(msg Message) {
	if t.bus == nil {
		return
	}
	msg.Sender = t.id
	t.bus.Post(GlobalChannel, msg)
}

func translateRead(err error) error {
	switch {
	case errors.Is(err, storage.ErrRoomNotFound):
		return transport.ErrRoomNotFound
	case errors.Is(err, storage.ErrRecordNotFound):
		return transport.ErrRecordNotFound
	default:
		return fmt.Errorf("%w: %v", transport.ErrReadFailed, err)
	}
}

func translateWrite(err error) error {
	if errors.Is(err, storage.ErrRoomNotFound) {
		return transport.ErrRoomNotFound
	}
	return fmt.Errorf("%w: %v", transport.ErrWriteFailed, err)
}
