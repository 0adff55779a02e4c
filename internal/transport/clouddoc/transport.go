// Package clouddoc implements the remote document-store transport: one document
// per room, one per {room, dataType} and one per participant, with changes
// pushed to subscribers by the store. Payload nesting is flattened on write.
package clouddoc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/presence"
	"github.com/iudanet/chipsync/internal/transport"
)

// Name is the configuration name of this transport.
const Name = "clouddoc"

// Options configures the transport.
type Options struct {
	Logger *slog.Logger
}

// Transport is the push-based document transport.
type Transport struct {
	store  Store
	logger *slog.Logger
	rooms  map[string]*docWatch
	mu     sync.Mutex
	closed bool
}

var _ transport.Transport = (*Transport)(nil)

// New creates a transport over the store. The store is not closed by Close.
func New(store Store, opts Options) *Transport {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Transport{
		store:  store,
		logger: opts.Logger.With("transport", Name),
		rooms:  make(map[string]*docWatch),
	}
}

// Name returns the transport kind.
func (t *Transport) Name() string {
	return Name
}

// CreateRoom writes the room document and the flattened record documents.
func (t *Transport) CreateRoom(ctx context.Context, room *models.Room, records []*models.SyncRecord) error {
	if err := t.checkOpen(); err != nil {
		return err
	}

	docs := make([]RecordDoc, 0, len(records))
	for _, record := range records {
		doc, err := toRecordDoc(record)
		if err != nil {
			return err
		}
		doc.CreatedAt = record.UpdatedAt
		docs = append(docs, doc)
	}

	roomDoc := RoomDoc{
		ID:                room.ID,
		HostParticipantID: room.HostParticipantID,
		Version:           room.Version,
		CreatedAt:         room.CreatedAt,
		LastUpdatedAt:     room.LastUpdatedAt,
	}

	if err := t.store.CreateRoom(ctx, roomDoc, docs); err != nil {
		if errors.Is(err, ErrDocExists) {
			return transport.ErrRoomExists
		}
		return fmt.Errorf("%w: failed to create room: %v", transport.ErrTransportUnavailable, err)
	}

	t.logger.Debug("Room created", "room_id", room.ID)
	return nil
}

// GetRoom returns the room with its participants.
func (t *Transport) GetRoom(ctx context.Context, roomID string) (*models.Room, error) {
	if err := t.checkOpen(); err != nil {
		return nil, err
	}

	doc, err := t.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, translateRead(err, transport.ErrRoomNotFound)
	}

	participants, err := t.listParticipants(ctx, roomID)
	if err != nil {
		return nil, err
	}

	return &models.Room{
		ID:                doc.ID,
		HostParticipantID: doc.HostParticipantID,
		Version:           doc.Version,
		CreatedAt:         doc.CreatedAt,
		LastUpdatedAt:     doc.LastUpdatedAt,
		Participants:      participants,
	}, nil
}

// RoomExists reports whether the room document exists.
func (t *Transport) RoomExists(ctx context.Context, roomID string) (bool, error) {
	if err := t.checkOpen(); err != nil {
		return false, err
	}

	_, err := t.store.GetRoom(ctx, roomID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrDocNotFound):
		return false, nil
	default:
		return false, translateRead(err, transport.ErrRoomNotFound)
	}
}

// DeleteRoom removes the room with its records and presence.
func (t *Transport) DeleteRoom(ctx context.Context, roomID string) error {
	if err := t.checkOpen(); err != nil {
		return err
	}

	if err := t.store.DeleteRoom(ctx, roomID); err != nil {
		return translateWrite(err)
	}

	if w := t.lookup(roomID); w != nil {
		w.refreshPresence(ctx)
	}

	t.logger.Debug("Room deleted", "room_id", roomID)
	return nil
}

// Touch rewrites lastUpdatedAt of the room document.
func (t *Transport) Touch(ctx context.Context, roomID string, at time.Time) error {
	if err := t.checkOpen(); err != nil {
		return err
	}

	if err := t.store.TouchRoom(ctx, roomID, at); err != nil {
		return translateWrite(err)
	}
	return nil
}

// RoomVersion returns the version field of the room document.
func (t *Transport) RoomVersion(ctx context.Context, roomID string) (int64, error) {
	if err := t.checkOpen(); err != nil {
		return 0, err
	}

	doc, err := t.store.GetRoom(ctx, roomID)
	if err != nil {
		return 0, translateRead(err, transport.ErrRoomNotFound)
	}
	return doc.Version, nil
}

// Put flattens the payload and writes the record document with a new room version.
func (t *Transport) Put(ctx context.Context, record *models.SyncRecord) error {
	if err := t.checkOpen(); err != nil {
		return err
	}

	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now().UTC()
	}

	doc, err := toRecordDoc(record)
	if err != nil {
		return err
	}

	version, err := t.store.PutRecord(ctx, doc)
	if err != nil {
		return translateWrite(err)
	}
	record.Version = version

	if w := t.lookup(record.RoomID); w != nil {
		w.deliver(record.Clone())
	}

	return nil
}

// Get reads the record document and restores its payload.
func (t *Transport) Get(ctx context.Context, roomID string, dataType models.DataType) (*models.SyncRecord, error) {
	if err := t.checkOpen(); err != nil {
		return nil, err
	}

	doc, err := t.store.GetRecord(ctx, roomID, dataType)
	if err != nil {
		return nil, translateRead(err, transport.ErrRecordNotFound)
	}

	return fromRecordDoc(doc)
}

// Subscribe delivers the current record and every newer one pushed by the store.
func (t *Transport) Subscribe(ctx context.Context, roomID string, dataType models.DataType, fn transport.RecordHandler) (func(), error) {
	w, err := t.acquire(roomID)
	if err != nil {
		return nil, err
	}

	remove := w.records.Add(dataType, func(r *models.SyncRecord) { fn(r) })
	unsubscribe := t.releaser(w, remove)

	record, err := t.Get(ctx, roomID, dataType)
	switch {
	case err == nil:
		w.markDelivered(record)
		fn(record)
	case errors.Is(err, transport.ErrRecordNotFound):
	default:
		unsubscribe()
		return nil, err
	}

	return unsubscribe, nil
}

// Register writes the participant document.
func (t *Transport) Register(ctx context.Context, p models.Participant) error {
	if err := t.checkOpen(); err != nil {
		return err
	}

	if err := t.store.PutPresence(ctx, presenceDoc(p)); err != nil {
		return translateWrite(err)
	}

	if w := t.lookup(p.RoomID); w != nil {
		w.refreshPresence(ctx)
	}
	return nil
}

// Deregister removes the participant document. The host role is not reassigned.
func (t *Transport) Deregister(ctx context.Context, roomID, participantID string) error {
	if err := t.checkOpen(); err != nil {
		return err
	}

	if err := t.store.DeletePresence(ctx, roomID, participantID); err != nil {
		return translateWrite(err)
	}

	if w := t.lookup(roomID); w != nil {
		w.refreshPresence(ctx)
	}
	return nil
}

// ListPresence returns the participants of the room.
func (t *Transport) ListPresence(ctx context.Context, roomID string) ([]models.Participant, error) {
	if err := t.checkOpen(); err != nil {
		return nil, err
	}
	return t.listParticipants(ctx, roomID)
}

// SubscribePresence delivers the participant list now and on every pushed change.
func (t *Transport) SubscribePresence(ctx context.Context, roomID string, fn func([]models.Participant)) (func(), error) {
	w, err := t.acquire(roomID)
	if err != nil {
		return nil, err
	}

	remove := w.presence.Add(fn)
	unsubscribe := t.releaser(w, remove)

	participants, err := t.listParticipants(ctx, roomID)
	if err != nil {
		unsubscribe()
		return nil, err
	}
	w.members.Replace(participants)
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
	watches := make([]*docWatch, 0, len(t.rooms))
	for _, w := range t.rooms {
		watches = append(watches, w)
	}
	t.rooms = make(map[string]*docWatch)
	t.mu.Unlock()

	for _, w := range watches {
		w.stop()
	}

	return nil
}

func (t *Transport) listParticipants(ctx context.Context, roomID string) ([]models.Participant, error) {
	docs, err := t.store.ListPresence(ctx, roomID)
	if err != nil {
		return nil, translateRead(err, transport.ErrRoomNotFound)
	}

	participants := make([]models.Participant, 0, len(docs))
	for _, doc := range docs {
		participants = append(participants, doc.participant())
	}
	presence.Sort(participants)

	return participants, nil
}

func (t *Transport) checkOpen() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return transport.ErrClosed
	}
	return nil
}

func (t *Transport) lookup(roomID string) *docWatch {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.rooms[roomID]
}

func (t *Transport) acquire(roomID string) (*docWatch, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, transport.ErrClosed
	}

	w, ok := t.rooms[roomID]
	if !ok {
		var err error
		w, err = startDocWatch(t, roomID)
		if err != nil {
			return nil, err
		}
		t.rooms[roomID] = w
	}
	w.refs++

	return w, nil
}

func (t *Transport) releaser(w *docWatch, remove func()) func() {
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

func toRecordDoc(record *models.SyncRecord) (RecordDoc, error) {
	data, err := encodeDocument(record.Payload)
	if err != nil {
		return RecordDoc{}, err
	}

	return RecordDoc{
		ID:        models.RecordKey(record.RoomID, record.DataType),
		SessionID: record.RoomID,
		DataType:  record.DataType,
		Data:      data,
		UpdatedBy: record.UpdatedBy,
		Version:   record.Version,
		UpdatedAt: record.UpdatedAt,
	}, nil
}

func fromRecordDoc(doc *RecordDoc) (*models.SyncRecord, error) {
	payload, err := decodeDocument(doc.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: record %s: %v", transport.ErrReadFailed, doc.ID, err)
	}

	return &models.SyncRecord{
		RoomID:    doc.SessionID,
		DataType:  doc.DataType,
		Payload:   payload,
		UpdatedBy: doc.UpdatedBy,
		Version:   doc.Version,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

func translateRead(err, notFound error) error {
	if errors.Is(err, ErrDocNotFound) {
		return notFound
	}
	return fmt.Errorf("%w: %v", transport.ErrReadFailed, err)
}

func translateWrite(err error) error {
	if errors.Is(err, ErrDocNotFound) {
		return transport.ErrRoomNotFound
	}
	return fmt.Errorf("%w: %v", transport.ErrWriteFailed, err)
}
