package clouddoc

import (
	"context"
	"sync"
	"time"

	"github.com/iudanet/chipsync/internal/models"
)

// watchBuffer is the size of each watcher channel. Changes beyond it are dropped;
// the room manager's polling loop recovers from the gap.
const watchBuffer = 64

// MemoryStore is an in-process Store. Used for tests and single-process demos.
type MemoryStore struct {
	rooms    map[string]*RoomDoc
	records  map[string]*RecordDoc
	presence map[string]map[string]PresenceDoc
	watchers map[string]map[chan Change]struct{}
	mu       sync.Mutex
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms:    make(map[string]*RoomDoc),
		records:  make(map[string]*RecordDoc),
		presence: make(map[string]map[string]PresenceDoc),
		watchers: make(map[string]map[chan Change]struct{}),
	}
}

// CreateRoom writes the room and record documents.
func (s *MemoryStore) CreateRoom(ctx context.Context, room RoomDoc, records []RecordDoc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[room.ID]; ok {
		return ErrDocExists
	}

	r := room
	s.rooms[room.ID] = &r
	for _, doc := range records {
		d := doc
		s.records[d.ID] = &d
	}

	s.publishLocked(Change{Kind: ChangeRoom, RoomID: room.ID})
	return nil
}

// GetRoom returns a copy of the room document.
func (s *MemoryStore) GetRoom(ctx context.Context, roomID string) (*RoomDoc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return nil, ErrDocNotFound
	}
	r := *room
	return &r, nil
}

// DeleteRoom removes every document of the room.
func (s *MemoryStore) DeleteRoom(ctx context.Context, roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[roomID]; !ok {
		return ErrDocNotFound
	}

	delete(s.rooms, roomID)
	for _, dt := range models.AllDataTypes {
		delete(s.records, models.RecordKey(roomID, dt))
	}
	delete(s.presence, roomID)

	s.publishLocked(Change{Kind: ChangeRoom, RoomID: roomID})
	return nil
}

// TouchRoom updates lastUpdatedAt.
func (s *MemoryStore) TouchRoom(ctx context.Context, roomID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[roomID]
	if !ok {
		return ErrDocNotFound
	}
	room.LastUpdatedAt = at
	return nil
}

// PutRecord increments the room version and stores the document with it.
func (s *MemoryStore) PutRecord(ctx context.Context, doc RecordDoc) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[doc.SessionID]
	if !ok {
		return 0, ErrDocNotFound
	}

	room.Version++
	room.LastUpdatedAt = doc.UpdatedAt

	d := doc
	d.Version = room.Version
	if existing, ok := s.records[d.ID]; ok {
		d.CreatedAt = existing.CreatedAt
	} else {
		d.CreatedAt = doc.UpdatedAt
	}
	s.records[d.ID] = &d

	s.publishLocked(Change{Kind: ChangeRecord, RoomID: doc.SessionID, DataType: doc.DataType, Version: d.Version})
	return d.Version, nil
}

// GetRecord returns a copy of the record document.
func (s *MemoryStore) GetRecord(ctx context.Context, roomID string, dataType models.DataType) (*RecordDoc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.records[models.RecordKey(roomID, dataType)]
	if !ok {
		return nil, ErrDocNotFound
	}
	d := *doc
	return &d, nil
}

// PutPresence upserts a participant document.
func (s *MemoryStore) PutPresence(ctx context.Context, doc PresenceDoc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[doc.SessionID]; !ok {
		return ErrDocNotFound
	}

	members, ok := s.presence[doc.SessionID]
	if !ok {
		members = make(map[string]PresenceDoc)
		s.presence[doc.SessionID] = members
	}
	members[doc.UID] = doc

	s.publishLocked(Change{Kind: ChangePresence, RoomID: doc.SessionID})
	return nil
}

// DeletePresence removes a participant document.
func (s *MemoryStore) DeletePresence(ctx context.Context, roomID, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if members, ok := s.presence[roomID]; ok {
		delete(members, uid)
	}

	s.publishLocked(Change{Kind: ChangePresence, RoomID: roomID})
	return nil
}

// ListPresence returns participant documents of the room.
func (s *MemoryStore) ListPresence(ctx context.Context, roomID string) ([]PresenceDoc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := make([]PresenceDoc, 0, len(s.presence[roomID]))
	for _, doc := range s.presence[roomID] {
		docs = append(docs, doc)
	}
	return docs, nil
}

// Watch streams changes of the room until ctx is done.
func (s *MemoryStore) Watch(ctx context.Context, roomID string) (<-chan Change, error) {
	ch := make(chan Change, watchBuffer)

	s.mu.Lock()
	watchers, ok := s.watchers[roomID]
	if !ok {
		watchers = make(map[chan Change]struct{})
		s.watchers[roomID] = watchers
	}
	watchers[ch] = struct{}{}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()

		s.mu.Lock()
		delete(s.watchers[roomID], ch)
		if len(s.watchers[roomID]) == 0 {
			delete(s.watchers, roomID)
		}
		s.mu.Unlock()

		close(ch)
	}()

	return ch, nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// publishLocked sends the change to watchers without blocking. Caller holds s.mu.
func (s *MemoryStore) publishLocked(change Change) {
	for ch := range s.watchers[change.RoomID] {
		select {
		case ch <- change:
		default:
		}
	}
}

var _ Store = (*MemoryStore)(nil)
