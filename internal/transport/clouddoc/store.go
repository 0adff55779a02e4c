package clouddoc

import (
	"context"
	"errors"
	"time"

	"github.com/iudanet/chipsync/internal/models"
)

// Document store errors
var (
	// ErrDocNotFound indicates that the document does not exist
	ErrDocNotFound = errors.New("document not found")

	// ErrDocExists indicates that the document already exists
	ErrDocExists = errors.New("document already exists")
)

// RoomDoc is the room document.
type RoomDoc struct {
	CreatedAt         time.Time `json:"createdAt"`
	LastUpdatedAt     time.Time `json:"lastUpdatedAt"`
	ID                string    `json:"id"`
	HostParticipantID string    `json:"hostParticipantId"`
	Version           int64     `json:"version"`
}

// RecordDoc is one document per {room, dataType}, keyed "{roomId}-{dataType}".
// Data holds the flattened payload text.
type RecordDoc struct {
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	ID        string          `json:"id"`
	SessionID string          `json:"sessionId"`
	DataType  models.DataType `json:"dataType"`
	Data      string          `json:"data"`
	UpdatedBy string          `json:"updatedBy"`
	Version   int64           `json:"version"`
}

// PresenceDoc is a participant document keyed by uid.
type PresenceDoc struct {
	JoinedAt  time.Time `json:"joinedAt"`
	UID       string    `json:"uid"`
	Name      string    `json:"name"`
	DeviceID  string    `json:"deviceId"`
	SessionID string    `json:"sessionId"`
	IsHost    bool      `json:"isHost"`
}

// ChangeKind describes what changed in a room.
type ChangeKind string

const (
	ChangeRecord   ChangeKind = "record"
	ChangePresence ChangeKind = "presence"
	ChangeRoom     ChangeKind = "room"
)

// Change is a push notification about a room.
type Change struct {
	Kind     ChangeKind      `json:"kind"`
	RoomID   string          `json:"roomId"`
	DataType models.DataType `json:"dataType,omitempty"`
	Version  int64           `json:"version,omitempty"`
}

// Store is a remote document store with push notifications.
type Store interface {
	// CreateRoom writes the room document and its record documents. ErrDocExists if taken
	CreateRoom(ctx context.Context, room RoomDoc, records []RecordDoc) error

	// GetRoom returns the room document or ErrDocNotFound
	GetRoom(ctx context.Context, roomID string) (*RoomDoc, error)

	// DeleteRoom deletes the room with its records and presence documents
	DeleteRoom(ctx context.Context, roomID string) error

	// TouchRoom updates lastUpdatedAt
	TouchRoom(ctx context.Context, roomID string, at time.Time) error

	// PutRecord increments the room version and upserts the record document with it
	PutRecord(ctx context.Context, doc RecordDoc) (int64, error)

	// GetRecord returns the record document or ErrDocNotFound
	GetRecord(ctx context.Context, roomID string, dataType models.DataType) (*RecordDoc, error)

	// PutPresence upserts a participant document of an existing room
	PutPresence(ctx context.Context, doc PresenceDoc) error

	// DeletePresence removes a participant document
	DeletePresence(ctx context.Context, roomID, uid string) error

	// ListPresence returns participant documents whose sessionId equals roomID
	ListPresence(ctx context.Context, roomID string) ([]PresenceDoc, error)

	// Watch streams changes of the room until ctx is done
	Watch(ctx context.Context, roomID string) (<-chan Change, error)

	// Close releases the connection
	Close() error
}

func (d PresenceDoc) participant() models.Participant {
	return models.Participant{
		ID:       d.UID,
		RoomID:   d.SessionID,
		Name:     d.Name,
		IsHost:   d.IsHost,
		JoinedAt: d.JoinedAt,
		DeviceID: d.DeviceID,
	}
}

func presenceDoc(p models.Participant) PresenceDoc {
	return PresenceDoc{
		UID:       p.ID,
		Name:      p.Name,
		IsHost:    p.IsHost,
		JoinedAt:  p.JoinedAt,
		DeviceID:  p.DeviceID,
		SessionID: p.RoomID,
	}
}
