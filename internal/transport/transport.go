// Package transport defines the interchangeable mechanisms that propagate
// sync records and presence between devices.
package transport

import (
	"context"
	"time"

	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/presence"
)

//go:generate moq -out transport_mock.go . Transport

// RecordHandler receives records delivered by a subscription.
// Records arrive with the outer text payload; nested structure is already restored.
type RecordHandler func(record *models.SyncRecord)

// Transport is the shared store plus notification mechanism used by the room manager.
type Transport interface {
	presence.Registry

	// Name returns the configured transport kind
	Name() string

	// CreateRoom creates the room and its initial records atomically.
	// Returns ErrRoomExists if the id is taken
	CreateRoom(ctx context.Context, room *models.Room, records []*models.SyncRecord) error

	// GetRoom returns the room or ErrRoomNotFound
	GetRoom(ctx context.Context, roomID string) (*models.Room, error)

	// RoomExists reports whether the room id is taken
	RoomExists(ctx context.Context, roomID string) (bool, error)

	// DeleteRoom removes the room, all its records and presence entries
	DeleteRoom(ctx context.Context, roomID string) error

	// Touch updates the room's lastUpdatedAt (host heartbeat)
	Touch(ctx context.Context, roomID string, at time.Time) error

	// RoomVersion returns the current room version
	RoomVersion(ctx context.Context, roomID string) (int64, error)

	// Put bumps the room version, stores the record with it and notifies subscribers.
	// record.Version is set to the assigned version
	Put(ctx context.Context, record *models.SyncRecord) error

	// Get returns the current record or ErrRecordNotFound
	Get(ctx context.Context, roomID string, dataType models.DataType) (*models.SyncRecord, error)

	// Subscribe delivers the current record immediately and every newer one afterwards
	Subscribe(ctx context.Context, roomID string, dataType models.DataType, fn RecordHandler) (func(), error)

	// Close stops background work and releases resources
	Close() error
}
