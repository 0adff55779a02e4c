// Package storage defines the shared store interfaces: rooms with their sync
// records and presence, and issued identities.
package storage

import (
	"context"
	"time"

	"github.com/iudanet/chipsync/internal/models"
)

//go:generate moq -out room_mock.go . RoomStorage

// RoomStorage defines interface for the shared room store
type RoomStorage interface {
	// CreateRoom creates the room together with its initial sync records in one transaction
	CreateRoom(ctx context.Context, room *models.Room, records []*models.SyncRecord) error

	// GetRoom retrieves room by id. Returns ErrRoomNotFound if room doesn't exist
	GetRoom(ctx context.Context, roomID string) (*models.Room, error)

	// RoomExists reports whether the room exists
	RoomExists(ctx context.Context, roomID string) (bool, error)

	// DeleteRoom removes the room, its records and participants
	DeleteRoom(ctx context.Context, roomID string) error

	// TouchRoom updates last_updated_at of the room (host heartbeat)
	TouchRoom(ctx context.Context, roomID string, at time.Time) error

	// RoomVersion returns the current room version
	RoomVersion(ctx context.Context, roomID string) (int64, error)

	// PutRecord increments the room version and upserts the record with it atomically.
	// Returns the version assigned to the record
	PutRecord(ctx context.Context, record *models.SyncRecord) (int64, error)

	// GetRecord retrieves record by room and data type. Returns ErrRecordNotFound if absent
	GetRecord(ctx context.Context, roomID string, dataType models.DataType) (*models.SyncRecord, error)

	// ListRecordsSince returns records written after the given room version
	ListRecordsSince(ctx context.Context, roomID string, version int64) ([]*models.SyncRecord, error)

	// UpsertParticipant adds or overwrites a participant of an existing room
	UpsertParticipant(ctx context.Context, p models.Participant) error

	// DeleteParticipant removes a participant; removing an absent one is not an error
	DeleteParticipant(ctx context.Context, roomID, participantID string) error

	// ListParticipants returns participants ordered by join time
	ListParticipants(ctx context.Context, roomID string) ([]models.Participant, error)
}
