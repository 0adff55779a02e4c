package storage

import (
	"context"

	"github.com/iudanet/chipsync/internal/models"
)

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveKnownVersion saves the highest room version fully applied on this device
	SaveKnownVersion(ctx context.Context, roomID string, version int64) error

	// GetKnownVersion returns the known version of the room.
	// Returns 0 if the room was never synced
	GetKnownVersion(ctx context.Context, roomID string) (int64, error)

	// GetOrCreateDeviceID returns the persistent device id, generating it on first use
	GetOrCreateDeviceID(ctx context.Context) (string, error)

	// SaveSession stores the current room membership
	SaveSession(ctx context.Context, session *models.SessionState) error

	// GetSession returns the saved membership or ErrSessionNotFound
	GetSession(ctx context.Context) (*models.SessionState, error)

	// DeleteSession clears the saved membership. Missing session is not an error
	DeleteSession(ctx context.Context) error
}
