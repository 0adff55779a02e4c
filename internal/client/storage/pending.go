package storage

import (
	"context"

	"github.com/iudanet/chipsync/internal/models"
)

// PendingStorage keeps saves that did not reach the shared transport.
// At most one pending write exists per {room, dataType}: a newer one replaces it.
type PendingStorage interface {
	// SavePending stores or replaces the pending write under its key
	SavePending(ctx context.Context, write *models.PendingWrite) error

	// ListPending returns pending writes of the room ordered by creation time.
	// An empty roomID returns all of them
	ListPending(ctx context.Context, roomID string) ([]*models.PendingWrite, error)

	// DeletePending removes the pending write. Missing keys are ignored
	DeletePending(ctx context.Context, roomID string, dataType models.DataType) error
}
