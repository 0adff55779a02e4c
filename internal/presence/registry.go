// Package presence tracks which participants belong to a room.
package presence

import (
	"context"

	"github.com/iudanet/chipsync/internal/models"
)

// Registry is the presence part of a transport.
type Registry interface {
	// Register adds or overwrites a participant. Registering the same id twice
	// leaves exactly one entry (rejoin).
	Register(ctx context.Context, p models.Participant) error

	// Deregister removes a participant. The host role is never reassigned.
	Deregister(ctx context.Context, roomID, participantID string) error

	// ListPresence returns the current membership snapshot ordered by join time.
	ListPresence(ctx context.Context, roomID string) ([]models.Participant, error)

	// SubscribePresence delivers the membership snapshot immediately and on every change.
	SubscribePresence(ctx context.Context, roomID string, fn func([]models.Participant)) (func(), error)
}
