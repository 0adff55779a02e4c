package storage

import (
	"context"
	"time"

	"github.com/iudanet/chipsync/internal/models"
)

// IdentityStorage defines interface for issued anonymous identities
type IdentityStorage interface {
	// CreateIdentity stores a newly issued identity
	CreateIdentity(ctx context.Context, identity *models.Identity) error

	// GetIdentity retrieves identity by participant id
	GetIdentity(ctx context.Context, participantID string) (*models.Identity, error)

	// TouchIdentity updates last_seen_at of the identity
	TouchIdentity(ctx context.Context, participantID string, at time.Time) error
}
