package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/storage"
)

// CreateIdentity stores a newly issued identity
func (s *Storage) CreateIdentity(ctx context.Context, identity *models.Identity) error {
	query := `
		INSERT INTO identities (participant_id, device_id, created_at, last_seen_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		identity.ParticipantID,
		identity.DeviceID,
		timeToMillis(identity.CreatedAt),
		timeToMillis(identity.LastSeenAt),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrIdentityAlreadyExists
		}
		return fmt.Errorf("failed to create identity: %w", err)
	}

	return nil
}

// GetIdentity retrieves identity by participant id
func (s *Storage) GetIdentity(ctx context.Context, participantID string) (*models.Identity, error) {
	query := `
		SELECT participant_id, device_id, created_at, last_seen_at
		FROM identities
		WHERE participant_id = ?
	`

	identity := &models.Identity{}
	var createdAt, lastSeenAt int64

	err := s.db.QueryRowContext(ctx, query, participantID).Scan(
		&identity.ParticipantID,
		&identity.DeviceID,
		&createdAt,
		&lastSeenAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	identity.CreatedAt = millisToTime(createdAt)
	identity.LastSeenAt = millisToTime(lastSeenAt)

	return identity, nil
}

// TouchIdentity updates last_seen_at of the identity
func (s *Storage) TouchIdentity(ctx context.Context, participantID string, at time.Time) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE identities SET last_seen_at = ? WHERE participant_id = ?`,
		timeToMillis(at), participantID,
	)
	if err != nil {
		return fmt.Errorf("failed to touch identity: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrIdentityNotFound
	}

	return nil
}
