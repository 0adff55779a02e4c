package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/storage"
)

// UpsertParticipant adds or overwrites a participant.
// Returns ErrRoomNotFound if the room doesn't exist
func (s *Storage) UpsertParticipant(ctx context.Context, p models.Participant) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	exists, err := roomExists(ctx, tx, p.RoomID)
	if err != nil {
		return err
	}
	if !exists {
		return storage.ErrRoomNotFound
	}

	query := `
		INSERT INTO participants (room_id, id, name, is_host, device_id, joined_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (room_id, id) DO UPDATE SET
			name = excluded.name,
			is_host = excluded.is_host,
			device_id = excluded.device_id,
			joined_at = excluded.joined_at
	`

	_, err = tx.ExecContext(ctx, query,
		p.RoomID,
		p.ID,
		p.Name,
		boolToInt(p.IsHost),
		p.DeviceID,
		timeToMillis(p.JoinedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert participant: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit participant: %w", err)
	}

	return nil
}

// DeleteParticipant removes a participant from the room
func (s *Storage) DeleteParticipant(ctx context.Context, roomID, participantID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM participants WHERE room_id = ? AND id = ?`,
		roomID, participantID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}

	return nil
}

// ListParticipants returns participants of the room ordered by join time
func (s *Storage) ListParticipants(ctx context.Context, roomID string) ([]models.Participant, error) {
	query := `
		SELECT room_id, id, name, is_host, device_id, joined_at
		FROM participants
		WHERE room_id = ?
		ORDER BY joined_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		var p models.Participant
		var isHost int
		var joinedAt int64

		if err := rows.Scan(&p.RoomID, &p.ID, &p.Name, &isHost, &p.DeviceID, &joinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}

		p.IsHost = intToBool(isHost)
		p.JoinedAt = millisToTime(joinedAt)
		participants = append(participants, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return participants, nil
}
