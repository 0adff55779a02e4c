package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/storage"
)

// CreateRoom creates the room together with its initial sync records.
// Returns ErrRoomAlreadyExists if the id is taken
func (s *Storage) CreateRoom(ctx context.Context, room *models.Room, records []*models.SyncRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	exists, err := roomExists(ctx, tx, room.ID)
	if err != nil {
		return err
	}
	if exists {
		return storage.ErrRoomAlreadyExists
	}

	query := `
		INSERT INTO rooms (id, host_participant_id, version, created_at, last_updated_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query,
		room.ID,
		room.HostParticipantID,
		room.Version,
		timeToMillis(room.CreatedAt),
		timeToMillis(room.LastUpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert room: %w", err)
	}

	for _, record := range records {
		if err := upsertRecord(ctx, tx, record); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit room: %w", err)
	}

	return nil
}

// GetRoom retrieves room by id
func (s *Storage) GetRoom(ctx context.Context, roomID string) (*models.Room, error) {
	query := `
		SELECT id, host_participant_id, version, created_at, last_updated_at
		FROM rooms
		WHERE id = ?
	`

	room := &models.Room{}
	var createdAt, lastUpdatedAt int64

	err := s.db.QueryRowContext(ctx, query, roomID).Scan(
		&room.ID,
		&room.HostParticipantID,
		&room.Version,
		&createdAt,
		&lastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	room.CreatedAt = millisToTime(createdAt)
	room.LastUpdatedAt = millisToTime(lastUpdatedAt)

	return room, nil
}

// RoomExists reports whether the room exists
func (s *Storage) RoomExists(ctx context.Context, roomID string) (bool, error) {
	return roomExists(ctx, s.db, roomID)
}

// DeleteRoom removes the room with all its records and participants.
// Returns ErrRoomNotFound if room doesn't exist
func (s *Storage) DeleteRoom(ctx context.Context, roomID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	// Удаляем явно, не полагаясь только на ON DELETE CASCADE
	if _, err := tx.ExecContext(ctx, `DELETE FROM participants WHERE room_id = ?`, roomID); err != nil {
		return fmt.Errorf("failed to delete participants: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sync_records WHERE room_id = ?`, roomID); err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, roomID)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrRoomNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit room deletion: %w", err)
	}

	return nil
}

// TouchRoom updates last_updated_at of the room
func (s *Storage) TouchRoom(ctx context.Context, roomID string, at time.Time) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE rooms SET last_updated_at = ? WHERE id = ?`,
		timeToMillis(at), roomID,
	)
	if err != nil {
		return fmt.Errorf("failed to touch room: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrRoomNotFound
	}

	return nil
}

// RoomVersion returns the current room version
func (s *Storage) RoomVersion(ctx context.Context, roomID string) (int64, error) {
	var version int64

	err := s.db.QueryRowContext(ctx, `SELECT version FROM rooms WHERE id = ?`, roomID).Scan(&version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrRoomNotFound
		}
		return 0, fmt.Errorf("failed to get room version: %w", err)
	}

	return version, nil
}

// PutRecord increments the room version and upserts the record with the new version.
// Both happen in one transaction, so two writers never commit the same version.
// record.Version is set to the assigned version
func (s *Storage) PutRecord(ctx context.Context, record *models.SyncRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	query := `
		UPDATE rooms
		SET version = version + 1, last_updated_at = ?
		WHERE id = ?
		RETURNING version
	`

	var version int64
	err = tx.QueryRowContext(ctx, query, timeToMillis(record.UpdatedAt), record.RoomID).Scan(&version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrRoomNotFound
		}
		return 0, fmt.Errorf("failed to increment room version: %w", err)
	}

	record.Version = version
	if err := upsertRecord(ctx, tx, record); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit record: %w", err)
	}

	return version, nil
}

// GetRecord retrieves record by room and data type
func (s *Storage) GetRecord(ctx context.Context, roomID string, dataType models.DataType) (*models.SyncRecord, error) {
	query := `
		SELECT room_id, data_type, payload, version, updated_by, updated_at
		FROM sync_records
		WHERE room_id = ? AND data_type = ?
	`

	record, err := scanRecord(s.db.QueryRowContext(ctx, query, roomID, string(dataType)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	return record, nil
}

// ListRecordsSince returns records with version greater than the given one
func (s *Storage) ListRecordsSince(ctx context.Context, roomID string, version int64) ([]*models.SyncRecord, error) {
	query := `
		SELECT room_id, data_type, payload, version, updated_by, updated_at
		FROM sync_records
		WHERE room_id = ? AND version > ?
		ORDER BY version ASC
	`

	rows, err := s.db.QueryContext(ctx, query, roomID, version)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []*models.SyncRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

func roomExists(ctx context.Context, q queryer, roomID string) (bool, error) {
	var exists int
	err := q.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM rooms WHERE id = ?)`, roomID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check room existence: %w", err)
	}
	return intToBool(exists), nil
}

func upsertRecord(ctx context.Context, tx *sql.Tx, record *models.SyncRecord) error {
	query := `
		INSERT INTO sync_records (room_id, data_type, payload, version, updated_by, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (room_id, data_type) DO UPDATE SET
			payload = excluded.payload,
			version = excluded.version,
			updated_by = excluded.updated_by,
			updated_at = excluded.updated_at
	`

	_, err := tx.ExecContext(ctx, query,
		record.RoomID,
		string(record.DataType),
		record.Payload,
		record.Version,
		record.UpdatedBy,
		timeToMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert record %s: %w", models.RecordKey(record.RoomID, record.DataType), err)
	}

	return nil
}

func scanRecord(row scanner) (*models.SyncRecord, error) {
	record := &models.SyncRecord{}
	var dataType string
	var updatedAt int64

	if err := row.Scan(
		&record.RoomID,
		&dataType,
		&record.Payload,
		&record.Version,
		&record.UpdatedBy,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	record.DataType = models.DataType(dataType)
	record.UpdatedAt = millisToTime(updatedAt)

	return record, nil
}
