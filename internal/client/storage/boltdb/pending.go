package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/iudanet/chipsync/internal/models"
)

// SavePending stores or replaces the pending write under its key
func (s *Storage) SavePending(ctx context.Context, write *models.PendingWrite) error {
	data, err := json.Marshal(write)
	if err != nil {
		return fmt.Errorf("failed to marshal pending write: %w", err)
	}

	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketPending)
		if err != nil {
			return err
		}

		if err := b.Put([]byte(write.Key()), data); err != nil {
			return fmt.Errorf("failed to save pending write: %w", err)
		}
		return nil
	})
}

// ListPending returns pending writes of the room, oldest first
func (s *Storage) ListPending(ctx context.Context, roomID string) ([]*models.PendingWrite, error) {
	var writes []*models.PendingWrite

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketPending)
		if err != nil {
			return err
		}

		return b.ForEach(func(k, v []byte) error {
			var write models.PendingWrite
			if err := json.Unmarshal(v, &write); err != nil {
				return fmt.Errorf("failed to unmarshal pending write %s: %w", k, err)
			}
			if roomID == "" || write.RoomID == roomID {
				writes = append(writes, &write)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending writes: %w", err)
	}

	sort.SliceStable(writes, func(i, j int) bool {
		return writes[i].CreatedAt.Before(writes[j].CreatedAt)
	})

	return writes, nil
}

// DeletePending removes the pending write, missing keys are ignored
func (s *Storage) DeletePending(ctx context.Context, roomID string, dataType models.DataType) error {
	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketPending)
		if err != nil {
			return err
		}

		if err := b.Delete([]byte(models.RecordKey(roomID, dataType))); err != nil {
			return fmt.Errorf("failed to delete pending write: %w", err)
		}
		return nil
	})
}
