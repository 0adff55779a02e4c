package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/chipsync/internal/models"
)

// MaxLogEntries is how many sync log entries are retained.
const MaxLogEntries = 500

// AppendLog adds an entry under the next sequence number and drops the oldest one
// beyond MaxLogEntries.
func (s *Storage) AppendLog(ctx context.Context, entry models.LogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}

	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketSyncLog)
		if err != nil {
			return err
		}

		seq, err := b.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to get next sequence: %w", err)
		}

		if err := b.Put(seqKey(seq), data); err != nil {
			return fmt.Errorf("failed to append log entry: %w", err)
		}

		if seq > MaxLogEntries {
			if err := b.Delete(seqKey(seq - MaxLogEntries)); err != nil {
				return fmt.Errorf("failed to trim sync log: %w", err)
			}
		}
		return nil
	})
}

// ListLogs returns up to limit most recent entries, newest first
func (s *Storage) ListLogs(ctx context.Context, limit int) ([]models.LogEntry, error) {
	var entries []models.LogEntry

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketSyncLog)
		if err != nil {
			return err
		}

		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(entries) >= limit {
				break
			}

			var entry models.LogEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("failed to unmarshal log entry: %w", err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sync log: %w", err)
	}

	return entries, nil
}

// seqKey кодирует номер так, чтобы порядок ключей совпадал с порядком записей
func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
