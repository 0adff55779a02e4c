package storage

import (
	"context"

	"github.com/iudanet/chipsync/internal/models"
)

// SyncLogStorage is an append-only journal of sync attempts.
type SyncLogStorage interface {
	// AppendLog adds an entry, dropping the oldest ones beyond the retention limit
	AppendLog(ctx context.Context, entry models.LogEntry) error

	// ListLogs returns up to limit most recent entries, newest first.
	// limit <= 0 returns all of them
	ListLogs(ctx context.Context, limit int) ([]models.LogEntry, error)
}
