package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/iudanet/chipsync/internal/client/storage"
	"github.com/iudanet/chipsync/internal/codec"
	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/transport"
)

// SaveResult describes where a save landed.
type SaveResult struct {
	// Version is the room version assigned by the transport, 0 if the remote write failed
	Version int64
	// Remote is true when the shared transport accepted the write
	Remote bool
	// Local is true when the local store has the new value
	Local bool
	// Pending is true when the value is queued for the room and will be pushed
	// once the transport is reachable
	Pending bool
}

// Save replaces the collection with data.
//
// Disconnected: the value goes to the local store only; if a room session is
// saved, the value is also queued for that room. Connected: memory and the
// local store are updated first, then the write is pushed with retries. When every
// attempt fails the write is kept as pending and flushed by the poll loop; the
// returned error wraps ErrWriteFailed while the local value stays.
func (m *Manager) Save(ctx context.Context, dataType models.DataType, data any) (SaveResult, error) {
	if !dataType.Valid() {
		return SaveResult{}, fmt.Errorf("%w: %q", ErrUnknownDataType, dataType)
	}

	payload, err := codec.Encode(data)
	if err != nil {
		return SaveResult{}, err
	}

	lock := m.saveLocks[dataType]
	lock.Lock()
	defer lock.Unlock()

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return SaveResult{}, ErrClosed
	}
	s := m.session
	if s == nil {
		m.mu.Unlock()
		return m.saveLocal(ctx, dataType, payload)
	}
	base := s.applied[dataType]
	s.payloads[dataType] = payload
	s.revisions[dataType]++
	revision := s.revisions[dataType]
	gen := s.gen
	self := s.self
	m.mu.Unlock()

	local := m.writeThrough(ctx, gen, dataType)
	m.publish(gen, dataType, revision, payload)

	record := &models.SyncRecord{
		RoomID:    self.RoomID,
		DataType:  dataType,
		Payload:   payload,
		UpdatedBy: self.ID,
		UpdatedAt: time.Now().UTC(),
	}

	attempts, err := m.putWithRetry(ctx, record)
	if err != nil {
		pending := m.keepPending(ctx, &models.PendingWrite{
			CreatedAt:   time.Now().UTC(),
			RoomID:      self.RoomID,
			DataType:    dataType,
			Payload:     payload,
			BaseVersion: base,
			Attempts:    attempts,
		})
		m.appendLog(ctx, models.LogEntry{
			RoomID:    self.RoomID,
			DataType:  dataType,
			Direction: models.DirectionFallback,
			Error:     err.Error(),
		})
		m.logger.Warn("Remote save failed, kept locally",
			"room_id", self.RoomID, "data_type", dataType, "attempts", attempts, "error", err)

		if errors.Is(err, ErrRoomNotFound) {
			s.pollLoop.Trigger()
		}
		result := SaveResult{Local: local, Pending: pending}
		if errors.Is(err, ErrWriteFailed) {
			return result, err
		}
		return result, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	m.acceptOwn(ctx, gen, record)

	if err := m.store.DeletePending(ctx, self.RoomID, dataType); err != nil {
		m.logger.Warn("Failed to delete superseded pending write", "data_type", dataType, "error", err)
	}
	m.appendLog(ctx, models.LogEntry{
		RoomID:    self.RoomID,
		DataType:  dataType,
		Direction: models.DirectionPush,
		Version:   record.Version,
		OK:        true,
	})
	m.logger.Debug("Saved", "room_id", self.RoomID, "data_type", dataType, "version", record.Version)

	return SaveResult{Version: record.Version, Remote: true, Local: local}, nil
}

// saveLocal stores the payload while disconnected and notifies listeners.
// With a saved session (the room could not be resumed) the value is also kept
// as a pending write based on the last known room version, so it is pushed on
// the next successful resume.
func (m *Manager) saveLocal(ctx context.Context, dataType models.DataType, payload string) (SaveResult, error) {
	if err := m.store.SaveCollection(ctx, dataType, payload); err != nil {
		return SaveResult{}, fmt.Errorf("failed to save collection locally: %w", err)
	}
	result := SaveResult{Local: true}

	session, err := m.store.GetSession(ctx)
	switch {
	case err == nil:
		result.Pending = m.queueForRoom(ctx, session.RoomID, dataType, payload)
	case !errors.Is(err, storage.ErrSessionNotFound):
		m.logger.Warn("Failed to load saved session", "error", err)
	}

	value, err := codec.Decode(payload)
	if err == nil {
		m.dataListeners.Notify(dataType, value)
	}

	return result, nil
}

func (m *Manager) queueForRoom(ctx context.Context, roomID string, dataType models.DataType, payload string) bool {
	base, err := m.store.GetKnownVersion(ctx, roomID)
	if err != nil {
		m.logger.Warn("Failed to read known version, change stays local", "room_id", roomID, "error", err)
		return false
	}

	if !m.keepPending(ctx, &models.PendingWrite{
		CreatedAt:   time.Now().UTC(),
		RoomID:      roomID,
		DataType:    dataType,
		Payload:     payload,
		BaseVersion: base,
	}) {
		return false
	}

	m.appendLog(ctx, models.LogEntry{
		RoomID:    roomID,
		DataType:  dataType,
		Direction: models.DirectionFallback,
		Error:     "room not connected",
	})
	m.logger.Info("Saved while disconnected, queued for room", "room_id", roomID, "data_type", dataType)
	return true
}

// putWithRetry pushes the record with exponential backoff. Returns the number of
// attempts made.
func (m *Manager) putWithRetry(ctx context.Context, record *models.SyncRecord) (int, error) {
	attempts := 0

	err := retry.Do(ctx, m.saveBackoff(), func(ctx context.Context) error {
		attempts++

		opCtx, cancel := m.opContext(ctx)
		defer cancel()

		err := m.transport.Put(opCtx, record)
		if err == nil {
			return nil
		}
		if transport.IsPermanent(err) {
			return err
		}

		m.logger.Warn("Remote save attempt failed",
			"room_id", record.RoomID, "data_type", record.DataType, "attempt", attempts, "error", err)
		return retry.RetryableError(err)
	})

	return attempts, err
}

// saveBackoff doubles the delay from RetryBase and stops after MaxRetries
// retries: 2s, 4s, 8s with the defaults.
func (m *Manager) saveBackoff() retry.Backoff {
	return retry.WithMaxRetries(m.cfg.MaxRetries, retry.NewExponential(m.cfg.RetryBase))
}

// acceptOwn records a successful own write. A remote record applied while the
// write was retried is replaced by the value that actually won.
func (m *Manager) acceptOwn(ctx context.Context, gen uint64, record *models.SyncRecord) {
	dt := record.DataType

	m.mu.Lock()
	s := m.session
	if s == nil || s.gen != gen || record.Version <= s.applied[dt] {
		m.mu.Unlock()
		return
	}
	s.applied[dt] = record.Version
	changed := s.payloads[dt] != record.Payload
	if changed {
		s.payloads[dt] = record.Payload
		s.revisions[dt]++
	}
	revision := s.revisions[dt]
	m.mu.Unlock()

	if _, err := s.tracker.Advance(ctx, record.Version); err != nil {
		m.logger.Warn("Failed to persist known version", "room_id", record.RoomID, "error", err)
	}

	if changed {
		m.writeThrough(ctx, gen, dt)
		m.publish(gen, dt, revision, record.Payload)
	}
}

func (m *Manager) keepPending(ctx context.Context, w *models.PendingWrite) bool {
	if err := m.store.SavePending(ctx, w); err != nil {
		m.logger.Error("Failed to save pending write", "room_id", w.RoomID, "data_type", w.DataType, "error", err)
		return false
	}
	return true
}
