package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/chipsync/internal/clock"
	"github.com/iudanet/chipsync/internal/codec"
	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/transport"
)

// Refresh re-reads every collection. Disconnected, listeners are notified from the
// local store; connected, the room is read in full and newer records applied.
func (m *Manager) Refresh(ctx context.Context) error {
	s, err := m.current()
	if err != nil {
		return err
	}

	if s == nil {
		for _, dt := range models.AllDataTypes {
			payload, err := m.localPayload(ctx, dt)
			if err != nil {
				return err
			}
			value, err := codec.Decode(payload)
			if err != nil {
				m.logger.Warn("Local collection is unreadable", "data_type", dt, "error", err)
				continue
			}
			m.dataListeners.Notify(dt, value)
		}
		return nil
	}

	return m.refresh(ctx, s)
}

// refresh reads the room version, then every record, and applies what is newer.
// Known version is raised to the version read first: every mutation up to it is
// reflected by the records read afterwards.
func (m *Manager) refresh(ctx context.Context, s *roomSession) error {
	roomID := s.self.RoomID

	version, records, err := m.fetchAll(ctx, roomID)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			m.roomGone(s.gen)
		}
		return err
	}

	for _, dt := range models.AllDataTypes {
		m.applyRemote(s.gen, records[dt])
	}

	if m.sessionFor(s.gen) == nil {
		return nil
	}
	if _, err := s.tracker.Observe(ctx, version); err != nil {
		m.logger.Warn("Failed to persist known version", "room_id", roomID, "error", err)
	}

	m.logger.Debug("Room refreshed", "room_id", roomID, "version", version)
	return nil
}

// fetchAll reads the room version and then all six records concurrently.
// A missing record is returned as the empty value at version 0.
func (m *Manager) fetchAll(ctx context.Context, roomID string) (int64, map[models.DataType]*models.SyncRecord, error) {
	version, err := m.transport.RoomVersion(ctx, roomID)
	if err != nil {
		return 0, nil, err
	}

	fetched := make([]*models.SyncRecord, len(models.AllDataTypes))

	g, gctx := errgroup.WithContext(ctx)
	for i, dt := range models.AllDataTypes {
		g.Go(func() error {
			record, err := m.transport.Get(gctx, roomID, dt)
			if errors.Is(err, transport.ErrRecordNotFound) {
				record = &models.SyncRecord{RoomID: roomID, DataType: dt, Payload: dt.EmptyPayload()}
				err = nil
			}
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", dt, err)
			}
			fetched[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, nil, err
	}

	records := make(map[models.DataType]*models.SyncRecord, len(fetched))
	for _, record := range fetched {
		records[record.DataType] = record
	}

	return version, records, nil
}

// applyRemote applies a record delivered by a subscription or a re-read if it
// is newer than the one applied for its data type.
func (m *Manager) applyRemote(gen uint64, record *models.SyncRecord) {
	if record == nil {
		return
	}

	ctx, cancel := m.opContext(context.Background())
	defer cancel()

	dt := record.DataType
	if _, err := codec.Decode(record.Payload); err != nil {
		m.logger.Error("Skipping unreadable remote record",
			"room_id", record.RoomID, "data_type", dt, "version", record.Version, "error", err)
		return
	}

	m.mu.Lock()
	s := m.session
	if s == nil || s.gen != gen || record.RoomID != s.self.RoomID || record.Version <= s.applied[dt] {
		m.mu.Unlock()
		return
	}
	s.applied[dt] = record.Version
	// Собственная запись, вернувшаяся через подписку, уже в памяти
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

	if !changed {
		return
	}

	m.writeThrough(ctx, gen, dt)
	m.appendLog(ctx, models.LogEntry{
		RoomID:    record.RoomID,
		DataType:  dt,
		Direction: models.DirectionPull,
		Version:   record.Version,
		OK:        true,
	})
	m.logger.Debug("Applied remote change",
		"room_id", record.RoomID, "data_type", dt, "version", record.Version, "updated_by", record.UpdatedBy)

	m.publish(gen, dt, revision, record.Payload)
}

// pollOnce is one iteration of the room poll loop: detect deletion, flush
// pending writes, catch up if the room moved past the known version.
func (m *Manager) pollOnce(ctx context.Context, gen uint64) error {
	s := m.sessionFor(gen)
	if s == nil {
		return nil
	}
	roomID := s.self.RoomID

	version, err := m.transport.RoomVersion(ctx, roomID)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			m.roomGone(gen)
			return nil
		}
		return err
	}

	if err := m.flushPending(ctx, s); err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			m.roomGone(gen)
			return nil
		}
		m.logger.Warn("Failed to flush pending writes", "room_id", roomID, "error", err)
	}

	if s.tracker.Compare(version) == clock.Stale {
		m.logger.Debug("Room is ahead, refreshing", "room_id", roomID, "known", s.tracker.Known(), "observed", version)
		if err := m.refresh(ctx, s); err != nil {
			if errors.Is(err, ErrRoomNotFound) {
				return nil
			}
			return err
		}
	}

	participants, err := m.transport.ListPresence(ctx, roomID)
	if err != nil {
		return err
	}
	m.onPresence(gen, participants)

	return nil
}

// flushPending pushes writes that failed earlier. A pending write is pushed only
// if the remote record has not moved past the version it was based on; otherwise
// someone else wrote in between and the pending value is dropped.
func (m *Manager) flushPending(ctx context.Context, s *roomSession) error {
	roomID := s.self.RoomID

	pending, err := m.store.ListPending(ctx, roomID)
	if err != nil {
		return err
	}

	for _, w := range pending {
		lock := m.saveLocks[w.DataType]
		if lock == nil {
			continue
		}
		// Идет сохранение этого типа, оно само разберется с pending
		if !lock.TryLock() {
			continue
		}
		err := m.flushOne(ctx, s, w)
		lock.Unlock()
		if err != nil {
			return err
		}
	}

	return nil
}

func (m *Manager) flushOne(ctx context.Context, s *roomSession, w *models.PendingWrite) error {
	var remoteVersion int64
	remote, err := m.transport.Get(ctx, w.RoomID, w.DataType)
	switch {
	case err == nil:
		remoteVersion = remote.Version
	case errors.Is(err, transport.ErrRecordNotFound):
	default:
		return err
	}

	if remoteVersion > w.BaseVersion {
		if err := m.store.DeletePending(ctx, w.RoomID, w.DataType); err != nil {
			return err
		}
		m.appendLog(ctx, models.LogEntry{
			RoomID:    w.RoomID,
			DataType:  w.DataType,
			Direction: models.DirectionFlush,
			Version:   remoteVersion,
			Error:     fmt.Sprintf("superseded: based on version %d, remote is at %d", w.BaseVersion, remoteVersion),
		})
		m.logger.Info("Dropped superseded pending write",
			"room_id", w.RoomID, "data_type", w.DataType, "base_version", w.BaseVersion, "remote_version", remoteVersion)
		return nil
	}

	record := &models.SyncRecord{
		RoomID:    w.RoomID,
		DataType:  w.DataType,
		Payload:   w.Payload,
		UpdatedBy: s.self.ID,
		UpdatedAt: time.Now().UTC(),
	}

	opCtx, cancel := m.opContext(ctx)
	defer cancel()

	if err := m.transport.Put(opCtx, record); err != nil {
		w.Attempts++
		m.keepPending(ctx, w)
		return err
	}

	if err := m.store.DeletePending(ctx, w.RoomID, w.DataType); err != nil {
		m.logger.Warn("Failed to delete flushed pending write", "data_type", w.DataType, "error", err)
	}
	m.acceptOwn(ctx, s.gen, record)
	m.appendLog(ctx, models.LogEntry{
		RoomID:    w.RoomID,
		DataType:  w.DataType,
		Direction: models.DirectionFlush,
		Version:   record.Version,
		OK:        true,
	})
	m.logger.Info("Flushed pending write", "room_id", w.RoomID, "data_type", w.DataType, "version", record.Version)

	return nil
}

// heartbeatOnce rewrites the room's lastUpdatedAt. Host only.
func (m *Manager) heartbeatOnce(ctx context.Context, gen uint64) error {
	s := m.sessionFor(gen)
	if s == nil {
		return nil
	}

	err := m.transport.Touch(ctx, s.self.RoomID, time.Now().UTC())
	if errors.Is(err, ErrRoomNotFound) {
		s.pollLoop.Trigger()
		return nil
	}
	return err
}

// sessionFor returns the session if it is still the one with the given generation.
func (m *Manager) sessionFor(gen uint64) *roomSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil || m.session.gen != gen {
		return nil
	}
	return m.session
}
