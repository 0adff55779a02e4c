package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/chipsync/internal/client/storage"
	"github.com/iudanet/chipsync/internal/clock"
	"github.com/iudanet/chipsync/internal/codec"
	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/poll"
	"github.com/iudanet/chipsync/internal/presence"
	"github.com/iudanet/chipsync/internal/transport"
	"github.com/iudanet/chipsync/internal/validation"
)

// CreateRoom creates a new room with this device as host. The six collections are
// seeded from the local store (or empty) and stored at version 1.
func (m *Manager) CreateRoom(ctx context.Context, hostName string) (string, error) {
	if err := validation.ValidateParticipantName(hostName); err != nil {
		return "", fmt.Errorf("invalid name: %w", err)
	}
	if err := m.ensureDisconnected(); err != nil {
		return "", err
	}

	id, err := m.identity.AnonymousIdentity(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve identity: %w", err)
	}

	roomID, err := m.uniqueRoomID(ctx)
	if err != nil {
		return "", err
	}

	payloads, err := m.seedPayloads(ctx)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	room := &models.Room{
		ID:                roomID,
		HostParticipantID: id.ParticipantID,
		Version:           1,
		CreatedAt:         now,
		LastUpdatedAt:     now,
	}

	records := make([]*models.SyncRecord, 0, len(models.AllDataTypes))
	for _, dt := range models.AllDataTypes {
		records = append(records, &models.SyncRecord{
			RoomID:    roomID,
			DataType:  dt,
			Payload:   payloads[dt],
			UpdatedBy: id.ParticipantID,
			UpdatedAt: now,
			Version:   1,
		})
	}

	if err := m.transport.CreateRoom(ctx, room, records); err != nil {
		if errors.Is(err, ErrTransportUnavailable) || transport.IsPermanent(err) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrTransportUnavailable, err)
	}

	self := models.Participant{
		ID:       id.ParticipantID,
		RoomID:   roomID,
		Name:     hostName,
		DeviceID: id.DeviceID,
		IsHost:   true,
		JoinedAt: now,
	}

	if err := m.transport.Register(ctx, self); err != nil {
		// Комната без хозяина никому не нужна
		if delErr := m.transport.DeleteRoom(ctx, roomID); delErr != nil {
			m.logger.Warn("Failed to delete room after failed registration", "room_id", roomID, "error", delErr)
		}
		return "", fmt.Errorf("%w: %w", ErrTransportUnavailable, err)
	}

	applied := make(map[models.DataType]int64, len(models.AllDataTypes))
	for _, dt := range models.AllDataTypes {
		applied[dt] = 1
	}

	if err := m.connect(ctx, StateHost, self, room.HostParticipantID, payloads, applied, 1); err != nil {
		return "", err
	}

	m.logger.Info("Room created", "room_id", roomID, "participant_id", self.ID)
	return roomID, nil
}

// JoinRoom joins an existing room as a participant. Nothing changes locally unless
// every record was fetched and decoded.
func (m *Manager) JoinRoom(ctx context.Context, roomID, name string) error {
	if err := validation.ValidateRoomID(roomID); err != nil {
		return fmt.Errorf("invalid room id: %w", err)
	}
	if err := validation.ValidateParticipantName(name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}
	if err := m.ensureDisconnected(); err != nil {
		return err
	}

	id, err := m.identity.AnonymousIdentity(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve identity: %w", err)
	}

	self := models.Participant{
		ID:       id.ParticipantID,
		RoomID:   roomID,
		Name:     name,
		DeviceID: id.DeviceID,
		JoinedAt: time.Now().UTC(),
	}

	if err := m.enter(ctx, self, StateParticipant); err != nil {
		return err
	}

	m.logger.Info("Joined room", "room_id", roomID, "participant_id", self.ID)
	return nil
}

// Resume rejoins the room saved by a previous run with the same participant id.
// If the room is gone the saved session is cleared and ErrRoomNotFound is returned.
func (m *Manager) Resume(ctx context.Context) error {
	if err := m.ensureDisconnected(); err != nil {
		return err
	}

	session, err := m.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return fmt.Errorf("%w: %w", ErrNotConnected, err)
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	deviceID, err := m.store.GetOrCreateDeviceID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get device id: %w", err)
	}

	state := StateParticipant
	if session.IsHost {
		state = StateHost
	}

	err = m.enter(ctx, session.Participant(deviceID), state)
	if errors.Is(err, ErrRoomNotFound) {
		if delErr := m.store.DeleteSession(ctx); delErr != nil {
			m.logger.Warn("Failed to clear saved session", "error", delErr)
		}
		return err
	}
	if err != nil {
		return err
	}

	m.logger.Debug("Session resumed", "room_id", session.RoomID, "participant_id", session.ParticipantID)
	return nil
}

// LeaveRoom deregisters this device. The last participant to leave deletes the room.
// Calling LeaveRoom while disconnected does nothing.
func (m *Manager) LeaveRoom(ctx context.Context) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	s := m.session
	if s == nil {
		m.mu.Unlock()
		return nil
	}
	m.session = nil
	m.gen++
	m.mu.Unlock()

	s.stop(true)

	roomID := s.self.RoomID
	var leaveErr error

	if err := m.transport.Deregister(ctx, roomID, s.self.ID); err != nil && !errors.Is(err, ErrRoomNotFound) {
		leaveErr = fmt.Errorf("failed to deregister: %w", err)
	}

	if leaveErr == nil {
		remaining, err := m.transport.ListPresence(ctx, roomID)
		switch {
		case err != nil:
			m.logger.Warn("Failed to list remaining participants", "room_id", roomID, "error", err)
		case len(remaining) == 0:
			// Одновременный уход последних участников: второй получит RoomNotFound
			if err := m.transport.DeleteRoom(ctx, roomID); err != nil && !errors.Is(err, ErrRoomNotFound) {
				m.logger.Warn("Failed to delete abandoned room", "room_id", roomID, "error", err)
			} else {
				m.logger.Info("Room deleted by last participant", "room_id", roomID)
			}
		}
	}

	m.forgetRoom(ctx, roomID)
	m.logger.Info("Left room", "room_id", roomID, "participant_id", s.self.ID)

	m.stateListeners.Notify(StateDisconnected)
	m.participantListeners.Notify(nil)

	return leaveErr
}

// enter registers self in an existing room, fetches every record and connects.
func (m *Manager) enter(ctx context.Context, self models.Participant, state State) error {
	room, err := m.transport.GetRoom(ctx, self.RoomID)
	if err != nil {
		return m.readError(err)
	}

	if err := m.transport.Register(ctx, self); err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrTransportUnavailable, err)
	}

	version, records, err := m.fetchAll(ctx, self.RoomID)
	if err == nil {
		err = decodeAll(records)
	}
	if err != nil {
		// Откатываем регистрацию, локальное состояние не трогаем
		if derr := m.transport.Deregister(ctx, self.RoomID, self.ID); derr != nil {
			m.logger.Warn("Failed to deregister after failed join", "room_id", self.RoomID, "error", derr)
		}
		return m.readError(err)
	}

	payloads := make(map[models.DataType]string, len(records))
	applied := make(map[models.DataType]int64, len(records))
	for dt, record := range records {
		payloads[dt] = record.Payload
		applied[dt] = record.Version
	}

	return m.connect(ctx, state, self, room.HostParticipantID, payloads, applied, version)
}

// connect installs the session, writes it through and starts subscriptions and loops.
func (m *Manager) connect(
	ctx context.Context,
	state State,
	self models.Participant,
	hostID string,
	payloads map[models.DataType]string,
	applied map[models.DataType]int64,
	version int64,
) error {
	tracker, err := clock.NewTracker(ctx, self.RoomID, m.store)
	if err != nil {
		return err
	}
	// Все записи только что прочитаны целиком
	if err := tracker.Reset(ctx, version); err != nil {
		m.logger.Warn("Failed to persist known version", "room_id", self.RoomID, "error", err)
	}

	// Неотправленные правки, которые никто не перезаписал, видны сразу
	pending, err := m.store.ListPending(ctx, self.RoomID)
	if err != nil {
		m.logger.Warn("Failed to list pending writes", "room_id", self.RoomID, "error", err)
	}
	for _, w := range pending {
		if _, ok := payloads[w.DataType]; ok && applied[w.DataType] <= w.BaseVersion {
			payloads[w.DataType] = w.Payload
		}
	}

	s := &roomSession{
		state:     state,
		self:      self,
		hostID:    hostID,
		tracker:   tracker,
		payloads:  payloads,
		applied:   applied,
		revisions: make(map[models.DataType]uint64, len(models.AllDataTypes)),
		members:   presence.NewSet(self),
	}
	// s.gen присваивается под mu до Start, циклы читают его только после
	s.pollLoop = poll.New("room-poll-"+self.RoomID, m.cfg.PollInterval, func(ctx context.Context) error {
		return m.pollOnce(ctx, s.gen)
	}, m.logger)
	if state == StateHost {
		s.heartbeat = poll.New("room-heartbeat-"+self.RoomID, m.cfg.HeartbeatInterval, func(ctx context.Context) error {
			return m.heartbeatOnce(ctx, s.gen)
		}, m.logger)
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	if m.session != nil {
		m.mu.Unlock()
		return ErrAlreadyConnected
	}
	m.gen++
	s.gen = m.gen
	m.session = s
	m.mu.Unlock()

	gen := s.gen
	roomID := self.RoomID

	if err := m.store.ReplaceCollections(ctx, payloads); err != nil {
		m.logger.Warn("Failed to write collections to local store", "room_id", roomID, "error", err)
	}

	if err := m.store.SaveSession(ctx, &models.SessionState{
		RoomID:        roomID,
		ParticipantID: self.ID,
		Name:          self.Name,
		IsHost:        state == StateHost,
		JoinedAt:      self.JoinedAt,
	}); err != nil {
		m.logger.Warn("Failed to save session", "room_id", roomID, "error", err)
	}

	var unsubscribe []func()
	for _, dt := range models.AllDataTypes {
		unsub, err := m.transport.Subscribe(ctx, roomID, dt, func(record *models.SyncRecord) {
			m.applyRemote(gen, record)
		})
		if err != nil {
			// Подписки нет, изменения подхватит опрос
			m.logger.Warn("Failed to subscribe, relying on polling", "room_id", roomID, "data_type", dt, "error", err)
			continue
		}
		unsubscribe = append(unsubscribe, unsub)
	}

	unsub, err := m.transport.SubscribePresence(ctx, roomID, func(participants []models.Participant) {
		m.onPresence(gen, participants)
	})
	if err != nil {
		m.logger.Warn("Failed to subscribe to presence", "room_id", roomID, "error", err)
	} else {
		unsubscribe = append(unsubscribe, unsub)
	}

	m.mu.Lock()
	if m.session != s {
		// Сессию уже закрыли, пока шла подписка
		m.mu.Unlock()
		for _, u := range unsubscribe {
			u()
		}
		return ErrClosed
	}
	s.unsubscribe = unsubscribe
	m.mu.Unlock()

	s.pollLoop.Start(context.Background())
	if s.heartbeat != nil {
		s.heartbeat.Start(context.Background())
	}

	m.stateListeners.Notify(state)
	m.participantListeners.Notify(s.members.List())
	for _, dt := range models.AllDataTypes {
		m.publish(gen, dt, 0, payloads[dt])
	}

	// Короткие команды CLI не доживают до первого тика опроса
	if len(pending) > 0 {
		if err := m.flushPending(ctx, s); err != nil {
			m.logger.Warn("Failed to flush pending writes", "room_id", roomID, "error", err)
		}
	}

	return nil
}

// roomGone handles a room deleted by someone else.
func (m *Manager) roomGone(gen uint64) {
	m.mu.Lock()
	s := m.session
	if s == nil || s.gen != gen {
		m.mu.Unlock()
		return
	}
	m.session = nil
	m.gen++
	m.mu.Unlock()

	s.stop(false)

	ctx, cancel := m.opContext(context.Background())
	defer cancel()
	m.forgetRoom(ctx, s.self.RoomID)

	m.logger.Warn("Room no longer exists, disconnected", "room_id", s.self.RoomID)

	m.stateListeners.Notify(StateDisconnected)
	m.participantListeners.Notify(nil)
}

// forgetRoom clears the saved session and the room's pending writes.
func (m *Manager) forgetRoom(ctx context.Context, roomID string) {
	if err := m.store.DeleteSession(ctx); err != nil {
		m.logger.Warn("Failed to clear saved session", "error", err)
	}

	pending, err := m.store.ListPending(ctx, roomID)
	if err != nil {
		m.logger.Warn("Failed to list pending writes", "room_id", roomID, "error", err)
		return
	}
	for _, w := range pending {
		if err := m.store.DeletePending(ctx, w.RoomID, w.DataType); err != nil {
			m.logger.Warn("Failed to delete pending write", "room_id", roomID, "data_type", w.DataType, "error", err)
		}
	}
}

func (m *Manager) onPresence(gen uint64, participants []models.Participant) {
	m.mu.Lock()
	s := m.session
	if s == nil || s.gen != gen {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	if !s.members.Replace(participants) {
		return
	}
	m.participantListeners.Notify(s.members.List())

	// Пустой список: возможно, комнату удалили
	if len(participants) == 0 {
		s.pollLoop.Trigger()
	}
}

func (m *Manager) ensureDisconnected() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if m.session != nil {
		return ErrAlreadyConnected
	}
	return nil
}

// seedPayloads reads the local collections for a new room, falling back to
// empty values for missing or unreadable ones.
func (m *Manager) seedPayloads(ctx context.Context) (map[models.DataType]string, error) {
	local, err := m.store.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read local collections: %w", err)
	}

	payloads := make(map[models.DataType]string, len(models.AllDataTypes))
	for _, dt := range models.AllDataTypes {
		payload, ok := local[dt]
		if !ok {
			payloads[dt] = dt.EmptyPayload()
			continue
		}
		if _, err := codec.Decode(payload); err != nil {
			m.logger.Warn("Local collection is unreadable, starting empty", "data_type", dt, "error", err)
			payloads[dt] = dt.EmptyPayload()
			continue
		}
		payloads[dt] = payload
	}

	return payloads, nil
}

func (m *Manager) readError(err error) error {
	switch {
	case errors.Is(err, ErrRoomNotFound), errors.Is(err, ErrReadFailed):
		return err
	case errors.Is(err, transport.ErrClosed):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
}

func decodeAll(records map[models.DataType]*models.SyncRecord) error {
	for dt, record := range records {
		if _, err := codec.Decode(record.Payload); err != nil {
			return fmt.Errorf("record %s: %w", dt, err)
		}
	}
	return nil
}
