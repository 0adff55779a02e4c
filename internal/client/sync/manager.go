// Package sync implements the room manager: it creates and joins rooms, keeps
// the six collections of the current room in memory, writes them through to
// the local store and reconciles them with the shared transport.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/chipsync/internal/client/identity"
	"github.com/iudanet/chipsync/internal/client/storage"
	"github.com/iudanet/chipsync/internal/clock"
	"github.com/iudanet/chipsync/internal/codec"
	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/notify"
	"github.com/iudanet/chipsync/internal/poll"
	"github.com/iudanet/chipsync/internal/presence"
	"github.com/iudanet/chipsync/internal/transport"
)

// Options holds the manager's collaborators.
type Options struct {
	Transport transport.Transport
	Store     storage.Storage
	Identity  identity.Provider
	Logger    *slog.Logger
	Config    Config
}

// Manager is the session/room manager of one device.
// All methods are safe for concurrent use.
type Manager struct {
	transport transport.Transport
	store     storage.Storage
	identity  identity.Provider
	logger    *slog.Logger

	// saveLocks serialize saves of one data type in call order
	saveLocks map[models.DataType]*sync.Mutex
	// writeLocks serialize write-through of one data type to the local store
	writeLocks map[models.DataType]*sync.Mutex

	dataListeners        notify.Topics[models.DataType, any]
	participantListeners notify.Listeners[[]models.Participant]
	stateListeners       notify.Listeners[State]

	// guarded by mu
	session *roomSession
	cfg     Config
	gen     uint64
	mu      sync.Mutex
	closed  bool
}

// roomSession is the state of the current room membership.
type roomSession struct {
	tracker     *clock.Tracker
	pollLoop    *poll.Loop
	heartbeat   *poll.Loop
	payloads    map[models.DataType]string
	applied     map[models.DataType]int64 // версия последней примененной записи по типу
	revisions   map[models.DataType]uint64
	members     *presence.Set
	self        models.Participant
	unsubscribe []func()
	hostID      string
	gen         uint64
	state       State
}

// New creates a disconnected manager.
func New(opts Options) *Manager {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	m := &Manager{
		transport:  opts.Transport,
		store:      opts.Store,
		identity:   opts.Identity,
		logger:     opts.Logger.With("component", "room_manager"),
		cfg:        opts.Config.withDefaults(),
		saveLocks:  make(map[models.DataType]*sync.Mutex, len(models.AllDataTypes)),
		writeLocks: make(map[models.DataType]*sync.Mutex, len(models.AllDataTypes)),
	}
	for _, dt := range models.AllDataTypes {
		m.saveLocks[dt] = &sync.Mutex{}
		m.writeLocks[dt] = &sync.Mutex{}
	}

	return m
}

// State returns the connection state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return StateDisconnected
	}
	return m.session.state
}

// RoomID returns the current room id or "" when disconnected.
func (m *Manager) RoomID() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return ""
	}
	return m.session.self.RoomID
}

// Self returns this device's participant entry.
func (m *Manager) Self() (models.Participant, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return models.Participant{}, false
	}
	return m.session.self, true
}

// HostParticipantID returns the id of the room's host.
func (m *Manager) HostParticipantID() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return ""
	}
	return m.session.hostID
}

// Participants returns the last known participant list, sorted by join time.
func (m *Manager) Participants() []models.Participant {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return nil
	}
	return m.session.members.List()
}

// Version returns the highest room version applied on this device.
func (m *Manager) Version() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return 0
	}
	return m.session.tracker.Known()
}

// RecordVersion returns the version of the last applied record of the data type.
func (m *Manager) RecordVersion(dataType models.DataType) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return 0
	}
	return m.session.applied[dataType]
}

// Payload returns the text form of the collection. When disconnected it is read
// from the local store; a missing collection is its empty value.
func (m *Manager) Payload(ctx context.Context, dataType models.DataType) (string, error) {
	if !dataType.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDataType, dataType)
	}

	m.mu.Lock()
	if m.session != nil {
		payload := m.session.payloads[dataType]
		m.mu.Unlock()
		return payload, nil
	}
	m.mu.Unlock()

	return m.localPayload(ctx, dataType)
}

// Data returns the decoded collection. The value is a fresh copy.
func (m *Manager) Data(ctx context.Context, dataType models.DataType) (any, error) {
	payload, err := m.Payload(ctx, dataType)
	if err != nil {
		return nil, err
	}
	return codec.Decode(payload)
}

// OnDataChange registers fn for changes of the collection. fn receives the decoded value.
func (m *Manager) OnDataChange(dataType models.DataType, fn func(data any)) func() {
	return m.dataListeners.Add(dataType, fn)
}

// OnParticipantsChange registers fn for presence changes of the current room.
func (m *Manager) OnParticipantsChange(fn func(participants []models.Participant)) func() {
	return m.participantListeners.Add(fn)
}

// OnStateChange registers fn for connection state transitions.
func (m *Manager) OnStateChange(fn func(state State)) func() {
	return m.stateListeners.Add(fn)
}

// Close stops background work without leaving the room: the saved session
// can be resumed later. Listeners are removed.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	s := m.session
	m.session = nil
	m.gen++
	m.mu.Unlock()

	if s != nil {
		s.stop(true)
	}

	m.dataListeners.Clear()
	m.participantListeners.Clear()
	m.stateListeners.Clear()

	return nil
}

// current returns the active session or nil. The session fields that are
// replaced after creation must still be read under mu.
func (m *Manager) current() (*roomSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}
	return m.session, nil
}

// stop halts the loops and drops subscriptions. When wait is false the loops are
// stopped in the background: stop may be called from the poll loop itself.
func (s *roomSession) stop(wait bool) {
	stopLoops := func() {
		s.pollLoop.Stop()
		if s.heartbeat != nil {
			s.heartbeat.Stop()
		}
	}

	if wait {
		stopLoops()
	} else {
		go stopLoops()
	}

	for _, unsubscribe := range s.unsubscribe {
		unsubscribe()
	}
}

func (m *Manager) localPayload(ctx context.Context, dataType models.DataType) (string, error) {
	payload, err := m.store.GetCollection(ctx, dataType)
	if errors.Is(err, storage.ErrCollectionNotFound) {
		return dataType.EmptyPayload(), nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read local collection: %w", err)
	}
	return payload, nil
}

// writeThrough stores the latest in-memory payload of the collection in the local store.
func (m *Manager) writeThrough(ctx context.Context, gen uint64, dataType models.DataType) bool {
	lock := m.writeLocks[dataType]
	lock.Lock()
	defer lock.Unlock()

	m.mu.Lock()
	if m.session == nil || m.session.gen != gen {
		m.mu.Unlock()
		return false
	}
	payload := m.session.payloads[dataType]
	m.mu.Unlock()

	if err := m.store.SaveCollection(ctx, dataType, payload); err != nil {
		m.logger.Warn("Failed to write collection to local store", "data_type", dataType, "error", err)
		return false
	}
	return true
}

// publish notifies data listeners unless a newer change of the collection was
// made after revision.
func (m *Manager) publish(gen uint64, dataType models.DataType, revision uint64, payload string) {
	m.mu.Lock()
	stale := m.session == nil || m.session.gen != gen || m.session.revisions[dataType] != revision
	m.mu.Unlock()
	if stale {
		return
	}

	value, err := codec.Decode(payload)
	if err != nil {
		m.logger.Error("Failed to decode collection for listeners", "data_type", dataType, "error", err)
		return
	}
	m.dataListeners.Notify(dataType, value)
}

func (m *Manager) appendLog(ctx context.Context, entry models.LogEntry) {
	if entry.At.IsZero() {
		entry.At = time.Now().UTC()
	}
	if err := m.store.AppendLog(ctx, entry); err != nil {
		m.logger.Warn("Failed to append sync log", "error", err)
	}
}

func (m *Manager) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, m.cfg.OperationTimeout)
}
