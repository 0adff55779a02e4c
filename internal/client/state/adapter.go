// Package state mirrors the room manager into view-local state for the
// application layer. While disconnected the view is served from the local
// durable store through the manager.
package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	roomsync "github.com/iudanet/chipsync/internal/client/sync"
	"github.com/iudanet/chipsync/internal/codec"
	"github.com/iudanet/chipsync/internal/invite"
	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/notify"
)

//go:generate moq -out manager_mock.go . SessionManager

// SessionManager is the part of the room manager the adapter relies on.
type SessionManager interface {
	State() roomsync.State
	RoomID() string
	Participants() []models.Participant
	Payload(ctx context.Context, dataType models.DataType) (string, error)
	Save(ctx context.Context, dataType models.DataType, data any) (roomsync.SaveResult, error)
	Refresh(ctx context.Context) error
	JoinRoom(ctx context.Context, roomID, name string) error
	OnDataChange(dataType models.DataType, fn func(data any)) func()
	OnParticipantsChange(fn func(participants []models.Participant)) func()
	OnStateChange(fn func(state roomsync.State)) func()
}

// Snapshot is a consistent copy of the view.
type Snapshot struct {
	Data         map[models.DataType]any
	RoomID       string
	Participants []models.Participant
	State        roomsync.State
}

// Adapter keeps view-local copies of the six collections and the room status.
type Adapter struct {
	manager SessionManager
	logger  *slog.Logger

	listeners notify.Listeners[Snapshot]

	// guarded by mu
	data         map[models.DataType]any
	participants []models.Participant
	roomID       string
	state        roomsync.State
	unsubscribe  []func()
	mu           sync.Mutex
}

// New creates an adapter. Call Start to load the view and follow the manager.
func New(manager SessionManager, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}

	return &Adapter{
		manager: manager,
		logger:  logger.With("component", "state_adapter"),
		data:    make(map[models.DataType]any, len(models.AllDataTypes)),
	}
}

// Start loads every collection and subscribes to manager changes.
func (a *Adapter) Start(ctx context.Context) error {
	unsubscribe := make([]func(), 0, len(models.AllDataTypes)+2)
	for _, dt := range models.AllDataTypes {
		unsubscribe = append(unsubscribe, a.manager.OnDataChange(dt, func(data any) {
			a.setData(dt, data)
		}))
	}
	unsubscribe = append(unsubscribe,
		a.manager.OnParticipantsChange(a.setParticipants),
		a.manager.OnStateChange(func(state roomsync.State) {
			a.onStateChange(context.Background(), state)
		}),
	)

	a.mu.Lock()
	a.unsubscribe = append(a.unsubscribe, unsubscribe...)
	a.mu.Unlock()

	return a.reload(ctx)
}

// Close stops following the manager.
func (a *Adapter) Close() {
	a.mu.Lock()
	unsubscribe := a.unsubscribe
	a.unsubscribe = nil
	a.mu.Unlock()

	for _, fn := range unsubscribe {
		fn()
	}
	a.listeners.Clear()
}

// Get returns a copy of the collection as currently shown.
func (a *Adapter) Get(dataType models.DataType) (any, error) {
	if !dataType.Valid() {
		return nil, fmt.Errorf("%w: %q", roomsync.ErrUnknownDataType, dataType)
	}

	a.mu.Lock()
	value, ok := a.data[dataType]
	a.mu.Unlock()

	if !ok {
		return codec.Decode(dataType.EmptyPayload())
	}
	return codec.Normalize(value)
}

// Set shows data immediately and saves it through the manager. A failed remote
// write keeps the edit: it stays in the view and in the local store.
func (a *Adapter) Set(ctx context.Context, dataType models.DataType, data any) (roomsync.SaveResult, error) {
	if !dataType.Valid() {
		return roomsync.SaveResult{}, fmt.Errorf("%w: %q", roomsync.ErrUnknownDataType, dataType)
	}

	value, err := codec.Normalize(data)
	if err != nil {
		return roomsync.SaveResult{}, err
	}

	a.mu.Lock()
	previous, hadPrevious := a.data[dataType]
	a.data[dataType] = value
	a.mu.Unlock()
	a.notify()

	result, err := a.manager.Save(ctx, dataType, value)
	if err != nil && !result.Local {
		// Правка никуда не записана, возвращаем прежнее значение
		a.mu.Lock()
		if hadPrevious {
			a.data[dataType] = previous
		} else {
			delete(a.data, dataType)
		}
		a.mu.Unlock()
		a.notify()
	}
	if err != nil {
		a.logger.Warn("Save did not reach the room", "data_type", dataType, "local", result.Local, "error", err)
	}

	return result, err
}

// Refresh asks the manager to re-read every collection.
func (a *Adapter) Refresh(ctx context.Context) error {
	if err := a.manager.Refresh(ctx); err != nil {
		return err
	}
	return a.reload(ctx)
}

// Snapshot returns a copy of the whole view.
func (a *Adapter) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.snapshotLocked()
}

// Subscribe registers fn for every change of the view.
func (a *Adapter) Subscribe(fn func(Snapshot)) func() {
	return a.listeners.Add(fn)
}

// AutoJoin joins the room named by an invitation URL and returns the URL with the
// invitation parameters removed. URLs without an invitation are returned as is
// with joined == false. When already in the invited room nothing happens.
func (a *Adapter) AutoJoin(ctx context.Context, rawURL, defaultName string) (cleaned string, joined bool, err error) {
	inv, err := invite.Parse(rawURL)
	if errors.Is(err, invite.ErrNoInvite) {
		return rawURL, false, nil
	}
	if err != nil {
		return rawURL, false, err
	}

	cleaned = rawURL
	if stripped, err := invite.Strip(rawURL); err == nil {
		cleaned = stripped
	}

	if a.manager.State().Connected() && a.manager.RoomID() == inv.RoomID {
		return cleaned, false, nil
	}

	name := inv.Name
	if name == "" {
		name = defaultName
	}

	if err := a.manager.JoinRoom(ctx, inv.RoomID, name); err != nil {
		return rawURL, false, fmt.Errorf("failed to join room %s: %w", inv.RoomID, err)
	}

	a.logger.Info("Joined room from invitation", "room_id", inv.RoomID)
	return cleaned, true, a.reload(ctx)
}

// reload reads the manager status and every collection.
func (a *Adapter) reload(ctx context.Context) error {
	data := make(map[models.DataType]any, len(models.AllDataTypes))
	for _, dt := range models.AllDataTypes {
		payload, err := a.manager.Payload(ctx, dt)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", dt, err)
		}
		value, err := codec.Decode(payload)
		if err != nil {
			a.logger.Warn("Collection is unreadable, showing empty", "data_type", dt, "error", err)
			value, _ = codec.Decode(dt.EmptyPayload())
		}
		data[dt] = value
	}

	a.mu.Lock()
	a.data = data
	a.state = a.manager.State()
	a.roomID = a.manager.RoomID()
	a.participants = a.manager.Participants()
	a.mu.Unlock()

	a.notify()
	return nil
}

func (a *Adapter) setData(dataType models.DataType, data any) {
	a.mu.Lock()
	a.data[dataType] = data
	a.mu.Unlock()
	a.notify()
}

func (a *Adapter) setParticipants(participants []models.Participant) {
	a.mu.Lock()
	a.participants = participants
	a.mu.Unlock()
	a.notify()
}

func (a *Adapter) onStateChange(ctx context.Context, state roomsync.State) {
	a.mu.Lock()
	a.state = state
	a.roomID = a.manager.RoomID()
	if !state.Connected() {
		a.participants = nil
	}
	a.mu.Unlock()

	// После отключения данные берутся из локального хранилища
	if !state.Connected() {
		if err := a.reload(ctx); err != nil {
			a.logger.Warn("Failed to reload local data", "error", err)
		}
		return
	}
	a.notify()
}

func (a *Adapter) notify() {
	a.listeners.Notify(a.Snapshot())
}

func (a *Adapter) snapshotLocked() Snapshot {
	data := make(map[models.DataType]any, len(a.data))
	for dt, v := range a.data {
		if copied, err := codec.Normalize(v); err == nil {
			data[dt] = copied
		}
	}

	participants := make([]models.Participant, len(a.participants))
	copy(participants, a.participants)

	return Snapshot{
		State:        a.state,
		RoomID:       a.roomID,
		Participants: participants,
		Data:         data,
	}
}
