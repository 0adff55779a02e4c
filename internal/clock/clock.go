// Package clock implements the per-room version clock.
package clock

import (
	"context"
	"fmt"
	"sync"
)

// Comparison is the result of comparing an observed room version with the known one.
type Comparison int

const (
	// Current means the local view already reflects the observed version.
	Current Comparison = iota
	// Stale means another participant committed versions we have not applied yet.
	Stale
	// Ahead means we know a version the observer has not seen yet (e.g. our own write).
	Ahead
)

// String implements fmt.Stringer.
func (c Comparison) String() string {
	switch c {
	case Current:
		return "current"
	case Stale:
		return "stale"
	case Ahead:
		return "ahead"
	default:
		return fmt.Sprintf("comparison(%d)", int(c))
	}
}

// Compare сравнивает версию, наблюдаемую в общем хранилище, с известной локально.
func Compare(observed, known int64) Comparison {
	switch {
	case observed > known:
		return Stale
	case observed < known:
		return Ahead
	default:
		return Current
	}
}

// Persister stores the highest version a device has fully applied for a room.
type Persister interface {
	SaveKnownVersion(ctx context.Context, roomID string, version int64) error
	GetKnownVersion(ctx context.Context, roomID string) (int64, error)
}

// Tracker хранит последнюю полностью примененную версию комнаты на устройстве.
//
// Known is only advanced when every version up to it is reflected locally:
// either contiguously (Advance) or after a full re-read (Observe).
type Tracker struct {
	persister Persister
	roomID    string
	known     int64
	mu        sync.Mutex
}

// NewTracker restores the tracker for roomID from the persister.
// A nil persister keeps the version in memory only.
func NewTracker(ctx context.Context, roomID string, persister Persister) (*Tracker, error) {
	t := &Tracker{roomID: roomID, persister: persister}
	if persister == nil {
		return t, nil
	}

	known, err := persister.GetKnownVersion(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load known version: %w", err)
	}
	t.known = known

	return t, nil
}

// RoomID returns the room the tracker belongs to.
func (t *Tracker) RoomID() string {
	return t.roomID
}

// Known returns the highest version known to be applied.
func (t *Tracker) Known() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.known
}

// Compare compares an observed version against the known one.
func (t *Tracker) Compare(observed int64) Comparison {
	return Compare(observed, t.Known())
}

// Observe raises known to v if v is greater. Used after a full re-read of the room
// where v was read before the records.
// Returns true if the known version changed.
func (t *Tracker) Observe(ctx context.Context, v int64) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if v <= t.known {
		return false, nil
	}
	return true, t.setLocked(ctx, v)
}

// Advance moves known to v only if v directly follows it. A gap means some
// mutation was not applied and has to be picked up by a re-read.
// Returns true if the known version changed.
func (t *Tracker) Advance(ctx context.Context, v int64) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if v != t.known+1 {
		return false, nil
	}
	return true, t.setLocked(ctx, v)
}

// Reset sets known to v unconditionally (room creation).
func (t *Tracker) Reset(ctx context.Context, v int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.setLocked(ctx, v)
}

func (t *Tracker) setLocked(ctx context.Context, v int64) error {
	t.known = v
	if t.persister == nil {
		return nil
	}
	if err := t.persister.SaveKnownVersion(ctx, t.roomID, v); err != nil {
		return fmt.Errorf("failed to persist known version: %w", err)
	}
	return nil
}
