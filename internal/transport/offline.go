package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/chipsync/internal/models"
)

var _ Transport = (*Offline)(nil)

// Offline stands in for a transport whose backend could not be opened.
// Every operation fails with ErrTransportUnavailable, so the room manager
// keeps working on the local store only.
type Offline struct {
	cause error
}

// NewOffline returns a transport that reports cause on every call.
func NewOffline(cause error) *Offline {
	return &Offline{cause: cause}
}

func (o *Offline) err() error {
	switch {
	case o.cause == nil:
		return ErrTransportUnavailable
	case errors.Is(o.cause, ErrTransportUnavailable):
		return o.cause
	default:
		return fmt.Errorf("%w: %w", ErrTransportUnavailable, o.cause)
	}
}

func (o *Offline) Name() string {
	return "offline"
}

func (o *Offline) CreateRoom(ctx context.Context, room *models.Room, records []*models.SyncRecord) error {
	return o.err()
}

func (o *Offline) GetRoom(ctx context.Context, roomID string) (*models.Room, error) {
	return nil, o.err()
}

func (o *Offline) RoomExists(ctx context.Context, roomID string) (bool, error) {
	return false, o.err()
}

func (o *Offline) DeleteRoom(ctx context.Context, roomID string) error {
	return o.err()
}

func (o *Offline) Touch(ctx context.Context, roomID string, at time.Time) error {
	return o.err()
}

func (o *Offline) RoomVersion(ctx context.Context, roomID string) (int64, error) {
	return 0, o.err()
}

func (o *Offline) Put(ctx context.Context, record *models.SyncRecord) error {
	return o.err()
}

func (o *Offline) Get(ctx context.Context, roomID string, dataType models.DataType) (*models.SyncRecord, error) {
	return nil, o.err()
}

func (o *Offline) Subscribe(ctx context.Context, roomID string, dataType models.DataType, fn RecordHandler) (func(), error) {
	return nil, o.err()
}

func (o *Offline) Register(ctx context.Context, p models.Participant) error {
	return o.err()
}

func (o *Offline) Deregister(ctx context.Context, roomID, participantID string) error {
	return o.err()
}

func (o *Offline) ListPresence(ctx context.Context, roomID string) ([]models.Participant, error) {
	return nil, o.err()
}

func (o *Offline) SubscribePresence(ctx context.Context, roomID string, fn func([]models.Participant)) (func(), error) {
	return nil, o.err()
}

// Close does nothing: there is no backend to release.
func (o *Offline) Close() error {
	return nil
}
