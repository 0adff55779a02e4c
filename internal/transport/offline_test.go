package transport

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chipsync/internal/models"
)

func TestOffline_EveryCallIsUnavailable(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("unable to open database file")
	o := NewOffline(cause)

	assert.Equal(t, "offline", o.Name())

	_, err := o.GetRoom(ctx, "R1abcd")
	assert.ErrorIs(t, err, ErrTransportUnavailable)
	assert.ErrorIs(t, err, cause)

	_, err = o.RoomExists(ctx, "R1abcd")
	assert.ErrorIs(t, err, ErrTransportUnavailable)
	_, err = o.RoomVersion(ctx, "R1abcd")
	assert.ErrorIs(t, err, ErrTransportUnavailable)
	_, err = o.Get(ctx, "R1abcd", models.DataTypePlayers)
	assert.ErrorIs(t, err, ErrTransportUnavailable)
	_, err = o.ListPresence(ctx, "R1abcd")
	assert.ErrorIs(t, err, ErrTransportUnavailable)

	assert.ErrorIs(t, o.CreateRoom(ctx, &models.Room{ID: "R1abcd"}, nil), ErrTransportUnavailable)
	assert.ErrorIs(t, o.DeleteRoom(ctx, "R1abcd"), ErrTransportUnavailable)
	assert.ErrorIs(t, o.Touch(ctx, "R1abcd", time.Now()), ErrTransportUnavailable)
	assert.ErrorIs(t, o.Put(ctx, &models.SyncRecord{RoomID: "R1abcd"}), ErrTransportUnavailable)
	assert.ErrorIs(t, o.Register(ctx, models.Participant{ID: "p1", RoomID: "R1abcd"}), ErrTransportUnavailable)
	assert.ErrorIs(t, o.Deregister(ctx, "R1abcd", "p1"), ErrTransportUnavailable)

	unsub, err := o.Subscribe(ctx, "R1abcd", models.DataTypePlayers, func(*models.SyncRecord) {})
	assert.ErrorIs(t, err, ErrTransportUnavailable)
	assert.Nil(t, unsub)
	unsub, err = o.SubscribePresence(ctx, "R1abcd", func([]models.Participant) {})
	assert.ErrorIs(t, err, ErrTransportUnavailable)
	assert.Nil(t, unsub)

	// Не ретраится как постоянная ошибка
	assert.False(t, IsPermanent(o.Put(ctx, &models.SyncRecord{})))
	require.NoError(t, o.Close())
}

func TestOffline_KeepsWrappedCause(t *testing.T) {
	assert.Equal(t, ErrTransportUnavailable, NewOffline(nil).err())

	already := fmt.Errorf("%w: error pinging redis", ErrTransportUnavailable)
	assert.Equal(t, already, NewOffline(already).err())
}
