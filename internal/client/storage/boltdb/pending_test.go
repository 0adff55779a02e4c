package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chipsync/internal/models"
)

func TestPending_SaveListDelete(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	writes := []*models.PendingWrite{
		{RoomID: "R1", DataType: models.DataTypeReceipts, Payload: `[]`, BaseVersion: 4, CreatedAt: base.Add(time.Minute)},
		{RoomID: "R1", DataType: models.DataTypePlayers, Payload: `[{"id":"p1"}]`, BaseVersion: 3, CreatedAt: base},
		{RoomID: "R2", DataType: models.DataTypePlayers, Payload: `[]`, BaseVersion: 1, CreatedAt: base},
	}
	for _, w := range writes {
		require.NoError(t, store.SavePending(ctx, w))
	}

	list, err := store.ListPending(ctx, "R1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Старые раньше новых
	assert.Equal(t, models.DataTypePlayers, list[0].DataType)
	assert.Equal(t, int64(3), list[0].BaseVersion)
	assert.Equal(t, models.DataTypeReceipts, list[1].DataType)

	all, err := store.ListPending(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Новая запись того же типа заменяет старую
	require.NoError(t, store.SavePending(ctx, &models.PendingWrite{
		RoomID: "R1", DataType: models.DataTypePlayers, Payload: `[{"id":"p2"}]`, BaseVersion: 3, Attempts: 2, CreatedAt: base,
	}))
	list, err = store.ListPending(ctx, "R1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, `[{"id":"p2"}]`, list[0].Payload)
	assert.Equal(t, 2, list[0].Attempts)

	require.NoError(t, store.DeletePending(ctx, "R1", models.DataTypePlayers))
	require.NoError(t, store.DeletePending(ctx, "R1", models.DataTypePlayers))

	list, err = store.ListPending(ctx, "R1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.DataTypeReceipts, list[0].DataType)
}
