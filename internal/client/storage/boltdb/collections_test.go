package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chipsync/internal/client/storage"
	"github.com/iudanet/chipsync/internal/models"
)

func TestCollections_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.GetCollection(ctx, models.DataTypePlayers)
	assert.ErrorIs(t, err, storage.ErrCollectionNotFound)

	payload := `[{"id":"p1","name":"Ann","balance":12.50}]`
	require.NoError(t, store.SaveCollection(ctx, models.DataTypePlayers, payload))

	got, err := store.GetCollection(ctx, models.DataTypePlayers)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// Запись целиком заменяет коллекцию
	require.NoError(t, store.SaveCollection(ctx, models.DataTypePlayers, `[]`))
	got, err = store.GetCollection(ctx, models.DataTypePlayers)
	require.NoError(t, err)
	assert.Equal(t, `[]`, got)
}

func TestCollections_ReplaceCollections(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SaveCollection(ctx, models.DataTypeHistory, `[{"id":"h1"}]`))
	require.NoError(t, store.SaveCollection(ctx, models.DataTypePlayers, `[{"id":"p1"}]`))

	replacement := map[models.DataType]string{
		models.DataTypePlayers:  `[{"id":"p2"}]`,
		models.DataTypeSettings: `{}`,
	}
	require.NoError(t, store.ReplaceCollections(ctx, replacement))

	all, err := store.ListCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, replacement, all)

	_, err = store.GetCollection(ctx, models.DataTypeHistory)
	assert.ErrorIs(t, err, storage.ErrCollectionNotFound)
}

func TestCollections_ListEmpty(t *testing.T) {
	store := createTestStorage(t)

	all, err := store.ListCollections(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
