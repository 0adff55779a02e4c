package storage

import (
	"context"

	"github.com/iudanet/chipsync/internal/models"
)

// CollectionStorage keeps the device's copy of the business collections.
// Payloads are stored as-is, in their text form. Every write replaces the
// whole collection.
type CollectionStorage interface {
	// SaveCollection replaces one collection
	SaveCollection(ctx context.Context, dataType models.DataType, payload string) error

	// GetCollection returns the collection or ErrCollectionNotFound
	GetCollection(ctx context.Context, dataType models.DataType) (string, error)

	// ListCollections returns every stored collection
	ListCollections(ctx context.Context) (map[models.DataType]string, error)

	// ReplaceCollections atomically replaces every collection with the given set
	ReplaceCollections(ctx context.Context, collections map[models.DataType]string) error
}
