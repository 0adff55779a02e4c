package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/chipsync/internal/client/storage"
	"github.com/iudanet/chipsync/internal/models"
)

// SaveCollection replaces one collection
func (s *Storage) SaveCollection(ctx context.Context, dataType models.DataType, payload string) error {
	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketCollections)
		if err != nil {
			return err
		}

		if err := b.Put([]byte(dataType), []byte(payload)); err != nil {
			return fmt.Errorf("failed to save collection %s: %w", dataType, err)
		}
		return nil
	})
}

// GetCollection returns the stored payload of the collection
func (s *Storage) GetCollection(ctx context.Context, dataType models.DataType) (string, error) {
	var payload string

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketCollections)
		if err != nil {
			return err
		}

		data := b.Get([]byte(dataType))
		if data == nil {
			return storage.ErrCollectionNotFound
		}
		// Значение действительно только внутри транзакции
		payload = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}

	return payload, nil
}

// ListCollections returns every stored collection
func (s *Storage) ListCollections(ctx context.Context) (map[models.DataType]string, error) {
	collections := make(map[models.DataType]string)

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketCollections)
		if err != nil {
			return err
		}

		return b.ForEach(func(k, v []byte) error {
			collections[models.DataType(k)] = string(v)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	return collections, nil
}

// ReplaceCollections clears the bucket and writes the given set in one transaction
func (s *Storage) ReplaceCollections(ctx context.Context, collections map[models.DataType]string) error {
	return s.update(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketCollections) != nil {
			if err := tx.DeleteBucket(bucketCollections); err != nil {
				return fmt.Errorf("failed to clear collections: %w", err)
			}
		}

		b, err := tx.CreateBucket(bucketCollections)
		if err != nil {
			return fmt.Errorf("failed to create collections bucket: %w", err)
		}

		for dataType, payload := range collections {
			if err := b.Put([]byte(dataType), []byte(payload)); err != nil {
				return fmt.Errorf("failed to save collection %s: %w", dataType, err)
			}
		}
		return nil
	})
}
