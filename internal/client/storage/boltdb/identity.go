package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/chipsync/internal/client/storage"
	"github.com/iudanet/chipsync/internal/models"
)

var identityKey = []byte("current")

// SaveToken stores the identity token
func (s *Storage) SaveToken(ctx context.Context, token *models.IdentityToken) error {
	// Сериализуем данные в JSON
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal identity token: %w", err)
	}

	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketIdentity)
		if err != nil {
			return err
		}

		if err := b.Put(identityKey, data); err != nil {
			return fmt.Errorf("failed to save identity token: %w", err)
		}
		return nil
	})
}

// GetToken returns the cached identity token
func (s *Storage) GetToken(ctx context.Context) (*models.IdentityToken, error) {
	var token *models.IdentityToken

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketIdentity)
		if err != nil {
			return err
		}

		data := b.Get(identityKey)
		if data == nil {
			return storage.ErrTokenNotFound
		}

		token = &models.IdentityToken{}
		if err := json.Unmarshal(data, token); err != nil {
			return fmt.Errorf("failed to unmarshal identity token: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return token, nil
}

// DeleteToken removes the cached identity token
func (s *Storage) DeleteToken(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketIdentity)
		if err != nil {
			return err
		}

		if b.Get(identityKey) == nil {
			return storage.ErrTokenNotFound
		}

		if err := b.Delete(identityKey); err != nil {
			return fmt.Errorf("failed to delete identity token: %w", err)
		}
		return nil
	})
}
