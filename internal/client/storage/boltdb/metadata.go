package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/iudanet/chipsync/internal/client/storage"
	"github.com/iudanet/chipsync/internal/models"
)

const (
	keyDeviceID           = "device_id"
	keySession            = "session"
	keyKnownVersionPrefix = "known_version:"
)

// SaveKnownVersion saves the highest room version applied on this device
func (s *Storage) SaveKnownVersion(ctx context.Context, roomID string, version int64) error {
	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketMetadata)
		if err != nil {
			return err
		}

		// Конвертируем int64 в bytes
		versionBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(versionBytes, uint64(version))

		if err := b.Put([]byte(keyKnownVersionPrefix+roomID), versionBytes); err != nil {
			return fmt.Errorf("failed to save known version: %w", err)
		}
		return nil
	})
}

// GetKnownVersion returns the known version of the room, 0 if never synced
func (s *Storage) GetKnownVersion(ctx context.Context, roomID string) (int64, error) {
	var version int64

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketMetadata)
		if err != nil {
			return err
		}

		versionBytes := b.Get([]byte(keyKnownVersionPrefix + roomID))
		if versionBytes == nil {
			return nil
		}

		version = int64(binary.BigEndian.Uint64(versionBytes))
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get known version: %w", err)
	}

	return version, nil
}

// GetOrCreateDeviceID returns the persistent device id
func (s *Storage) GetOrCreateDeviceID(ctx context.Context) (string, error) {
	var deviceID string

	err := s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketMetadata)
		if err != nil {
			return err
		}

		if existing := b.Get([]byte(keyDeviceID)); existing != nil {
			deviceID = string(existing)
			return nil
		}

		// Первый запуск на устройстве
		deviceID = uuid.New().String()
		return b.Put([]byte(keyDeviceID), []byte(deviceID))
	})
	if err != nil {
		return "", fmt.Errorf("failed to get device id: %w", err)
	}

	return deviceID, nil
}

// SaveSession stores the current room membership
func (s *Storage) SaveSession(ctx context.Context, session *models.SessionState) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketMetadata)
		if err != nil {
			return err
		}

		if err := b.Put([]byte(keySession), data); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		return nil
	})
}

// GetSession returns the saved membership
func (s *Storage) GetSession(ctx context.Context) (*models.SessionState, error) {
	var session *models.SessionState

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketMetadata)
		if err != nil {
			return err
		}

		data := b.Get([]byte(keySession))
		if data == nil {
			return storage.ErrSessionNotFound
		}

		session = &models.SessionState{}
		if err := json.Unmarshal(data, session); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

// DeleteSession clears the saved membership
func (s *Storage) DeleteSession(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketMetadata)
		if err != nil {
			return err
		}

		if err := b.Delete([]byte(keySession)); err != nil {
			return fmt.Errorf("failed to delete session: %w", err)
		}
		return nil
	})
}
