package sync

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
)

// roomIDAttempts is how many random ids are tried before giving up.
const roomIDAttempts = 5

// GenerateRoomID generates a cryptographically random, alphanumeric string of length n.
func GenerateRoomID(n int) (string, error) {
	const dictionary = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	var bytes = make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	for k, v := range bytes {
		bytes[k] = dictionary[v%byte(len(dictionary))]
	}
	return string(bytes), nil
}

// uniqueRoomID generates an id not taken in the transport namespace.
func (m *Manager) uniqueRoomID(ctx context.Context) (string, error) {
	for i := 0; i < roomIDAttempts; i++ {
		id, err := GenerateRoomID(m.cfg.RoomIDLength)
		if err != nil {
			return "", fmt.Errorf("failed to generate room id: %w", err)
		}

		exists, err := m.transport.RoomExists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrTransportUnavailable, err)
		}
		if !exists {
			return id, nil
		}
	}
	return "", errors.New("unable to generate unique room ID")
}
