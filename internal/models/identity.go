package models

import "time"

// Identity представляет анонимную identity, выданную сервером устройству
type Identity struct {
	CreatedAt     time.Time `json:"created_at"`   // время выдачи
	LastSeenAt    time.Time `json:"last_seen_at"` // время последнего обращения
	ParticipantID string    `json:"participant_id"`
	DeviceID      string    `json:"device_id"`
}

// IdentityToken is the client-side cached identity with its access token.
type IdentityToken struct {
	ExpiresAt     time.Time `json:"expires_at"`
	ParticipantID string    `json:"participant_id"`
	Token         string    `json:"token"`
}

// Expired reports whether the token is expired at the given moment.
func (t *IdentityToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
