package models

import "time"

// PendingWrite is a save that could not reach the shared transport.
// It lives in the local durable store until it is flushed or superseded.
type PendingWrite struct {
	CreatedAt   time.Time `json:"created_at"`
	RoomID      string    `json:"room_id"`
	DataType    DataType  `json:"data_type"`
	Payload     string    `json:"payload"`
	BaseVersion int64     `json:"base_version"` // version of the record the edit was based on
	Attempts    int       `json:"attempts"`
}

// Key returns the local-only key of the pending write.
func (p *PendingWrite) Key() string {
	return RecordKey(p.RoomID, p.DataType)
}

// SessionState is the saved room membership of this device, used to resume.
type SessionState struct {
	JoinedAt      time.Time `json:"joined_at"`
	RoomID        string    `json:"room_id"`
	ParticipantID string    `json:"participant_id"`
	Name          string    `json:"name"`
	IsHost        bool      `json:"is_host"`
}

// Participant converts the saved session back into a presence entry.
func (s *SessionState) Participant(deviceID string) Participant {
	return Participant{
		ID:       s.ParticipantID,
		RoomID:   s.RoomID,
		Name:     s.Name,
		IsHost:   s.IsHost,
		JoinedAt: s.JoinedAt,
		DeviceID: deviceID,
	}
}

// SyncDirection describes a sync log entry.
type SyncDirection string

const (
	DirectionPush     SyncDirection = "push"
	DirectionPull     SyncDirection = "pull"
	DirectionFallback SyncDirection = "fallback"
	DirectionFlush    SyncDirection = "flush"
)

// LogEntry is one line of the local sync log.
type LogEntry struct {
	At        time.Time     `json:"at"`
	RoomID    string        `json:"room_id"`
	DataType  DataType      `json:"data_type,omitempty"`
	Direction SyncDirection `json:"direction"`
	Error     string        `json:"error,omitempty"`
	Version   int64         `json:"version,omitempty"`
	OK        bool          `json:"ok"`
}
