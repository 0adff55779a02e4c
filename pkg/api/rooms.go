package api

import (
	"encoding/json"
	"time"
)

// Stream message types
const (
	StreamDataUpdate   = "data_update"
	StreamParticipants = "participants"
)

// Participant представляет участника комнаты
type Participant struct {
	JoinedAt time.Time `json:"joined_at"`
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	IsHost   bool      `json:"is_host"`
}

// RoomResponse представляет состояние комнаты
type RoomResponse struct {
	CreatedAt         time.Time     `json:"created_at"`
	LastUpdatedAt     time.Time     `json:"last_updated_at"`
	ID                string        `json:"id"`
	HostParticipantID string        `json:"host_participant_id"`
	Participants      []Participant `json:"participants"`
	Version           int64         `json:"version"`
}

// RecordResponse представляет одну запись синхронизации. Payload передается как есть
type RecordResponse struct {
	UpdatedAt time.Time       `json:"updated_at"`
	RoomID    string          `json:"room_id"`
	DataType  string          `json:"data_type"`
	UpdatedBy string          `json:"updated_by"`
	Payload   json.RawMessage `json:"payload"`
	Version   int64           `json:"version"`
}

// StreamMessage is sent over the room websocket.
type StreamMessage struct {
	Type         string          `json:"type"`
	DataType     string          `json:"data_type,omitempty"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	Participants []Participant   `json:"participants,omitempty"`
	Version      int64           `json:"version,omitempty"`
}
