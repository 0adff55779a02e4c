package models

import "time"

// DataType names one of the business collections synchronized inside a room.
type DataType string

// Business collections shared by every room.
const (
	DataTypePlayers    DataType = "players"
	DataTypeSessions   DataType = "sessions"
	DataTypeReceipts   DataType = "receipts"
	DataTypeDailySales DataType = "dailySales"
	DataTypeHistory    DataType = "history"
	DataTypeSettings   DataType = "settings"
)

// AllDataTypes lists the collections in a stable order.
var AllDataTypes = []DataType{
	DataTypePlayers,
	DataTypeSessions,
	DataTypeReceipts,
	DataTypeDailySales,
	DataTypeHistory,
	DataTypeSettings,
}

// Valid reports whether d is one of the known collections.
func (d DataType) Valid() bool {
	for _, known := range AllDataTypes {
		if d == known {
			return true
		}
	}
	return false
}

// EmptyPayload returns the serialized empty value of the collection:
// "{}" for settings and "[]" for everything else.
func (d DataType) EmptyPayload() string {
	if d == DataTypeSettings {
		return "{}"
	}
	return "[]"
}

// String implements fmt.Stringer.
func (d DataType) String() string {
	return string(d)
}

// Room represents one shared business-state instance.
type Room struct {
	CreatedAt         time.Time     `json:"created_at"`
	LastUpdatedAt     time.Time     `json:"last_updated_at"` // host heartbeat, informational only
	ID                string        `json:"id"`
	HostParticipantID string        `json:"host_participant_id"`
	Participants      []Participant `json:"participants,omitempty"`
	Version           int64         `json:"version"` // incremented once per accepted mutation
}

// Participant is one device's membership in a room.
type Participant struct {
	JoinedAt time.Time `json:"joined_at"`
	ID       string    `json:"id"`
	RoomID   string    `json:"room_id"`
	Name     string    `json:"name"`
	DeviceID string    `json:"device_id,omitempty"`
	IsHost   bool      `json:"is_host"`
}

// SyncRecord is the persisted serialized form of one collection for one room.
type SyncRecord struct {
	UpdatedAt time.Time `json:"updated_at"`
	RoomID    string    `json:"room_id"`
	DataType  DataType  `json:"data_type"`
	Payload   string    `json:"payload"`
	UpdatedBy string    `json:"updated_by"`
	Version   int64     `json:"version"`
}

// RecordKey returns the document key "{roomId}-{dataType}".
func RecordKey(roomID string, dataType DataType) string {
	return roomID + "-" + string(dataType)
}

// Clone returns a copy of the record.
func (r *SyncRecord) Clone() *SyncRecord {
	c := *r
	return &c
}
