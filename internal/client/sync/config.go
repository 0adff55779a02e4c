package sync

import (
	"fmt"
	"time"
)

// Config tunes the room manager.
type Config struct {
	// PollInterval bounds how long a missed push stays undetected
	PollInterval time.Duration

	// HeartbeatInterval is how often the host rewrites lastUpdatedAt
	HeartbeatInterval time.Duration

	// RetryBase is the first backoff delay of a failed remote save; it doubles per retry
	RetryBase time.Duration

	// OperationTimeout bounds each single transport call
	OperationTimeout time.Duration

	// MaxRetries is the number of retries after the first failed attempt
	MaxRetries uint64

	// RoomIDLength is the length of generated room ids
	RoomIDLength int
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		PollInterval:      3 * time.Second,
		HeartbeatInterval: 10 * time.Second,
		RetryBase:         2 * time.Second,
		OperationTimeout:  10 * time.Second,
		MaxRetries:        3,
		RoomIDLength:      8,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.PollInterval <= 0 {
		c.PollInterval = d.PollInterval
	}
	if c.HeartbeatInterval <= 0 {
		c.HeartbeatInterval = d.HeartbeatInterval
	}
	if c.RetryBase <= 0 {
		c.RetryBase = d.RetryBase
	}
	if c.OperationTimeout <= 0 {
		c.OperationTimeout = d.OperationTimeout
	}
	if c.RoomIDLength < 4 {
		c.RoomIDLength = d.RoomIDLength
	}
	return c
}

// State is the connection state of the manager.
type State int

const (
	StateDisconnected State = iota
	StateHost
	StateParticipant
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateHost:
		return "host"
	case StateParticipant:
		return "participant"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Connected reports whether the state is Host or Participant.
func (s State) Connected() bool {
	return s == StateHost || s == StateParticipant
}
