package sync

import (
	"errors"

	"github.com/iudanet/chipsync/internal/codec"
	"github.com/iudanet/chipsync/internal/transport"
)

// Manager errors
var (
	// ErrNotConnected indicates that the operation needs a room
	ErrNotConnected = errors.New("not connected to a room")

	// ErrAlreadyConnected indicates that the manager is already in a room
	ErrAlreadyConnected = errors.New("already connected to a room")

	// ErrUnknownDataType indicates that the data type is not one of the six collections
	ErrUnknownDataType = errors.New("unknown data type")

	// ErrClosed indicates that the manager was closed
	ErrClosed = errors.New("manager closed")
)

// Transport errors surfaced by the manager unchanged
var (
	ErrTransportUnavailable = transport.ErrTransportUnavailable
	ErrRoomNotFound         = transport.ErrRoomNotFound
	ErrWriteFailed          = transport.ErrWriteFailed
	ErrReadFailed           = transport.ErrReadFailed
	ErrSerialization        = codec.ErrSerialization
)
