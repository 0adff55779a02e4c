package transport

import (
	"errors"

	"github.com/iudanet/chipsync/internal/codec"
)

// Error taxonomy shared by every transport. Backend errors are translated
// into these at the transport boundary.
var (
	// ErrTransportUnavailable indicates that the underlying store could not be reached
	ErrTransportUnavailable = errors.New("transport unavailable")

	// ErrRoomNotFound indicates that the room does not exist or was deleted
	ErrRoomNotFound = errors.New("room not found")

	// ErrRecordNotFound indicates that the room has no record for the data type
	ErrRecordNotFound = errors.New("record not found")

	// ErrWriteFailed indicates that a write to the shared store did not complete
	ErrWriteFailed = errors.New("write failed")

	// ErrReadFailed indicates that a read from the shared store did not complete
	ErrReadFailed = errors.New("read failed")

	// ErrRoomExists indicates that the room id is already taken
	ErrRoomExists = errors.New("room already exists")

	// ErrClosed indicates that the transport was closed
	ErrClosed = errors.New("transport closed")

	// ErrSerialization is re-exported so callers need only this package
	ErrSerialization = codec.ErrSerialization
)

// IsPermanent reports whether retrying the operation cannot help.
func IsPermanent(err error) bool {
	return errors.Is(err, ErrRoomNotFound) ||
		errors.Is(err, ErrRoomExists) ||
		errors.Is(err, ErrSerialization) ||
		errors.Is(err, ErrClosed)
}
