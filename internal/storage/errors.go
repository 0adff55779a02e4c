package storage

import "errors"

// Common shared storage errors
var (
	// ErrRoomNotFound indicates that room was not found in storage
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomAlreadyExists indicates that room with this id already exists
	ErrRoomAlreadyExists = errors.New("room already exists")

	// ErrRecordNotFound indicates that sync record was not found
	ErrRecordNotFound = errors.New("sync record not found")

	// ErrIdentityNotFound indicates that identity was not found
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrIdentityAlreadyExists indicates that identity with this participant id already exists
	ErrIdentityAlreadyExists = errors.New("identity already exists")
)
