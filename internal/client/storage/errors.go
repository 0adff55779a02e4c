package storage

import "errors"

// Common client storage errors
var (
	// ErrCollectionNotFound indicates that no local copy of the collection exists
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrPendingNotFound indicates that no pending write exists for the key
	ErrPendingNotFound = errors.New("pending write not found")

	// ErrSessionNotFound indicates that no saved room session exists
	ErrSessionNotFound = errors.New("session not found")

	// ErrTokenNotFound indicates that no identity token is cached
	ErrTokenNotFound = errors.New("identity token not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
