// Package storage defines the local durable store of a device.
package storage

// Storage is everything the room manager keeps on the device.
type Storage interface {
	CollectionStorage
	PendingStorage
	MetadataStorage
	SyncLogStorage
}
