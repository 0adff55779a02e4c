package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/chipsync/internal/client/api"
	"github.com/iudanet/chipsync/internal/client/identity"
	"github.com/iudanet/chipsync/internal/client/storage/boltdb"
	roomsync "github.com/iudanet/chipsync/internal/client/sync"
	"github.com/iudanet/chipsync/internal/config"
	"github.com/iudanet/chipsync/internal/transport"
)

// Client holds the components of one device.
type Client struct {
	Store     *boltdb.Storage
	Transport *Transport
	Identity  identity.Provider
	Manager   *roomsync.Manager
	// Offline is the reason the transport could not be opened, nil when it is up
	Offline error
}

// SyncConfig converts the sync section into the manager configuration.
func SyncConfig(cfg *config.Config) roomsync.Config {
	return roomsync.Config{
		PollInterval:      cfg.Sync.PollInterval,
		HeartbeatInterval: cfg.Sync.HeartbeatInterval,
		RetryBase:         cfg.Sync.RetryBase,
		OperationTimeout:  cfg.Sync.OperationTimeout,
		MaxRetries:        cfg.Sync.MaxRetries,
		RoomIDLength:      cfg.Sync.RoomIDLength,
	}
}

// NewIdentityProvider returns the device provider, or the server one with
// the device provider as fallback when client.server_identity is set.
func NewIdentityProvider(cfg *config.Config, store *boltdb.Storage, logger *slog.Logger) identity.Provider {
	device := identity.NewDeviceProvider(store)
	if !cfg.Client.ServerIdentity {
		return device
	}

	remote := identity.NewRemoteProvider(api.NewClient(cfg.Client.ServerURL), store, store, logger)
	return identity.NewFallback(remote, device, logger)
}

// OpenClient opens the local store and the transport and builds the manager.
// An unreachable transport is not fatal: the client is returned with an offline
// transport and Offline set, and the manager works on the local store only.
func OpenClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Client, error) {
	store, err := boltdb.New(ctx, cfg.Client.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	var offline error
	t, err := OpenTransport(ctx, cfg, logger)
	switch {
	case errors.Is(err, transport.ErrTransportUnavailable):
		logger.Warn("Transport unavailable, working locally", "kind", cfg.Transport.Kind, "error", err)
		offline = err
		t = &Transport{Transport: transport.NewOffline(err)}
	case err != nil:
		store.Close() //nolint:errcheck
		return nil, err
	}

	provider := NewIdentityProvider(cfg, store, logger)

	manager := roomsync.New(roomsync.Options{
		Transport: t,
		Store:     store,
		Identity:  provider,
		Logger:    logger,
		Config:    SyncConfig(cfg),
	})

	return &Client{
		Store:     store,
		Transport: t,
		Identity:  provider,
		Manager:   manager,
		Offline:   offline,
	}, nil
}

// Close stops the manager without leaving the room, then closes the transport and the store.
func (c *Client) Close() error {
	return errors.Join(
		c.Manager.Close(),
		c.Transport.Close(),
		c.Store.Close(),
	)
}
