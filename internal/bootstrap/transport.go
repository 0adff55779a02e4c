package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/chipsync/internal/config"
	"github.com/iudanet/chipsync/internal/storage/sqlite"
	"github.com/iudanet/chipsync/internal/transport"
	"github.com/iudanet/chipsync/internal/transport/clouddoc"
	"github.com/iudanet/chipsync/internal/transport/local"
)

// MemoryRedisURL selects the in-process document store instead of redis.
const MemoryRedisURL = "memory://"

// Transport is an opened transport together with the backend it owns.
type Transport struct {
	transport.Transport
	closers []func() error
}

// Close stops the transport, then releases its backend.
func (t *Transport) Close() error {
	errs := []error{t.Transport.Close()}
	for i := len(t.closers) - 1; i >= 0; i-- {
		errs = append(errs, t.closers[i]())
	}
	return errors.Join(errs...)
}

// OpenTransport opens the transport selected by cfg.Transport.Kind.
func OpenTransport(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Transport, error) {
	switch cfg.Transport.Kind {
	case config.TransportLocal:
		store, err := sqlite.New(ctx, cfg.Transport.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to open shared store: %w", transport.ErrTransportUnavailable, err)
		}
		t := local.New(store, local.Options{
			Bus:          local.NewBus(logger),
			Logger:       logger,
			PollInterval: cfg.Sync.PollInterval,
		})
		logger.Debug("Local transport opened", "path", cfg.Transport.SQLitePath)
		return &Transport{Transport: t, closers: []func() error{store.Close}}, nil

	case config.TransportCloudDoc:
		if cfg.Transport.RedisURL == MemoryRedisURL {
			store := clouddoc.NewMemoryStore()
			t := clouddoc.New(store, clouddoc.Options{Logger: logger})
			return &Transport{Transport: t, closers: []func() error{store.Close}}, nil
		}

		SetRedisLogger(logger)
		client, err := clouddoc.OpenRedis(ctx, cfg.Transport.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", transport.ErrTransportUnavailable, err)
		}
		store := clouddoc.NewRedisStore(client, cfg.Transport.Prefix, logger)
		t := clouddoc.New(store, clouddoc.Options{Logger: logger})
		logger.Debug("Cloud document transport opened", "prefix", cfg.Transport.Prefix)
		return &Transport{Transport: t, closers: []func() error{store.Close}}, nil

	default:
		return nil, fmt.Errorf("unknown transport kind %q", cfg.Transport.Kind)
	}
}
