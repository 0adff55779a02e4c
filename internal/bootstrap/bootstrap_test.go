package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chipsync/internal/client/identity"
	"github.com/iudanet/chipsync/internal/client/storage/boltdb"
	roomsync "github.com/iudanet/chipsync/internal/client/sync"
	"github.com/iudanet/chipsync/internal/config"
	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/transport"
	"github.com/iudanet/chipsync/internal/transport/clouddoc"
	"github.com/iudanet/chipsync/internal/transport/local"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(config.NewFlagSet("test"), nil)
	require.NoError(t, err)

	dir := t.TempDir()
	cfg.Transport.SQLitePath = filepath.Join(dir, "shared.db")
	cfg.Client.DBPath = filepath.Join(dir, "client.db")
	return cfg
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("auto is json when not a terminal", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(&buf, "info", "auto")
		require.NoError(t, err)

		logger.Info("hello", "room_id", "R1abcd")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "hello", line["msg"])
		assert.Equal(t, "R1abcd", line["room_id"])
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(&buf, "info", "text")
		require.NoError(t, err)

		logger.Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(&buf, "warn", "text")
		require.NoError(t, err)

		logger.Info("quiet")
		assert.Empty(t, buf.String())
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := NewLogger(&bytes.Buffer{}, "info", "xml")
		assert.Error(t, err)
	})
}

func TestOpenTransport(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)

	t.Run("local", func(t *testing.T) {
		cfg := testConfig(t)
		tr, err := OpenTransport(ctx, cfg, logger)
		require.NoError(t, err)
		assert.Equal(t, local.Name, tr.Name())
		assert.NoError(t, tr.Close())
	})

	t.Run("clouddoc in memory", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Transport.Kind = config.TransportCloudDoc
		cfg.Transport.RedisURL = MemoryRedisURL

		tr, err := OpenTransport(ctx, cfg, logger)
		require.NoError(t, err)
		assert.Equal(t, clouddoc.Name, tr.Name())
		assert.NoError(t, tr.Close())
	})

	t.Run("unknown kind", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Transport.Kind = "pigeon"

		_, err := OpenTransport(ctx, cfg, logger)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, transport.ErrTransportUnavailable)
	})

	t.Run("shared store cannot be opened", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Transport.SQLitePath = unopenablePath(t)

		_, err := OpenTransport(ctx, cfg, logger)
		assert.ErrorIs(t, err, transport.ErrTransportUnavailable)
	})
}

// unopenablePath returns a database path whose parent is a regular file.
func unopenablePath(t *testing.T) string {
	t.Helper()
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	return filepath.Join(blocker, "shared.db")
}

func TestNewIdentityProvider(t *testing.T) {
	cfg := testConfig(t)
	store, err := boltdb.New(context.Background(), cfg.Client.DBPath)
	require.NoError(t, err)
	defer store.Close()

	logger := slog.New(slog.DiscardHandler)

	assert.IsType(t, &identity.DeviceProvider{}, NewIdentityProvider(cfg, store, logger))

	cfg.Client.ServerIdentity = true
	assert.IsType(t, &identity.Fallback{}, NewIdentityProvider(cfg, store, logger))
}

func TestOpenClient_HostsRoom(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	c, err := OpenClient(ctx, cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer func() { assert.NoError(t, c.Close()) }()

	roomID, err := c.Manager.CreateRoom(ctx, "Alice")
	require.NoError(t, err)
	assert.Len(t, roomID, cfg.Sync.RoomIDLength)
	assert.Equal(t, roomsync.StateHost, c.Manager.State())

	session, err := c.Store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, roomID, session.RoomID)

	payload, err := c.Manager.Payload(ctx, models.DataTypePlayers)
	require.NoError(t, err)
	assert.Equal(t, "[]", payload)
}

func TestOpenClient_TransportUnavailable(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.Transport.SQLitePath = unopenablePath(t)

	c, err := OpenClient(ctx, cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer func() { assert.NoError(t, c.Close()) }()

	require.ErrorIs(t, c.Offline, transport.ErrTransportUnavailable)
	assert.Equal(t, "offline", c.Transport.Name())

	// Локальное сохранение работает без общего хранилища
	result, err := c.Manager.Save(ctx, models.DataTypePlayers, []any{"Ann"})
	require.NoError(t, err)
	assert.True(t, result.Local)
	assert.False(t, result.Remote)

	stored, err := c.Store.GetCollection(ctx, models.DataTypePlayers)
	require.NoError(t, err)
	assert.Equal(t, `["Ann"]`, stored)

	_, err = c.Manager.CreateRoom(ctx, "Alice")
	assert.ErrorIs(t, err, roomsync.ErrTransportUnavailable)
}

func TestRedisLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	redisLogger{logger: logger}.Printf(context.Background(), "redis: connection pool: %s", "timeout")

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "connection pool: timeout")
}

func TestSyncConfig(t *testing.T) {
	cfg := testConfig(t)
	sc := SyncConfig(cfg)

	assert.Equal(t, cfg.Sync.PollInterval, sc.PollInterval)
	assert.Equal(t, cfg.Sync.MaxRetries, sc.MaxRetries)
	assert.Equal(t, cfg.Sync.RoomIDLength, sc.RoomIDLength)
}
