package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/chipsync/internal/client/api"
	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/server/handlers"
	"github.com/iudanet/chipsync/internal/storage/sqlite"
	"github.com/iudanet/chipsync/internal/transport/local"
	"github.com/iudanet/chipsync/pkg/api"
)

func setupServer(t *testing.T, rateLimit int) (*httptest.Server, *local.Transport) {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	tr := local.New(store, local.Options{Logger: logger, PollInterval: time.Hour})
	t.Cleanup(func() { _ = tr.Close() })

	now := time.Now().UTC()
	records := make([]*models.SyncRecord, 0, len(models.AllDataTypes))
	for _, dt := range models.AllDataTypes {
		records = append(records, &models.SyncRecord{RoomID: "R1abcd", DataType: dt, Payload: dt.EmptyPayload(), Version: 1, UpdatedAt: now})
	}
	require.NoError(t, tr.CreateRoom(ctx, &models.Room{ID: "R1abcd", HostParticipantID: "host", Version: 1, CreatedAt: now, LastUpdatedAt: now}, records))

	srv := New(Options{
		Logger:     logger,
		Transport:  tr,
		Identities: store,
		DB:         store.DB(),
		JWT:        handlers.JWTConfig{Secret: []byte("test-secret-key-0123"), TokenTTL: time.Hour},
		RateLimit:  rateLimit,
	})
	t.Cleanup(srv.Close)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, tr
}

func TestServer_IdentityThenRoom(t *testing.T) {
	ts, _ := setupServer(t, 10)
	ctx := context.Background()
	client := clientapi.NewClient(ts.URL)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)

	identity, err := client.AnonymousIdentity(ctx, "device-1")
	require.NoError(t, err)
	require.NotEmpty(t, identity.Token)

	room, err := client.GetRoom(ctx, identity.Token, "R1abcd")
	require.NoError(t, err)
	assert.Equal(t, "R1abcd", room.ID)
	assert.Equal(t, int64(1), room.Version)

	record, err := client.GetRecord(ctx, identity.Token, "R1abcd", "settings")
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(record.Payload))

	_, err = client.GetRoom(ctx, identity.Token, "Zzzzzz")
	assert.ErrorIs(t, err, clientapi.ErrNotFound)
}

func TestServer_RoomsRequireToken(t *testing.T) {
	ts, _ := setupServer(t, 10)

	_, err := clientapi.NewClient(ts.URL).GetRoom(context.Background(), "", "R1abcd")
	assert.ErrorIs(t, err, clientapi.ErrUnauthorized)
}

func TestServer_IdentityRateLimited(t *testing.T) {
	ts, _ := setupServer(t, 2)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		body, _ := json.Marshal(api.AnonymousIdentityRequest{DeviceID: "d"})
		resp, err := http.Post(ts.URL+"/api/v1/identity/anonymous", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		_ = resp.Body.Close()
		codes = append(codes, resp.StatusCode)
	}

	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
}

func TestServer_Run(t *testing.T) {
	srv := New(Options{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Address: "127.0.0.1:0",
		JWT:     handlers.JWTConfig{Secret: []byte("test-secret-key-0123"), TokenTTL: time.Hour},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
