package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/storage/sqlite"
	"github.com/iudanet/chipsync/internal/transport/local"
)

const testRoomID = "R1abcd"

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testJWTConfig() JWTConfig {
	return JWTConfig{Secret: []byte("test-secret-key-0123"), TokenTTL: time.Hour}
}

func setupTestStore(t *testing.T) *sqlite.Storage {
	t.Helper()
	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// setupTestTransport returns a local transport with one room.
func setupTestTransport(t *testing.T) *local.Transport {
	t.Helper()
	tr := local.New(setupTestStore(t), local.Options{
		Logger:       setupTestLogger(),
		PollInterval: time.Hour,
	})
	t.Cleanup(func() { _ = tr.Close() })

	ctx := context.Background()
	now := time.Now().UTC()
	room := &models.Room{ID: testRoomID, HostParticipantID: "host", Version: 1, CreatedAt: now, LastUpdatedAt: now}

	records := make([]*models.SyncRecord, 0, len(models.AllDataTypes))
	for _, dt := range models.AllDataTypes {
		records = append(records, &models.SyncRecord{
			RoomID: testRoomID, DataType: dt, Payload: dt.EmptyPayload(), Version: 1, UpdatedBy: "host", UpdatedAt: now,
		})
	}
	require.NoError(t, tr.CreateRoom(ctx, room, records))
	require.NoError(t, tr.Register(ctx, models.Participant{
		ID: "host", RoomID: testRoomID, Name: "Alice", IsHost: true, JoinedAt: now,
	}))

	return tr
}

func newRoomRouter(t *testing.T, tr *local.Transport) chi.Router {
	rooms := NewRoomHandler(setupTestLogger(), tr)
	stream := NewStreamHandler(setupTestLogger(), tr, time.Second)

	r := chi.NewRouter()
	r.Get("/api/v1/rooms/{roomID}", rooms.GetRoom)
	r.Get("/api/v1/rooms/{roomID}/records/{dataType}", rooms.GetRecord)
	r.Get("/api/v1/rooms/{roomID}/ws", stream.Stream)
	return r
}

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error {
	return p.err
}

var errDown = errors.New("down")

// newChiRequest attaches chi URL params to a request for direct handler calls.
func newChiRequest(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
