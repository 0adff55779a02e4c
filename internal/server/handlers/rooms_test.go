package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/transport"
	"github.com/iudanet/chipsync/pkg/api"
)

func TestRoomHandler_GetRoom(t *testing.T) {
	router := newRoomRouter(t, setupTestTransport(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/"+testRoomID, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.RoomResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, testRoomID, resp.ID)
	assert.Equal(t, "host", resp.HostParticipantID)
	require.Len(t, resp.Participants, 1)
	assert.Equal(t, "Alice", resp.Participants[0].Name)
	assert.True(t, resp.Participants[0].IsHost)
}

func TestRoomHandler_GetRecord(t *testing.T) {
	tr := setupTestTransport(t)
	router := newRoomRouter(t, tr)

	require.NoError(t, tr.Put(context.Background(), &models.SyncRecord{
		RoomID:    testRoomID,
		DataType:  models.DataTypePlayers,
		Payload:   `[{"name":"Ann","chips":100}]`,
		UpdatedBy: "host",
	}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/"+testRoomID+"/records/players", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.RecordResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "players", resp.DataType)
	assert.Equal(t, int64(2), resp.Version)
	assert.JSONEq(t, `[{"name":"Ann","chips":100}]`, string(resp.Payload))
}

func TestRoomHandler_Errors(t *testing.T) {
	router := newRoomRouter(t, setupTestTransport(t))

	tests := []struct {
		name string
		path string
		code int
	}{
		{name: "unknown room", path: "/api/v1/rooms/Zzzzzz", code: http.StatusNotFound},
		{name: "invalid room id", path: "/api/v1/rooms/a!", code: http.StatusBadRequest},
		{name: "unknown data type", path: "/api/v1/rooms/" + testRoomID + "/records/chips", code: http.StatusBadRequest},
		{name: "record of unknown room", path: "/api/v1/rooms/Zzzzzz/records/players", code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestRoomHandler_TransportUnavailable(t *testing.T) {
	mock := &transport.TransportMock{
		GetRoomFunc: func(ctx context.Context, roomID string) (*models.Room, error) {
			return nil, transport.ErrReadFailed
		},
	}
	handler := NewRoomHandler(setupTestLogger(), mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/"+testRoomID, nil)
	r := newChiRequest(req, map[string]string{"roomID": testRoomID})
	handler.GetRoom(w, r)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRawPayload(t *testing.T) {
	assert.JSONEq(t, `{"a":1}`, string(rawPayload(`{"a":1}`)))
	assert.Equal(t, `"not json"`, string(rawPayload("not json")))
}
