package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chipsync/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	assert.NotNil(t, client)
	assert.Equal(t, baseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		_ = json.NewEncoder(w).Encode(api.HealthResponse{Status: "ok"})
	}))
	defer server.Close()

	resp, err := NewClient(server.URL).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
}

// TestClient_AnonymousIdentity проверяет получение identity
func TestClient_AnonymousIdentity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/identity/anonymous", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.AnonymousIdentityRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "device-1", req.DeviceID)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.IdentityResponse{ParticipantID: "anon-1", Token: "jwt", ExpiresIn: 3600})
	}))
	defer server.Close()

	resp, err := NewClient(server.URL).AnonymousIdentity(context.Background(), "device-1")
	require.NoError(t, err)
	assert.Equal(t, "anon-1", resp.ParticipantID)
	assert.Equal(t, "jwt", resp.Token)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
}

func TestClient_GetRoomAndRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/api/v1/rooms/R1abcd":
			_ = json.NewEncoder(w).Encode(api.RoomResponse{
				ID: "R1abcd", HostParticipantID: "host", Version: 3,
				Participants: []api.Participant{{ID: "host", Name: "Host", IsHost: true}},
			})
		case "/api/v1/rooms/R1abcd/records/players":
			_ = json.NewEncoder(w).Encode(api.RecordResponse{
				RoomID: "R1abcd", DataType: "players", Version: 3, Payload: json.RawMessage(`[{"id":"p1"}]`),
			})
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "not_found", Message: "room not found"})
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	room, err := client.GetRoom(ctx, "jwt", "R1abcd")
	require.NoError(t, err)
	assert.Equal(t, int64(3), room.Version)
	require.Len(t, room.Participants, 1)
	assert.True(t, room.Participants[0].IsHost)

	record, err := client.GetRecord(ctx, "jwt", "R1abcd", "players")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"p1"}]`, string(record.Payload))

	_, err = client.GetRoom(ctx, "jwt", "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "server error (404): room not found")
}

// TestClient_Errors проверяет обработку ошибок
func TestClient_Errors(t *testing.T) {
	tests := []struct {
		responseBody   interface{}
		wantErr        error
		name           string
		expectedErrMsg string
		statusCode     int
	}{
		{
			name:           "Unauthorized",
			statusCode:     http.StatusUnauthorized,
			responseBody:   api.ErrorResponse{Error: "unauthorized", Message: "invalid token"},
			wantErr:        ErrUnauthorized,
			expectedErrMsg: "server error (401): invalid token",
		},
		{
			name:           "Rate limited",
			statusCode:     http.StatusTooManyRequests,
			responseBody:   api.ErrorResponse{Error: "rate_limited", Message: "too many requests"},
			expectedErrMsg: "server error (429): too many requests",
		},
		{
			name:           "Internal server error",
			statusCode:     http.StatusInternalServerError,
			responseBody:   "Internal Server Error",
			expectedErrMsg: "request failed with status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				if errResp, ok := tt.responseBody.(api.ErrorResponse); ok {
					_ = json.NewEncoder(w).Encode(errResp)
				} else {
					_, _ = w.Write([]byte(tt.responseBody.(string)))
				}
			}))
			defer server.Close()

			_, err := NewClient(server.URL).AnonymousIdentity(context.Background(), "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestClient_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := NewClient(server.URL).Health(ctx)
	assert.Error(t, err)
}
