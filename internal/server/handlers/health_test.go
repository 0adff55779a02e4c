package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chipsync/pkg/api"
)

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		db             Pinger
		name           string
		expectedStatus string
		expectedCode   int
	}{
		{name: "no database", expectedCode: http.StatusOK, expectedStatus: "ok"},
		{name: "database up", db: fakePinger{}, expectedCode: http.StatusOK, expectedStatus: "ok"},
		{name: "database down", db: fakePinger{err: errDown}, expectedCode: http.StatusServiceUnavailable, expectedStatus: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(setupTestLogger(), tt.db)

			w := httptest.NewRecorder()
			handler.Health(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var resp api.HealthResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.expectedStatus, resp.Status)
		})
	}
}
