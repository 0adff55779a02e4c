package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/chipsync/pkg/api"
)

// ErrUnauthorized indicates that the server rejected the access token
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound indicates that the requested room or record does not exist
var ErrNotFound = errors.New("not found")

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// AnonymousIdentity получает анонимную identity для устройства
func (c *Client) AnonymousIdentity(ctx context.Context, deviceID string) (*api.IdentityResponse, error) {
	var resp api.IdentityResponse
	req := api.AnonymousIdentityRequest{DeviceID: deviceID}
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/identity/anonymous", "", req, &resp); err != nil {
		return nil, fmt.Errorf("identity request failed: %w", err)
	}
	return &resp, nil
}

// GetRoom получает состояние комнаты
func (c *Client) GetRoom(ctx context.Context, token, roomID string) (*api.RoomResponse, error) {
	var resp api.RoomResponse
	path := "/api/v1/rooms/" + url.PathEscape(roomID)
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("get room request failed: %w", err)
	}
	return &resp, nil
}

// GetRecord получает запись синхронизации комнаты
func (c *Client) GetRecord(ctx context.Context, token, roomID, dataType string) (*api.RecordResponse, error) {
	var resp api.RecordResponse
	path := fmt.Sprintf("/api/v1/rooms/%s/records/%s", url.PathEscape(roomID), url.PathEscape(dataType))
	if err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, fmt.Errorf("get record request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var sentinel error
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			sentinel = ErrUnauthorized
		case http.StatusNotFound:
			sentinel = ErrNotFound
		}

		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && (errResp.Message != "" || errResp.Error != "") {
			msg := errResp.Message
			if msg == "" {
				msg = errResp.Error
			}
			if sentinel != nil {
				return fmt.Errorf("%w: server error (%d): %s", sentinel, resp.StatusCode, msg)
			}
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, msg)
		}
		if sentinel != nil {
			return fmt.Errorf("%w: request failed with status %d", sentinel, resp.StatusCode)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
