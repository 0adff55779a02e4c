package api

// AnonymousIdentityRequest представляет запрос анонимной identity
type AnonymousIdentityRequest struct {
	DeviceID string `json:"device_id,omitempty"` // постоянный id устройства, если известен
}

// IdentityResponse представляет выданную identity с токеном доступа
type IdentityResponse struct {
	ParticipantID string `json:"participant_id"` // id участника
	Token         string `json:"token"`          // JWT access token
	ExpiresIn     int64  `json:"expires_in"`     // время жизни токена в секундах
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
