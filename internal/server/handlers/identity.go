package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/storage"
	"github.com/iudanet/chipsync/pkg/api"
)

// maxDeviceIDLength bounds client-supplied device ids
const maxDeviceIDLength = 128

// IdentityHandler выдает анонимные identity
type IdentityHandler struct {
	logger     *slog.Logger
	identities storage.IdentityStorage
	jwtConfig  JWTConfig
	now        func() time.Time
}

// NewIdentityHandler создает новый handler для выдачи identity
func NewIdentityHandler(logger *slog.Logger, identities storage.IdentityStorage, jwtConfig JWTConfig) *IdentityHandler {
	return &IdentityHandler{
		logger:     logger,
		identities: identities,
		jwtConfig:  jwtConfig,
		now:        time.Now,
	}
}

// Anonymous обрабатывает POST /api/v1/identity/anonymous
// Каждый вызов выдает новый participant id; device id сохраняется как есть
func (h *IdentityHandler) Anonymous(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.AnonymousIdentityRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 4096)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.WarnContext(ctx, "failed to decode identity request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.DeviceID) > maxDeviceIDLength {
		sendError(h.logger, w, "device_id is too long", http.StatusBadRequest)
		return
	}
	if req.DeviceID == "" {
		req.DeviceID = uuid.New().String()
	}

	now := h.now().UTC()
	identity := &models.Identity{
		ParticipantID: uuid.New().String(),
		DeviceID:      req.DeviceID,
		CreatedAt:     now,
		LastSeenAt:    now,
	}

	if err := h.identities.CreateIdentity(ctx, identity); err != nil {
		h.logger.ErrorContext(ctx, "failed to store identity", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	token, expiresIn, err := GenerateIdentityToken(h.jwtConfig, identity.ParticipantID, identity.DeviceID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "anonymous identity issued", slog.String("participant_id", identity.ParticipantID))

	sendJSON(h.logger, w, api.IdentityResponse{
		ParticipantID: identity.ParticipantID,
		Token:         token,
		ExpiresIn:     expiresIn,
	}, http.StatusCreated)
}
