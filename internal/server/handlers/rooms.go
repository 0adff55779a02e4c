package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/transport"
	"github.com/iudanet/chipsync/internal/validation"
	"github.com/iudanet/chipsync/pkg/api"
)

// RoomHandler отдает состояние комнат только для чтения
type RoomHandler struct {
	logger    *slog.Logger
	transport transport.Transport
}

// NewRoomHandler создает новый handler комнат
func NewRoomHandler(logger *slog.Logger, t transport.Transport) *RoomHandler {
	return &RoomHandler{
		logger:    logger,
		transport: t,
	}
}

// GetRoom обрабатывает GET /api/v1/rooms/{roomID}
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	roomID := chi.URLParam(r, "roomID")

	if err := validation.ValidateRoomID(roomID); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	room, err := h.transport.GetRoom(ctx, roomID)
	if err != nil {
		h.sendTransportError(w, r, err)
		return
	}

	sendJSON(h.logger, w, roomResponse(room), http.StatusOK)
}

// GetRecord обрабатывает GET /api/v1/rooms/{roomID}/records/{dataType}
func (h *RoomHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	roomID := chi.URLParam(r, "roomID")
	dataType := chi.URLParam(r, "dataType")

	if err := validation.ValidateRoomID(roomID); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateDataType(dataType); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.transport.Get(ctx, roomID, models.DataType(dataType))
	if err != nil {
		h.sendTransportError(w, r, err)
		return
	}

	sendJSON(h.logger, w, api.RecordResponse{
		UpdatedAt: record.UpdatedAt,
		RoomID:    record.RoomID,
		DataType:  string(record.DataType),
		UpdatedBy: record.UpdatedBy,
		Payload:   rawPayload(record.Payload),
		Version:   record.Version,
	}, http.StatusOK)
}

func (h *RoomHandler) sendTransportError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, transport.ErrRoomNotFound):
		sendError(h.logger, w, "room not found", http.StatusNotFound)
	case errors.Is(err, transport.ErrRecordNotFound):
		sendError(h.logger, w, "record not found", http.StatusNotFound)
	default:
		h.logger.ErrorContext(r.Context(), "transport read failed", slog.Any("error", err))
		sendError(h.logger, w, "room store unavailable", http.StatusServiceUnavailable)
	}
}

func roomResponse(room *models.Room) api.RoomResponse {
	return api.RoomResponse{
		CreatedAt:         room.CreatedAt,
		LastUpdatedAt:     room.LastUpdatedAt,
		ID:                room.ID,
		HostParticipantID: room.HostParticipantID,
		Participants:      participantsResponse(room.Participants),
		Version:           room.Version,
	}
}

func participantsResponse(participants []models.Participant) []api.Participant {
	out := make([]api.Participant, 0, len(participants))
	for _, p := range participants {
		out = append(out, api.Participant{
			JoinedAt: p.JoinedAt,
			ID:       p.ID,
			Name:     p.Name,
			IsHost:   p.IsHost,
		})
	}
	return out
}

// rawPayload returns the payload as embedded JSON, or as a JSON string if it is not valid JSON.
func rawPayload(payload string) json.RawMessage {
	if json.Valid([]byte(payload)) {
		return json.RawMessage(payload)
	}
	quoted, _ := json.Marshal(payload)
	return quoted
}
