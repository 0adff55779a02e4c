package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/iudanet/chipsync/internal/models"
	"github.com/iudanet/chipsync/internal/transport"
	"github.com/iudanet/chipsync/internal/validation"
	"github.com/iudanet/chipsync/pkg/api"
)

const (
	// streamQueueSize is how many messages may wait for a slow client before it is dropped
	streamQueueSize = 64
	streamReadLimit = 512
)

// StreamHandler пересылает изменения комнаты в websocket
type StreamHandler struct {
	logger       *slog.Logger
	transport    transport.Transport
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
}

// NewStreamHandler создает handler потока изменений
func NewStreamHandler(logger *slog.Logger, t transport.Transport, writeTimeout time.Duration) *StreamHandler {
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	return &StreamHandler{
		logger:    logger,
		transport: t,
		// Токен проверяется middleware, origin не ограничиваем
		upgrader:     websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		writeTimeout: writeTimeout,
	}
}

// Stream обрабатывает GET /api/v1/rooms/{roomID}/ws
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	roomID := chi.URLParam(r, "roomID")

	if err := validation.ValidateRoomID(roomID); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	exists, err := h.transport.RoomExists(ctx, roomID)
	if err != nil {
		h.logger.ErrorContext(ctx, "transport read failed", slog.Any("error", err))
		sendError(h.logger, w, "room store unavailable", http.StatusServiceUnavailable)
		return
	}
	if !exists {
		sendError(h.logger, w, "room not found", http.StatusNotFound)
		return
	}

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		h.logger.WarnContext(ctx, "websocket upgrade failed", slog.Any("error", err))
		return
	}

	p := newStreamPeer(ws, h.writeTimeout)
	participantID, _ := GetParticipantID(ctx)
	logger := h.logger.With(slog.String("room_id", roomID), slog.String("participant_id", participantID))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		p.runWriter()
	}()

	unsubscribe, err := h.subscribe(r, roomID, p)
	if err != nil {
		logger.WarnContext(ctx, "failed to subscribe to room", slog.Any("error", err))
		p.close()
	} else {
		logger.InfoContext(ctx, "stream opened")
		p.runListener()
	}

	for _, fn := range unsubscribe {
		fn()
	}
	p.close()
	wg.Wait()

	logger.Info("stream closed")
}

func (h *StreamHandler) subscribe(r *http.Request, roomID string, p *streamPeer) ([]func(), error) {
	var unsubscribe []func()

	for _, dt := range models.AllDataTypes {
		fn, err := h.transport.Subscribe(r.Context(), roomID, dt, func(record *models.SyncRecord) {
			p.send(api.StreamMessage{
				Type:     api.StreamDataUpdate,
				DataType: string(record.DataType),
				Payload:  rawPayload(record.Payload),
				Version:  record.Version,
			})
		})
		if err != nil {
			return unsubscribe, err
		}
		unsubscribe = append(unsubscribe, fn)
	}

	fn, err := h.transport.SubscribePresence(r.Context(), roomID, func(participants []models.Participant) {
		p.send(api.StreamMessage{
			Type:         api.StreamParticipants,
			Participants: participantsResponse(participants),
		})
	})
	if err != nil {
		return unsubscribe, err
	}

	return append(unsubscribe, fn), nil
}

// streamPeer is one websocket client.
type streamPeer struct {
	ws           *websocket.Conn
	dataQ        chan []byte
	done         chan struct{}
	writeTimeout time.Duration
	once         sync.Once
}

func newStreamPeer(ws *websocket.Conn, writeTimeout time.Duration) *streamPeer {
	return &streamPeer{
		ws:           ws,
		dataQ:        make(chan []byte, streamQueueSize),
		done:         make(chan struct{}),
		writeTimeout: writeTimeout,
	}
}

// send queues a message. A client that cannot keep up is disconnected.
func (p *streamPeer) send(msg api.StreamMessage) {
	b, err := json.Marshal(msg)
	if err != nil {
		return
	}

	select {
	case <-p.done:
	case p.dataQ <- b:
	default:
		p.close()
	}
}

func (p *streamPeer) close() {
	p.once.Do(func() { close(p.done) })
}

// runListener reads until the client goes away. Incoming messages are ignored.
func (p *streamPeer) runListener() {
	p.ws.SetReadLimit(streamReadLimit)
	for {
		if _, _, err := p.ws.ReadMessage(); err != nil {
			break
		}
	}
	p.close()
}

// runWriter writes queued messages until the peer is closed.
func (p *streamPeer) runWriter() {
	defer p.ws.Close()
	for {
		select {
		case message := <-p.dataQ:
			if err := p.write(websocket.TextMessage, message); err != nil {
				p.close()
				return
			}
		case <-p.done:
			_ = p.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

func (p *streamPeer) write(msgType int, payload []byte) error {
	_ = p.ws.SetWriteDeadline(time.Now().Add(p.writeTimeout))
	return p.ws.WriteMessage(msgType, payload)
}
