package local

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/iudanet/chipsync/internal/models"
)

// Message types posted on bus channels.
const (
	// Room channel
	MessageDataUpdate      = "data_update"
	MessagePresenceChanged = "presence_changed"

	// Global channel, lifecycle only
	MessageRoomCreated = "room_created"
	MessageRoomClosed  = "room_closed"
)

// GlobalChannel is the name of the lifecycle channel shared by all rooms.
const GlobalChannel = "chipsync-global"

// listenerQueueSize is the per-listener buffer. Messages beyond it are dropped.
const listenerQueueSize = 64

// RoomChannel returns the name of the room-scoped channel.
func RoomChannel(roomID string) string {
	return "chipsync-room-" + roomID
}

// Message is one broadcast. Payload is set only for data updates.
type Message struct {
	UpdatedAt time.Time       `json:"updatedAt,omitempty"`
	Type      string          `json:"type"`
	RoomID    string          `json:"roomId,omitempty"`
	DataType  models.DataType `json:"dataType,omitempty"`
	Payload   string          `json:"payload,omitempty"`
	UpdatedBy string          `json:"updatedBy,omitempty"`
	Sender    string          `json:"sender,omitempty"`
	Version   int64           `json:"version,omitempty"`
}

// Record converts a data update message into a sync record.
func (m Message) Record() *models.SyncRecord {
	return &models.SyncRecord{
		RoomID:    m.RoomID,
		DataType:  m.DataType,
		Payload:   m.Payload,
		Version:   m.Version,
		UpdatedBy: m.UpdatedBy,
		UpdatedAt: m.UpdatedAt,
	}
}

// Bus is an in-process set of named broadcast channels.
// Delivery is best-effort: a listener whose queue is full misses the message.
// A channel exists only while it has listeners.
type Bus struct {
	logger   *slog.Logger
	channels map[string]*channel
	next     uint64
	mu       sync.Mutex
	dropped  atomic.Int64
}

type channel struct {
	listeners map[uint64]*listener
}

type listener struct {
	fn    func(Message)
	queue chan Message
	done  chan struct{}
	owner string
}

// NewBus creates an empty bus.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		logger:   logger,
		channels: make(map[string]*channel),
	}
}

// Dropped returns the number of messages dropped because of full queues.
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}

// Post delivers msg to every listener of the named channel except those owned
// by msg.Sender. It never blocks. Posting to a channel nobody listens on does nothing.
func (b *Bus) Post(name string, msg Message) {
	b.mu.Lock()
	ch, ok := b.channels[name]
	if !ok {
		b.mu.Unlock()
		return
	}
	targets := make([]*listener, 0, len(ch.listeners))
	for _, l := range ch.listeners {
		if msg.Sender != "" && l.owner == msg.Sender {
			continue
		}
		targets = append(targets, l)
	}
	b.mu.Unlock()

	for _, l := range targets {
		select {
		case l.queue <- msg:
		default:
			b.dropped.Add(1)
			b.logger.Debug("Broadcast dropped, listener queue full",
				"channel", name, "type", msg.Type)
		}
	}
}

// Listen registers fn for messages posted on the named channel, creating the
// channel on first use. fn runs on a dedicated goroutine, one message at a
// time. owner identifies the listening transport so that it does not receive
// its own posts. Returns a function that stops the listener; the channel is
// removed when its last listener stops.
func (b *Bus) Listen(name, owner string, fn func(Message)) func() {
	l := &listener{
		fn:    fn,
		owner: owner,
		queue: make(chan Message, listenerQueueSize),
		done:  make(chan struct{}),
	}

	b.mu.Lock()
	ch, ok := b.channels[name]
	if !ok {
		ch = &channel{listeners: make(map[uint64]*listener)}
		b.channels[name] = ch
	}
	b.next++
	id := b.next
	ch.listeners[id] = l
	b.mu.Unlock()

	go l.run()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(ch.listeners, id)
			if len(ch.listeners) == 0 && b.channels[name] == ch {
				delete(b.channels, name)
			}
			b.mu.Unlock()
			close(l.done)
		})
	}
}

// Listeners returns the number of active listeners on the named channel.
func (b *Bus) Listeners(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.channels[name]
	if !ok {
		return 0
	}
	return len(ch.listeners)
}

// Channels returns the number of channels that have listeners.
func (b *Bus) Channels() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.channels)
}

func (l *listener) run() {
	for {
		select {
		case <-l.done:
			return
		case msg := <-l.queue:
			l.fn(msg)
		}
	}
}
