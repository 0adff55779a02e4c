package local

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chipsync/internal/models"
)

func TestBus_PostDeliversToOtherOwners(t *testing.T) {
	bus := NewBus(nil)
	name := RoomChannel("R1abcd")

	var mu sync.Mutex
	var got []string

	stopA := bus.Listen(name, "a", func(m Message) {
		mu.Lock()
		got = append(got, "a:"+m.Type)
		mu.Unlock()
	})
	defer stopA()
	stopB := bus.Listen(name, "b", func(m Message) {
		mu.Lock()
		got = append(got, "b:"+m.Type)
		mu.Unlock()
	})
	defer stopB()

	bus.Post(name, Message{Type: MessageDataUpdate, Sender: "a"})
	bus.Post(RoomChannel("other"), Message{Type: MessageDataUpdate})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	}, time.Second, time.Millisecond)

	mu.Lock()
	assert.Equal(t, []string{"b:" + MessageDataUpdate}, got, "sender must not receive its own post")
	mu.Unlock()
}

func TestBus_ChannelNames(t *testing.T) {
	assert.Equal(t, "chipsync-room-R1abcd", RoomChannel("R1abcd"))
	assert.NotEqual(t, GlobalChannel, RoomChannel("global"))
}

func TestBus_StopListening(t *testing.T) {
	bus := NewBus(nil)

	var calls atomic.Int32
	stop := bus.Listen(GlobalChannel, "a", func(Message) { calls.Add(1) })
	assert.Equal(t, 1, bus.Listeners(GlobalChannel))

	stop()
	stop()
	assert.Equal(t, 0, bus.Listeners(GlobalChannel))

	bus.Post(GlobalChannel, Message{Type: MessageRoomCreated})
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestBus_RemovesChannelWithoutListeners(t *testing.T) {
	bus := NewBus(nil)

	// Посты в пустые каналы их не создают
	for i := 0; i < 100; i++ {
		bus.Post(RoomChannel(fmt.Sprintf("R%04d", i)), Message{Type: MessageDataUpdate})
	}
	assert.Zero(t, bus.Channels())

	stopA := bus.Listen(RoomChannel("R1abcd"), "a", func(Message) {})
	stopB := bus.Listen(RoomChannel("R1abcd"), "b", func(Message) {})
	stopG := bus.Listen(GlobalChannel, "a", func(Message) {})
	assert.Equal(t, 2, bus.Channels())

	stopA()
	assert.Equal(t, 2, bus.Channels(), "channel stays while a listener remains")
	stopB()
	assert.Equal(t, 1, bus.Channels())
	stopG()
	assert.Zero(t, bus.Channels())

	// После удаления канал создается заново и работает
	received := make(chan Message, 1)
	stop := bus.Listen(RoomChannel("R1abcd"), "c", func(m Message) { received <- m })
	defer stop()
	bus.Post(RoomChannel("R1abcd"), Message{Type: MessagePresenceChanged})

	select {
	case m := <-received:
		assert.Equal(t, MessagePresenceChanged, m.Type)
	case <-time.After(time.Second):
		t.Fatal("message not delivered on recreated channel")
	}
}

func TestBus_DropsWhenQueueFull(t *testing.T) {
	bus := NewBus(nil)

	release := make(chan struct{})
	stop := bus.Listen("slow", "a", func(Message) { <-release })
	defer stop()

	// Первое сообщение блокирует обработчик, остальные заполняют очередь
	for i := 0; i < listenerQueueSize+10; i++ {
		bus.Post("slow", Message{Type: MessageDataUpdate})
	}

	assert.Eventually(t, func() bool { return bus.Dropped() > 0 }, time.Second, time.Millisecond)
	close(release)
}

func TestMessage_Record(t *testing.T) {
	now := time.Now()
	msg := Message{
		Type:      MessageDataUpdate,
		RoomID:    "R1abcd",
		DataType:  models.DataTypePlayers,
		Version:   2,
		Payload:   `[{"id":"1"}]`,
		UpdatedBy: "p1",
		UpdatedAt: now,
	}

	record := msg.Record()
	require.NotNil(t, record)
	assert.Equal(t, &models.SyncRecord{
		RoomID:    "R1abcd",
		DataType:  models.DataTypePlayers,
		Version:   2,
		Payload:   `[{"id":"1"}]`,
		UpdatedBy: "p1",
		UpdatedAt: now,
	}, record)
}
