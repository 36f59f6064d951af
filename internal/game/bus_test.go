package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutingAcceptedBy(t *testing.T) {
	assert.True(t, Everyone().acceptedBy("user01"))
	assert.True(t, Everyone().acceptedBy("user02"))

	broadcast := BroadcastFrom("user01")
	assert.False(t, broadcast.acceptedBy("user01"))
	assert.True(t, broadcast.acceptedBy("user02"))

	direct := ToUser("user01")
	assert.True(t, direct.acceptedBy("user01"))
	assert.False(t, direct.acceptedBy("user02"))
}

func TestBusFansOutToAllSubscribers(t *testing.T) {
	bus := NewBus(4)
	first := bus.Subscribe()
	second := bus.Subscribe()
	defer first.Close()
	defer second.Close()

	bus.Publish(WebSocketMessage{RoomID: "room01", Routing: Everyone(), Data: []byte{1}})

	assert.Len(t, first.C, 1)
	assert.Len(t, second.C, 1)
}

func TestBusDropsWhenSubscriberLags(t *testing.T) {
	bus := NewBus(2)
	slow := bus.Subscribe()
	defer slow.Close()

	for i := 0; i < 5; i++ {
		bus.Publish(WebSocketMessage{RoomID: "room01", Routing: Everyone(), Data: []byte{byte(i)}})
	}

	// Publishing past capacity never blocks; the overflow is dropped.
	assert.Len(t, slow.C, 2)
	msg := <-slow.C
	assert.Equal(t, []byte{0}, msg.Data)
}

func TestSubscriptionCloseIsIdempotent(t *testing.T) {
	bus := NewBus(2)
	sub := bus.Subscribe()
	sub.Close()
	sub.Close()

	// Publishing after close must not panic on the closed channel.
	bus.Publish(WebSocketMessage{RoomID: "room01", Routing: Everyone(), Data: []byte{1}})
}
