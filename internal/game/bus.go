package game

import (
	"log"
	"sync"
)

type RoutingKind int

const (
	// RouteEveryone delivers to every subscriber in the room.
	RouteEveryone RoutingKind = iota
	// RouteBroadcast delivers to everyone in the room except the sender.
	RouteBroadcast
	// RouteUser delivers to a single user.
	RouteUser
)

type Routing struct {
	Kind       RoutingKind
	SenderID   string
	ReceiverID string
}

func Everyone() Routing {
	return Routing{Kind: RouteEveryone}
}

func BroadcastFrom(senderID string) Routing {
	return Routing{Kind: RouteBroadcast, SenderID: senderID}
}

func ToUser(receiverID string) Routing {
	return Routing{Kind: RouteUser, ReceiverID: receiverID}
}

// acceptedBy reports whether a subscriber identified by userID should
// receive a message with this routing.
func (rt Routing) acceptedBy(userID string) bool {
	switch rt.Kind {
	case RouteEveryone:
		return true
	case RouteBroadcast:
		return userID != rt.SenderID
	case RouteUser:
		return userID == rt.ReceiverID
	}
	return false
}

// WebSocketMessage is one routed, already encoded frame on the bus.
type WebSocketMessage struct {
	RoomID  string
	Routing Routing
	Data    []byte
}

// Bus fans published messages out to every live subscription. Sends
// never block: a subscriber whose channel is full misses the message,
// which the next state-bearing event repairs.
type Bus struct {
	mu       sync.Mutex
	capacity int
	subs     map[*Subscription]struct{}
}

type Subscription struct {
	C   chan WebSocketMessage
	bus *Bus
}

func NewBus(capacity int) *Bus {
	return &Bus{
		capacity: capacity,
		subs:     make(map[*Subscription]struct{}),
	}
}

func (b *Bus) Subscribe() *Subscription {
	sub := &Subscription{
		C:   make(chan WebSocketMessage, b.capacity),
		bus: b,
	}
	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()
	return sub
}

// Close removes the subscription and closes its channel. Safe to call
// once per subscription; Publish holds the same lock, so no send can
// race the close.
func (s *Subscription) Close() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	if _, ok := s.bus.subs[s]; !ok {
		return
	}
	delete(s.bus.subs, s)
	close(s.C)
}

func (b *Bus) Publish(msg WebSocketMessage) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for sub := range b.subs {
		select {
		case sub.C <- msg:
		default:
			log.Printf("[Publish] room=%s: subscriber lagging, dropping message", msg.RoomID)
		}
	}
}
