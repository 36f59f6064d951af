package game

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/doodleduel/doodleduel-backend/internal"
	"github.com/doodleduel/doodleduel-backend/internal/protocol"
)

// Config carries the tunables of a Hub. Zero fields fall back to the
// defaults from DefaultConfig.
type Config struct {
	MaxUsers     uint8
	MaxRounds    uint8
	PickWordTime uint8
	DrawTime     uint8
	TickInterval time.Duration
	BusCapacity  int
}

func DefaultConfig() Config {
	return Config{
		MaxUsers:     internal.DefaultMaxUsers,
		MaxRounds:    internal.DefaultMaxRounds,
		PickWordTime: internal.PickWordTimeLimit,
		DrawTime:     internal.DrawTimeLimit,
		TickInterval: time.Second,
		BusCapacity:  1024,
	}
}

func (cfg Config) withDefaults() Config {
	def := DefaultConfig()
	if cfg.MaxUsers == 0 {
		cfg.MaxUsers = def.MaxUsers
	}
	if cfg.MaxRounds == 0 {
		cfg.MaxRounds = def.MaxRounds
	}
	if cfg.PickWordTime == 0 {
		cfg.PickWordTime = def.PickWordTime
	}
	if cfg.DrawTime == 0 {
		cfg.DrawTime = def.DrawTime
	}
	if cfg.TickInterval == 0 {
		cfg.TickInterval = def.TickInterval
	}
	if cfg.BusCapacity == 0 {
		cfg.BusCapacity = def.BusCapacity
	}
	return cfg
}

// Hub owns all game state: the registry, the broadcast bus and the
// per-room tickers. One Hub serves the whole process.
type Hub struct {
	cfg      Config
	registry *Registry
	bus      *Bus
	tickers  *tickerSet
	upgrader websocket.Upgrader
}

func NewHub(cfg Config) *Hub {
	cfg = cfg.withDefaults()
	return &Hub{
		cfg:      cfg,
		registry: NewRegistry(),
		bus:      NewBus(cfg.BusCapacity),
		tickers:  newTickerSet(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// GetJoinableRoom returns the id of a public waiting room with a free
// seat, or "" when none exists.
func (h *Hub) GetJoinableRoom() string {
	h.registry.Lock()
	defer h.registry.Unlock()
	if room := h.registry.FindAvailablePublicRoom(); room != nil {
		return room.ID
	}
	return ""
}

// RoomExists reports whether a room with this id is live.
func (h *Hub) RoomExists(id string) bool {
	h.registry.Lock()
	defer h.registry.Unlock()
	return h.registry.FindRoom(id) != nil
}

// publish encodes one event and puts it on the bus. Encode failures
// are logged and the event dropped; nothing downstream can recover a
// frame that cannot be built.
func (h *Hub) publish(roomID string, routing Routing, event protocol.ServerEvent) {
	data, err := event.Encode()
	if err != nil {
		log.Printf("[publish] room=%s: failed to encode %T: %v", roomID, event, err)
		return
	}
	h.bus.Publish(WebSocketMessage{RoomID: roomID, Routing: routing, Data: data})
}
