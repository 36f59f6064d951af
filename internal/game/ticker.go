package game

import (
	"log"
	"sync"
	"time"

	"github.com/doodleduel/doodleduel-backend/internal"
	"github.com/doodleduel/doodleduel-backend/internal/protocol"
)

// tickerSet tracks the one live ticker per playing room. Entries are
// compared by identity so a ticker that was already replaced can never
// evict its successor.
type tickerSet struct {
	mu     sync.Mutex
	byRoom map[string]*roomTicker
}

type roomTicker struct {
	stop chan struct{}
}

func newTickerSet() *tickerSet {
	return &tickerSet{byRoom: make(map[string]*roomTicker)}
}

func (ts *tickerSet) replace(roomID string, t *roomTicker) *roomTicker {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	old := ts.byRoom[roomID]
	ts.byRoom[roomID] = t
	return old
}

func (ts *tickerSet) remove(roomID string) *roomTicker {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	t := ts.byRoom[roomID]
	delete(ts.byRoom, roomID)
	return t
}

func (ts *tickerSet) removeIfCurrent(roomID string, t *roomTicker) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if ts.byRoom[roomID] == t {
		delete(ts.byRoom, roomID)
	}
}

func (ts *tickerSet) count() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.byRoom)
}

// spawnTicker installs a fresh countdown for the room, stopping any
// predecessor. Safe to call with the registry locks held: the new
// goroutine only touches the registry on its first fire.
func (h *Hub) spawnTicker(roomID string) {
	t := &roomTicker{stop: make(chan struct{})}
	if old := h.tickers.replace(roomID, t); old != nil {
		close(old.stop)
	}
	go h.runTicker(roomID, t)
}

// deleteTicker stops the room's ticker if one is live.
func (h *Hub) deleteTicker(roomID string) {
	if t := h.tickers.remove(roomID); t != nil {
		close(t.stop)
		log.Printf("[deleteTicker] room=%s: ticker stopped", roomID)
	}
}

func (h *Hub) runTicker(roomID string, t *roomTicker) {
	ticker := time.NewTicker(h.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			if !h.tick(roomID, t) {
				return
			}
		}
	}
}

// tick runs one countdown step. Returns false when the ticker is done,
// either because the room left Playing or because the timeout
// transition fired.
func (h *Hub) tick(roomID string, t *roomTicker) bool {
	h.registry.Lock()

	room := h.registry.FindRoom(roomID)
	if room == nil || room.State.Kind != internal.StatePlaying {
		h.tickers.removeIfCurrent(roomID, t)
		h.registry.Unlock()
		return false
	}

	o := newOutbox(roomID)
	timeLeft := room.State.PlayingState.TimeLeft
	o.add(Everyone(), protocol.Tick{TimeLeft: timeLeft})

	done := false
	if timeLeft == 0 {
		// Remove ourselves first so the transition can install a
		// successor without it being evicted.
		h.tickers.removeIfCurrent(roomID, t)
		members := h.registry.UsersInRoom(roomID)
		h.zeroTimeoutLocked(room, members, o)
		done = true
	} else {
		room.State.PlayingState.TimeLeft--
	}

	h.registry.Unlock()
	h.flush(o)
	return !done
}
