package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodleduel/doodleduel-backend/internal"
	"github.com/doodleduel/doodleduel-backend/internal/protocol"
)

func TestTickerCountsDownAndAutoPicks(t *testing.T) {
	h := NewHub(Config{
		TickInterval: 5 * time.Millisecond,
		PickWordTime: 2,
		DrawTime:     2,
	})
	seedRoom(h, "room01", "hostus", "guestu")
	defer h.deleteTicker("room01")
	host := connect(t, h, "hostus")

	h.handleClientEvent("room01", "hostus", protocol.ClientStartGame{})

	// The pick countdown runs 2,1,0 and then auto-picks a word.
	require.Eventually(t, func() bool {
		return stateOf(h, "room01").PlayingState.Phase == internal.PhaseDrawing
	}, time.Second, time.Millisecond)

	state := stateOf(h, "room01")
	assert.NotEmpty(t, state.PlayingState.CurrentWord)

	var ticks []uint8
	for _, event := range host.events(t) {
		if tick, ok := event.(protocol.Tick); ok {
			ticks = append(ticks, tick.TimeLeft)
		}
	}
	require.NotEmpty(t, ticks)
	assert.Equal(t, uint8(2), ticks[0])
	for i := 1; i < len(ticks); i++ {
		if ticks[i] > ticks[i-1] {
			// Countdown restarted for the drawing phase.
			assert.Equal(t, uint8(2), ticks[i])
		} else {
			assert.Equal(t, ticks[i-1]-1, ticks[i])
		}
	}
}

func TestTickerDrivesGameToFinish(t *testing.T) {
	h := NewHub(Config{
		TickInterval: 2 * time.Millisecond,
		PickWordTime: 1,
		DrawTime:     1,
		MaxRounds:    1,
	})
	seedRoom(h, "room01", "hostus", "guestu")
	defer h.deleteTicker("room01")

	h.handleClientEvent("room01", "hostus", protocol.ClientStartGame{})

	// With nobody picking or guessing, the timeouts alone walk the game
	// through both turns to the end.
	require.Eventually(t, func() bool {
		return stateOf(h, "room01").Kind == internal.StateFinished
	}, 2*time.Second, time.Millisecond)

	assert.Eventually(t, func() bool {
		return h.tickers.count() == 0
	}, time.Second, time.Millisecond)
}

func TestTickerExitsWhenRoomLeavesPlaying(t *testing.T) {
	h := NewHub(Config{TickInterval: 2 * time.Millisecond})
	seedRoom(h, "room01", "hostus", "guestu")

	// A ticker pointed at a waiting room notices and exits on its
	// first fire.
	h.spawnTicker("room01")
	assert.Eventually(t, func() bool {
		return h.tickers.count() == 0
	}, time.Second, time.Millisecond)
}

func TestSpawnTickerReplacesPredecessor(t *testing.T) {
	h := NewHub(Config{TickInterval: time.Hour})
	seedRoom(h, "room01", "hostus", "guestu")
	defer h.deleteTicker("room01")

	h.spawnTicker("room01")
	h.spawnTicker("room01")
	assert.Equal(t, 1, h.tickers.count())

	h.deleteTicker("room01")
	assert.Equal(t, 0, h.tickers.count())
}
