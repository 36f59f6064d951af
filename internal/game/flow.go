package game

import (
	"log"
	"math/rand"

	"github.com/doodleduel/doodleduel-backend/internal"
	"github.com/doodleduel/doodleduel-backend/internal/protocol"
	"github.com/doodleduel/doodleduel-backend/internal/utils"
	"github.com/doodleduel/doodleduel-backend/internal/words"
)

// outbox collects encoded events during a critical section so nothing
// touches the bus while the registry locks are held. Callers flush
// after unlocking.
type outbox struct {
	roomID string
	msgs   []WebSocketMessage
}

func newOutbox(roomID string) *outbox {
	return &outbox{roomID: roomID}
}

func (o *outbox) add(routing Routing, event protocol.ServerEvent) {
	data, err := event.Encode()
	if err != nil {
		log.Printf("[outbox] room=%s: failed to encode %T: %v", o.roomID, event, err)
		return
	}
	o.msgs = append(o.msgs, WebSocketMessage{RoomID: o.roomID, Routing: routing, Data: data})
}

func (h *Hub) flush(o *outbox) {
	for _, msg := range o.msgs {
		h.bus.Publish(msg)
	}
}

// chooseWordLocked moves a PickingAWord room into Drawing with the
// given word. The drawer sees the word in clear, everyone else the
// obfuscated form. Registry locks must be held.
func (h *Hub) chooseWordLocked(room *internal.Room, word string, o *outbox) {
	drawer := room.State.CurrentUserID
	room.State.PlayingState = internal.PlayingState{
		Phase:       internal.PhaseDrawing,
		CurrentWord: word,
		TimeLeft:    h.cfg.DrawTime,
	}
	log.Printf("[chooseWordLocked] room=%s: drawer=%s entering drawing phase", room.ID, drawer)

	o.add(BroadcastFrom(drawer), protocol.NewWord{Word: utils.ObfuscateWord(word)})
	o.add(ToUser(drawer), protocol.NewWord{Word: word})
	h.spawnTicker(room.ID)
}

// zeroTimeoutLocked handles a countdown reaching zero: auto-pick a
// word when the drawer dawdled, otherwise end the turn.
func (h *Hub) zeroTimeoutLocked(room *internal.Room, members []*internal.User, o *outbox) {
	switch room.State.PlayingState.Phase {
	case internal.PhasePickingAWord:
		choices := room.State.PlayingState.WordsToPick
		word := choices[rand.Intn(len(choices))]
		log.Printf("[zeroTimeoutLocked] room=%s: auto-picking word", room.ID)
		h.chooseWordLocked(room, word, o)
	case internal.PhaseDrawing:
		h.endOfTurnLocked(room, members, o)
	}
}

// endOfTurnLocked decides what follows a finished turn: another turn
// in this round, the next round, or the end of the game.
func (h *Hub) endOfTurnLocked(room *internal.Room, members []*internal.User, o *outbox) {
	remaining := 0
	for _, member := range members {
		if !member.HasDrawn {
			remaining++
		}
	}

	switch {
	case remaining == 0 && room.State.CurrentRound >= room.MaxRounds:
		h.endGameLocked(room, members, o)
	case remaining > 0:
		h.nextTurnLocked(room, members, o)
	default:
		h.nextRoundLocked(room, members, o)
	}
}

// nextTurnLocked hands the pen to a random member who has not drawn
// this round yet.
func (h *Hub) nextTurnLocked(room *internal.Room, members []*internal.User, o *outbox) {
	for _, member := range members {
		member.HasGuessed = false
	}

	var candidates []*internal.User
	for _, member := range members {
		if !member.HasDrawn {
			candidates = append(candidates, member)
		}
	}
	if len(candidates) == 0 {
		// Callers guarantee a candidate; a miss here means the drawn
		// flags are corrupt. Finish the game instead of spinning.
		log.Printf("[nextTurnLocked] room=%s: no undrawn member found, ending game", room.ID)
		h.endGameLocked(room, members, o)
		return
	}

	drawer := candidates[rand.Intn(len(candidates))]
	drawer.HasDrawn = true
	room.State.CurrentUserID = drawer.ID

	choices := words.GetThreeWords()
	room.State.PlayingState = internal.PlayingState{
		Phase:       internal.PhasePickingAWord,
		WordsToPick: choices,
		TimeLeft:    h.cfg.PickWordTime,
	}
	log.Printf("[nextTurnLocked] room=%s: drawer=%s round=%d", room.ID, drawer.ID, room.State.CurrentRound)

	o.add(Everyone(), protocol.NewTurn{UserIDToDraw: drawer.ID})
	o.add(ToUser(drawer.ID), protocol.PickAWord{WordsToPick: choices})
	h.spawnTicker(room.ID)
}

// nextRoundLocked advances the round counter, clears the drawn flags
// and starts the round's first turn.
func (h *Hub) nextRoundLocked(room *internal.Room, members []*internal.User, o *outbox) {
	room.State.CurrentRound++
	for _, member := range members {
		member.HasDrawn = false
	}
	log.Printf("[nextRoundLocked] room=%s: round=%d", room.ID, room.State.CurrentRound)

	o.add(Everyone(), protocol.NewRound{Round: room.State.CurrentRound})
	h.nextTurnLocked(room, members, o)
}

// endGameLocked finishes the game and clears per-game user state.
func (h *Hub) endGameLocked(room *internal.Room, members []*internal.User, o *outbox) {
	h.deleteTicker(room.ID)
	room.State = internal.RoomState{Kind: internal.StateFinished}
	for _, member := range members {
		member.HasDrawn = false
		member.HasGuessed = false
		member.Score = 0
	}
	log.Printf("[endGameLocked] room=%s: game finished", room.ID)

	o.add(Everyone(), protocol.EndGame{})
}

// resetRoomLocked returns a room to the lobby, used when a game can
// no longer continue.
func (h *Hub) resetRoomLocked(room *internal.Room, members []*internal.User) {
	h.deleteTicker(room.ID)
	room.State = internal.RoomState{Kind: internal.StateWaiting}
	for _, member := range members {
		member.HasDrawn = false
		member.HasGuessed = false
		member.Score = 0
	}
	log.Printf("[resetRoomLocked] room=%s: reset to waiting", room.ID)
}
