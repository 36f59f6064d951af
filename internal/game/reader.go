package game

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/gorilla/websocket"

	"github.com/doodleduel/doodleduel-backend/internal"
	"github.com/doodleduel/doodleduel-backend/internal/protocol"
	"github.com/doodleduel/doodleduel-backend/internal/words"
)

// readLoop consumes inbound frames until the socket dies, then runs
// the disconnect path. Malformed frames are dropped, not fatal.
func (c *client) readLoop() {
	defer c.disconnect()

	for {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[readLoop] room=%s user=%s: read failed: %v", c.roomID, c.userID, err)
			}
			return
		}
		if msgType != websocket.BinaryMessage {
			continue
		}

		event, err := protocol.DecodeClientEvent(data)
		if err != nil {
			log.Printf("[readLoop] room=%s user=%s: dropping bad frame: %v", c.roomID, c.userID, err)
			continue
		}
		c.hub.handleClientEvent(c.roomID, c.userID, event)
	}
}

// handleClientEvent applies one decoded client event against the game
// state. Exported behavior is identical whether the event arrived over
// a socket or from a test.
func (h *Hub) handleClientEvent(roomID, userID string, event protocol.ClientEvent) {
	switch e := event.(type) {
	case protocol.ClientStartGame:
		h.handleStartGame(roomID, userID)
	case protocol.ClientPickAWord:
		h.handlePickAWord(roomID, userID, e.Word)
	case protocol.ClientPointerDown:
		h.publish(roomID, Everyone(), protocol.PointerDown{})
	case protocol.ClientPointerMove:
		h.publish(roomID, Everyone(), protocol.PointerMove{X: e.X, Y: e.Y})
	case protocol.ClientPointerUp:
		h.publish(roomID, Everyone(), protocol.PointerUp{})
	case protocol.ClientPointerLeave:
		h.publish(roomID, Everyone(), protocol.PointerLeave{})
	case protocol.ClientChangeColor:
		h.publish(roomID, Everyone(), protocol.ChangeColor{Color: e.Color})
	case protocol.ClientChatMessage:
		h.handleChatMessage(roomID, userID, e.Message)
	}
}

func (h *Hub) handleStartGame(roomID, userID string) {
	h.registry.Lock()
	o := newOutbox(roomID)

	room := h.registry.FindRoom(roomID)
	if room == nil {
		h.registry.Unlock()
		return
	}
	members := h.registry.UsersInRoom(roomID)

	switch {
	case room.HostID != userID:
		o.add(ToUser(userID), protocol.Error{Message: "Only the host can start the game"})
	case room.State.Kind != internal.StateWaiting:
		o.add(ToUser(userID), protocol.Error{Message: "Game has already started"})
	case len(members) < internal.MinPlayersToStart:
		o.add(ToUser(userID), protocol.Error{Message: "At least 2 players are needed to start the game"})
	default:
		drawer := members[rand.Intn(len(members))]
		drawer.HasDrawn = true

		choices := words.GetThreeWords()
		room.State = internal.RoomState{
			Kind: internal.StatePlaying,
			PlayingState: internal.PlayingState{
				Phase:       internal.PhasePickingAWord,
				WordsToPick: choices,
				TimeLeft:    h.cfg.PickWordTime,
			},
			CurrentUserID: drawer.ID,
			CurrentRound:  1,
		}
		log.Printf("[handleStartGame] room=%s: game started, drawer=%s", roomID, drawer.ID)

		o.add(Everyone(), protocol.StartGame{})
		o.add(Everyone(), protocol.NewTurn{UserIDToDraw: drawer.ID})
		o.add(ToUser(drawer.ID), protocol.PickAWord{WordsToPick: choices})
		h.spawnTicker(roomID)
	}

	h.registry.Unlock()
	h.flush(o)
}

func (h *Hub) handlePickAWord(roomID, userID, word string) {
	h.registry.Lock()
	o := newOutbox(roomID)

	room := h.registry.FindRoom(roomID)
	if room == nil {
		h.registry.Unlock()
		return
	}

	valid := room.State.Kind == internal.StatePlaying &&
		room.State.PlayingState.Phase == internal.PhasePickingAWord &&
		room.State.CurrentUserID == userID
	if valid {
		valid = false
		for _, choice := range room.State.PlayingState.WordsToPick {
			if choice == word {
				valid = true
				break
			}
		}
	}

	if valid {
		h.deleteTicker(roomID)
		h.chooseWordLocked(room, word, o)
	} else {
		log.Printf("[handlePickAWord] room=%s user=%s: ignoring invalid pick", roomID, userID)
	}

	h.registry.Unlock()
	h.flush(o)
}

func (h *Hub) handleChatMessage(roomID, userID, message string) {
	h.registry.Lock()
	o := newOutbox(roomID)

	room := h.registry.FindRoom(roomID)
	if room == nil {
		h.registry.Unlock()
		return
	}
	sender := h.registry.FindUser(userID)
	if sender == nil {
		h.registry.Unlock()
		return
	}

	drawing := room.State.Kind == internal.StatePlaying &&
		room.State.PlayingState.Phase == internal.PhaseDrawing

	if !drawing || message != room.State.PlayingState.CurrentWord {
		o.add(Everyone(), protocol.Message{UserID: userID, Message: message})
		h.registry.Unlock()
		h.flush(o)
		return
	}

	// A correct guess. The drawer and anyone who already guessed must
	// not leak the word through chat.
	if userID == room.State.CurrentUserID || sender.HasGuessed {
		o.add(ToUser(userID), protocol.Error{Message: "You cannot expose the word being drawn"})
		h.registry.Unlock()
		h.flush(o)
		return
	}

	sender.HasGuessed = true
	sender.Score += internal.GuessScore
	log.Printf("[handleChatMessage] room=%s: user=%s guessed the word", roomID, userID)

	o.add(Everyone(), protocol.AddScore{UserID: userID, Score: internal.GuessScore})
	o.add(Everyone(), protocol.UserGuessed{UserID: userID})
	o.add(Everyone(), protocol.SystemMessage{
		Message: fmt.Sprintf("%s has guessed the word!", sender.DisplayName),
	})
	o.add(ToUser(userID), protocol.NewWord{Word: room.State.PlayingState.CurrentWord})

	members := h.registry.UsersInRoom(roomID)
	everyoneGuessed := true
	for _, member := range members {
		if member.ID == room.State.CurrentUserID {
			continue
		}
		if !member.HasGuessed {
			everyoneGuessed = false
			break
		}
	}
	if everyoneGuessed {
		h.deleteTicker(roomID)
		h.endOfTurnLocked(room, members, o)
	}

	h.registry.Unlock()
	h.flush(o)
}
