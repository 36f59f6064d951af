package game

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gorilla/websocket"

	"github.com/doodleduel/doodleduel-backend/internal"
	"github.com/doodleduel/doodleduel-backend/internal/protocol"
	"github.com/doodleduel/doodleduel-backend/internal/utils"
)

type joinMode string

const (
	modePlay   joinMode = "play"
	modeCreate joinMode = "create"
)

var (
	errRoomNotFound     = errors.New("Room not found")
	errRoomNotAvailable = errors.New("Room is not available")
	errRoomFull         = errors.New("Room is full")
)

// HandleWebSocket upgrades the connection and runs the join
// orchestration: validate the handshake, place the user in a room,
// send the initial snapshot, announce the join and start the
// reader/writer pair. The read loop runs on the handler goroutine.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	displayName := strings.TrimSpace(query.Get("displayName"))
	requestedRoomID := query.Get("roomId")
	mode := modePlay
	if query.Get("mode") == string(modeCreate) {
		mode = modeCreate
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[HandleWebSocket] upgrade failed: %v", err)
		return
	}

	nameLen := utf8.RuneCountInString(displayName)
	if nameLen < internal.MinDisplayNameLen || nameLen > internal.MaxDisplayNameLen {
		rejectConnect(conn, "Display name is required and must be between 3 and 20 characters long")
		return
	}

	user, snapshot, err := h.join(displayName, requestedRoomID, mode)
	if err != nil {
		rejectConnect(conn, err.Error())
		return
	}

	c := &client{
		hub:    h,
		conn:   conn,
		sub:    h.bus.Subscribe(),
		userID: user.ID,
		roomID: user.RoomID,
	}

	// The snapshot goes straight to the socket, not through the bus:
	// the writer is not running yet and nobody else may see it.
	data, err := snapshot.Encode()
	if err != nil {
		log.Printf("[HandleWebSocket] room=%s user=%s: failed to encode snapshot: %v", user.RoomID, user.ID, err)
		c.disconnect()
		return
	}
	if err := c.safeWriteBinary(data); err != nil {
		log.Printf("[HandleWebSocket] room=%s user=%s: failed to send snapshot: %v", user.RoomID, user.ID, err)
		c.disconnect()
		return
	}

	h.publish(user.RoomID, BroadcastFrom(user.ID), protocol.UserJoined{User: user})
	log.Printf("[HandleWebSocket] room=%s: user=%s (%s) joined", user.RoomID, user.ID, user.DisplayName)

	go c.writeLoop()
	c.readLoop()
}

// join places a user into a room under the registry locks and returns
// the registered user plus the snapshot to send.
func (h *Hub) join(displayName, requestedRoomID string, mode joinMode) (internal.User, protocol.SendGameState, error) {
	h.registry.Lock()
	defer h.registry.Unlock()

	user := &internal.User{
		ID:          utils.GenerateID(),
		DisplayName: displayName,
	}

	var room *internal.Room
	switch {
	case mode == modeCreate:
		room = h.newRoomLocked(user.ID, internal.VisibilityPrivate)
	case requestedRoomID == "":
		room = h.registry.FindAvailablePublicRoom()
		if room != nil {
			room.AmountOfUsers++
		} else {
			room = h.newRoomLocked(user.ID, internal.VisibilityPublic)
		}
	default:
		room = h.registry.FindRoom(requestedRoomID)
		if room == nil {
			return internal.User{}, protocol.SendGameState{}, errRoomNotFound
		}
		if room.State.Kind != internal.StateWaiting {
			return internal.User{}, protocol.SendGameState{}, errRoomNotAvailable
		}
		if room.AmountOfUsers >= room.MaxUsers {
			return internal.User{}, protocol.SendGameState{}, errRoomFull
		}
		room.AmountOfUsers++
	}

	user.RoomID = room.ID
	h.registry.AddUser(user)

	members := h.registry.UsersInRoom(room.ID)
	usersInRoom := make([]internal.User, 0, len(members))
	for _, member := range members {
		usersInRoom = append(usersInRoom, *member)
	}

	snapshot := protocol.SendGameState{
		Room:        *room,
		User:        *user,
		UsersInRoom: usersInRoom,
	}
	return *user, snapshot, nil
}

// newRoomLocked allocates and registers a room hosted by hostID.
func (h *Hub) newRoomLocked(hostID string, visibility internal.Visibility) *internal.Room {
	room := &internal.Room{
		ID:            utils.GenerateID(),
		HostID:        hostID,
		Visibility:    visibility,
		State:         internal.RoomState{Kind: internal.StateWaiting},
		MaxUsers:      h.cfg.MaxUsers,
		MaxRounds:     h.cfg.MaxRounds,
		AmountOfUsers: 1,
	}
	h.registry.AddRoom(room)
	log.Printf("[newRoomLocked] room=%s: created (%s), host=%s", room.ID, visibility, hostID)
	return room
}

// rejectConnect surfaces a join failure on the raw socket and closes
// it. The user was never registered, so there is nothing to undo.
func rejectConnect(conn *websocket.Conn, message string) {
	data, err := (protocol.ConnectError{Message: message}).Encode()
	if err == nil {
		_ = conn.WriteMessage(websocket.BinaryMessage, data)
	}
	_ = conn.Close()
}
