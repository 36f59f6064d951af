package game

import (
	"log"

	"github.com/doodleduel/doodleduel-backend/internal"
	"github.com/doodleduel/doodleduel-backend/internal/protocol"
)

// handleDisconnect runs once per connection after its socket closed:
// remove the user, reap or reset the room, advance the turn past a
// vanished drawer, re-elect the host, announce the departure.
func (h *Hub) handleDisconnect(roomID, userID string) {
	h.registry.Lock()
	o := newOutbox(roomID)

	room := h.registry.FindRoom(roomID)
	if room == nil {
		h.registry.RemoveUser(userID)
		h.registry.Unlock()
		return
	}

	leaverWasHost := room.HostID == userID
	leaverWasDrawer := room.State.Kind == internal.StatePlaying &&
		room.State.CurrentUserID == userID

	h.registry.RemoveUser(userID)
	room.AmountOfUsers--

	if room.AmountOfUsers == 0 {
		h.deleteTicker(roomID)
		h.registry.ReapRoom(roomID)
		h.registry.Unlock()
		log.Printf("[handleDisconnect] room=%s: last user left, room reaped", roomID)
		return
	}

	members := h.registry.UsersInRoom(roomID)

	if room.State.Kind == internal.StatePlaying || room.State.Kind == internal.StateFinished {
		if room.AmountOfUsers == 1 {
			// One player cannot keep a game going.
			h.resetRoomLocked(room, members)
			o.add(BroadcastFrom(userID), protocol.ResetRoom{})
		} else if leaverWasDrawer {
			log.Printf("[handleDisconnect] room=%s: drawer=%s left mid-turn", roomID, userID)
			h.deleteTicker(roomID)
			h.endOfTurnLocked(room, members, o)
		}
	}

	if leaverWasHost {
		newHost := members[0]
		room.HostID = newHost.ID
		log.Printf("[handleDisconnect] room=%s: host reassigned to %s", roomID, newHost.ID)
		o.add(BroadcastFrom(userID), protocol.NewHost{UserID: newHost.ID})
	}

	o.add(BroadcastFrom(userID), protocol.UserLeft{UserID: userID})

	h.registry.Unlock()
	h.flush(o)
}
