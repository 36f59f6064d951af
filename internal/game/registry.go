package game

import (
	"sync"

	"github.com/doodleduel/doodleduel-backend/internal"
)

// Registry holds the process-wide room and user tables. Callers take
// both locks through Lock/Unlock before touching either table; the
// per-table helpers assume the locks are held. Lookups are linear
// scans, the tables stay small.
type Registry struct {
	roomsMu sync.Mutex
	usersMu sync.Mutex
	rooms   []*internal.Room
	users   []*internal.User
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Lock acquires rooms then users. Every caller uses this order, which
// is what rules out deadlock between concurrent readers and the
// ticker.
func (reg *Registry) Lock() {
	reg.roomsMu.Lock()
	reg.usersMu.Lock()
}

func (reg *Registry) Unlock() {
	reg.usersMu.Unlock()
	reg.roomsMu.Unlock()
}

func (reg *Registry) FindRoom(id string) *internal.Room {
	for _, room := range reg.rooms {
		if room.ID == id {
			return room
		}
	}
	return nil
}

func (reg *Registry) FindUser(id string) *internal.User {
	for _, user := range reg.users {
		if user.ID == id {
			return user
		}
	}
	return nil
}

func (reg *Registry) UsersInRoom(roomID string) []*internal.User {
	var members []*internal.User
	for _, user := range reg.users {
		if user.RoomID == roomID {
			members = append(members, user)
		}
	}
	return members
}

// FindAvailablePublicRoom returns the first public room still waiting
// for players with a seat free, or nil.
func (reg *Registry) FindAvailablePublicRoom() *internal.Room {
	for _, room := range reg.rooms {
		if room.Visibility == internal.VisibilityPublic &&
			room.State.Kind == internal.StateWaiting &&
			room.AmountOfUsers < room.MaxUsers {
			return room
		}
	}
	return nil
}

func (reg *Registry) AddRoom(room *internal.Room) {
	reg.rooms = append(reg.rooms, room)
}

func (reg *Registry) AddUser(user *internal.User) {
	reg.users = append(reg.users, user)
}

func (reg *Registry) RemoveUser(id string) {
	for i, user := range reg.users {
		if user.ID == id {
			reg.users = append(reg.users[:i], reg.users[i+1:]...)
			return
		}
	}
}

// ReapRoom drops the room and any users still pointing at it.
func (reg *Registry) ReapRoom(id string) {
	for i, room := range reg.rooms {
		if room.ID == id {
			reg.rooms = append(reg.rooms[:i], reg.rooms[i+1:]...)
			break
		}
	}
	kept := reg.users[:0]
	for _, user := range reg.users {
		if user.RoomID != id {
			kept = append(kept, user)
		}
	}
	reg.users = kept
}
