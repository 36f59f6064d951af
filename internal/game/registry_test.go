package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodleduel/doodleduel-backend/internal"
)

func TestRegistryLookups(t *testing.T) {
	reg := NewRegistry()
	reg.Lock()
	defer reg.Unlock()

	room := &internal.Room{
		ID:            "room01",
		HostID:        "user01",
		Visibility:    internal.VisibilityPublic,
		State:         internal.RoomState{Kind: internal.StateWaiting},
		MaxUsers:      8,
		MaxRounds:     4,
		AmountOfUsers: 2,
	}
	reg.AddRoom(room)
	reg.AddUser(&internal.User{ID: "user01", DisplayName: "Alice", RoomID: "room01"})
	reg.AddUser(&internal.User{ID: "user02", DisplayName: "Bob", RoomID: "room01"})

	assert.Equal(t, room, reg.FindRoom("room01"))
	assert.Nil(t, reg.FindRoom("nosuch"))
	assert.NotNil(t, reg.FindUser("user02"))
	assert.Nil(t, reg.FindUser("nosuch"))
	assert.Len(t, reg.UsersInRoom("room01"), 2)
	assert.Empty(t, reg.UsersInRoom("nosuch"))
}

func TestFindAvailablePublicRoom(t *testing.T) {
	reg := NewRegistry()
	reg.Lock()
	defer reg.Unlock()

	private := &internal.Room{
		ID: "priv01", Visibility: internal.VisibilityPrivate,
		State: internal.RoomState{Kind: internal.StateWaiting}, MaxUsers: 8, AmountOfUsers: 1,
	}
	full := &internal.Room{
		ID: "full01", Visibility: internal.VisibilityPublic,
		State: internal.RoomState{Kind: internal.StateWaiting}, MaxUsers: 2, AmountOfUsers: 2,
	}
	playing := &internal.Room{
		ID: "play01", Visibility: internal.VisibilityPublic,
		State: internal.RoomState{Kind: internal.StatePlaying}, MaxUsers: 8, AmountOfUsers: 3,
	}
	open := &internal.Room{
		ID: "open01", Visibility: internal.VisibilityPublic,
		State: internal.RoomState{Kind: internal.StateWaiting}, MaxUsers: 8, AmountOfUsers: 1,
	}
	reg.AddRoom(private)
	reg.AddRoom(full)
	reg.AddRoom(playing)
	reg.AddRoom(open)

	found := reg.FindAvailablePublicRoom()
	require.NotNil(t, found)
	assert.Equal(t, "open01", found.ID)
}

func TestReapRoomRemovesUsers(t *testing.T) {
	reg := NewRegistry()
	reg.Lock()
	defer reg.Unlock()

	reg.AddRoom(&internal.Room{ID: "room01"})
	reg.AddRoom(&internal.Room{ID: "room02"})
	reg.AddUser(&internal.User{ID: "user01", RoomID: "room01"})
	reg.AddUser(&internal.User{ID: "user02", RoomID: "room02"})

	reg.ReapRoom("room01")

	assert.Nil(t, reg.FindRoom("room01"))
	assert.Nil(t, reg.FindUser("user01"))
	assert.NotNil(t, reg.FindRoom("room02"))
	assert.NotNil(t, reg.FindUser("user02"))
}

func TestRemoveUser(t *testing.T) {
	reg := NewRegistry()
	reg.Lock()
	defer reg.Unlock()

	reg.AddUser(&internal.User{ID: "user01"})
	reg.AddUser(&internal.User{ID: "user02"})

	reg.RemoveUser("user01")
	assert.Nil(t, reg.FindUser("user01"))
	assert.NotNil(t, reg.FindUser("user02"))

	// Removing an unknown id is a no-op.
	reg.RemoveUser("nosuch")
	assert.NotNil(t, reg.FindUser("user02"))
}
