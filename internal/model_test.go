package internal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomStateWaitingMarshalsAsString(t *testing.T) {
	data, err := json.Marshal(RoomState{Kind: StateWaiting})
	require.NoError(t, err)
	assert.JSONEq(t, `"waiting"`, string(data))

	data, err = json.Marshal(RoomState{Kind: StateFinished})
	require.NoError(t, err)
	assert.JSONEq(t, `"finished"`, string(data))
}

func TestRoomStatePlayingShape(t *testing.T) {
	state := RoomState{
		Kind: StatePlaying,
		PlayingState: PlayingState{
			Phase:       PhasePickingAWord,
			WordsToPick: [3]string{"cat", "dog", "fox"},
			TimeLeft:    5,
		},
		CurrentUserID: "abc123",
		CurrentRound:  2,
	}

	data, err := json.Marshal(state)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"playing": {
			"playingState": {"pickingAWord": {"wordsToPick": ["cat", "dog", "fox"]}},
			"currentUserId": "abc123",
			"currentRound": 2
		}
	}`, string(data))

	var parsed RoomState
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, StatePlaying, parsed.Kind)
	assert.Equal(t, PhasePickingAWord, parsed.PlayingState.Phase)
	assert.Equal(t, [3]string{"cat", "dog", "fox"}, parsed.PlayingState.WordsToPick)
	assert.Equal(t, "abc123", parsed.CurrentUserID)
	assert.Equal(t, uint8(2), parsed.CurrentRound)
}

func TestPlayingStateDrawingShape(t *testing.T) {
	state := PlayingState{
		Phase:       PhaseDrawing,
		CurrentWord: "apple",
		TimeLeft:    3,
	}

	data, err := json.Marshal(state)
	require.NoError(t, err)
	// TimeLeft is server internal and must not leak to clients.
	assert.JSONEq(t, `{"drawing": {"currentWord": "apple"}}`, string(data))
}

func TestUserMarshalHidesInternalFields(t *testing.T) {
	user := User{
		ID:          "u1u1u1",
		DisplayName: "Alice",
		RoomID:      "r1r1r1",
		HasDrawn:    true,
		HasGuessed:  true,
		Score:       30,
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "u1u1u1", "displayName": "Alice"}`, string(data))
}

func TestRoomMarshalShape(t *testing.T) {
	room := Room{
		ID:            "r1r1r1",
		HostID:        "u1u1u1",
		Visibility:    VisibilityPublic,
		State:         RoomState{Kind: StateWaiting},
		MaxUsers:      DefaultMaxUsers,
		MaxRounds:     DefaultMaxRounds,
		AmountOfUsers: 3,
	}

	data, err := json.Marshal(room)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "r1r1r1",
		"hostId": "u1u1u1",
		"visibility": "public",
		"state": "waiting",
		"maxUsers": 8,
		"maxRounds": 4
	}`, string(data))
}

func TestRoomStateUnmarshalRejectsUnknownTags(t *testing.T) {
	var s RoomState
	assert.Error(t, json.Unmarshal([]byte(`"paused"`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"spectating": {}}`), &s))

	var p PlayingState
	assert.Error(t, json.Unmarshal([]byte(`{"guessing": {}}`), &p))
}
