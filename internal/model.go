package internal

import (
	"encoding/json"
	"fmt"
)

const (
	BinaryProtocolVersion byte = 1

	// Both limits are placeholders for local play; production values come
	// from flags (see cmd/api).
	PickWordTimeLimit uint8 = 5
	DrawTimeLimit     uint8 = 5

	DefaultMaxUsers  uint8 = 8
	DefaultMaxRounds uint8 = 4

	MinPlayersToStart = 2

	GuessScore uint16 = 10

	MinDisplayNameLen = 3
	MaxDisplayNameLen = 20
)

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

type PlayingPhase int

const (
	PhasePickingAWord PlayingPhase = iota
	PhaseDrawing
)

// PlayingState is the substate of a Playing room. Exactly one of the
// per-phase fields is meaningful, selected by Phase. TimeLeft is
// server-internal and never serialized.
type PlayingState struct {
	Phase       PlayingPhase
	WordsToPick [3]string
	CurrentWord string
	TimeLeft    uint8
}

func (p PlayingState) MarshalJSON() ([]byte, error) {
	switch p.Phase {
	case PhasePickingAWord:
		return json.Marshal(map[string]any{
			"pickingAWord": map[string]any{
				"wordsToPick": p.WordsToPick,
			},
		})
	case PhaseDrawing:
		return json.Marshal(map[string]any{
			"drawing": map[string]any{
				"currentWord": p.CurrentWord,
			},
		})
	}
	return nil, fmt.Errorf("unknown playing phase %d", p.Phase)
}

func (p *PlayingState) UnmarshalJSON(data []byte) error {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if raw, ok := tagged["pickingAWord"]; ok {
		var body struct {
			WordsToPick [3]string `json:"wordsToPick"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return err
		}
		p.Phase = PhasePickingAWord
		p.WordsToPick = body.WordsToPick
		return nil
	}
	if raw, ok := tagged["drawing"]; ok {
		var body struct {
			CurrentWord string `json:"currentWord"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return err
		}
		p.Phase = PhaseDrawing
		p.CurrentWord = body.CurrentWord
		return nil
	}
	return fmt.Errorf("unknown playing state tag")
}

type RoomStateKind int

const (
	StateWaiting RoomStateKind = iota
	StatePlaying
	StateFinished
)

// RoomState mirrors the client's externally tagged representation:
// "waiting" and "finished" are bare strings, "playing" carries a body.
type RoomState struct {
	Kind          RoomStateKind
	PlayingState  PlayingState
	CurrentUserID string
	CurrentRound  uint8
}

func (s RoomState) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case StateWaiting:
		return json.Marshal("waiting")
	case StateFinished:
		return json.Marshal("finished")
	case StatePlaying:
		return json.Marshal(map[string]any{
			"playing": map[string]any{
				"playingState":  s.PlayingState,
				"currentUserId": s.CurrentUserID,
				"currentRound":  s.CurrentRound,
			},
		})
	}
	return nil, fmt.Errorf("unknown room state %d", s.Kind)
}

func (s *RoomState) UnmarshalJSON(data []byte) error {
	var unit string
	if err := json.Unmarshal(data, &unit); err == nil {
		switch unit {
		case "waiting":
			*s = RoomState{Kind: StateWaiting}
			return nil
		case "finished":
			*s = RoomState{Kind: StateFinished}
			return nil
		}
		return fmt.Errorf("unknown room state %q", unit)
	}
	var tagged struct {
		Playing *struct {
			PlayingState  PlayingState `json:"playingState"`
			CurrentUserID string       `json:"currentUserId"`
			CurrentRound  uint8        `json:"currentRound"`
		} `json:"playing"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	if tagged.Playing == nil {
		return fmt.Errorf("unknown room state tag")
	}
	*s = RoomState{
		Kind:          StatePlaying,
		PlayingState:  tagged.Playing.PlayingState,
		CurrentUserID: tagged.Playing.CurrentUserID,
		CurrentRound:  tagged.Playing.CurrentRound,
	}
	return nil
}

type Room struct {
	ID            string     `json:"id"`
	HostID        string     `json:"hostId"`
	Visibility    Visibility `json:"visibility"`
	State         RoomState  `json:"state"`
	MaxUsers      uint8      `json:"maxUsers"`
	MaxRounds     uint8      `json:"maxRounds"`
	AmountOfUsers uint8      `json:"-"`
}

type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	RoomID      string `json:"-"`
	HasDrawn    bool   `json:"-"`
	HasGuessed  bool   `json:"-"`
	Score       uint16 `json:"-"`
}

// Response is the envelope for plain HTTP endpoints.
type Response struct {
	StatusCode    int   `json:"status_code"`
	RespStartTime int64 `json:"resp_time_start_ms"`
	RespEndTime   int64 `json:"resp_time_end_ms"`
	NetRespTime   int64 `json:"net_resp_time_ms"`
	Data          any   `json:"data"`
}
