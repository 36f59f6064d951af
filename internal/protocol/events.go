package protocol

import "github.com/doodleduel/doodleduel-backend/internal"

// Client to server event type tags.
const (
	TagClientStartGame byte = iota
	TagClientPickAWord
	TagClientPointerDown
	TagClientPointerMove
	TagClientPointerUp
	TagClientPointerLeave
	TagClientChangeColor
	TagClientMessage
)

// Server to client event type tags.
const (
	TagError byte = iota
	TagConnectError
	TagUserJoined
	TagUserLeft
	TagStartGame
	TagPickAWord
	TagEndGame
	TagResetRoom
	TagNewTurn
	TagNewWord
	TagNewRound
	TagNewHost
	TagPointerDown
	TagPointerMove
	TagPointerUp
	TagPointerLeave
	TagChangeColor
	TagSendGameState
	TagMessage
	TagAddScore
	TagTick
	TagUserGuessed
	TagSystemMessage
)

// ClientEvent is an inbound event decoded from a client frame.
type ClientEvent interface {
	Encode() ([]byte, error)
	clientTag() byte
}

type ClientStartGame struct{}

type ClientPickAWord struct {
	Word string
}

type ClientPointerDown struct{}

type ClientPointerMove struct {
	X float64
	Y float64
}

type ClientPointerUp struct{}

type ClientPointerLeave struct{}

type ClientChangeColor struct {
	Color string
}

type ClientChatMessage struct {
	Message string
}

func (ClientStartGame) clientTag() byte    { return TagClientStartGame }
func (ClientPickAWord) clientTag() byte    { return TagClientPickAWord }
func (ClientPointerDown) clientTag() byte  { return TagClientPointerDown }
func (ClientPointerMove) clientTag() byte  { return TagClientPointerMove }
func (ClientPointerUp) clientTag() byte    { return TagClientPointerUp }
func (ClientPointerLeave) clientTag() byte { return TagClientPointerLeave }
func (ClientChangeColor) clientTag() byte  { return TagClientChangeColor }
func (ClientChatMessage) clientTag() byte  { return TagClientMessage }

// ServerEvent is an outbound event that knows how to frame itself.
type ServerEvent interface {
	Encode() ([]byte, error)
	serverTag() byte
}

type Error struct {
	Message string
}

type ConnectError struct {
	Message string
}

type UserJoined struct {
	User internal.User
}

type UserLeft struct {
	UserID string
}

type StartGame struct{}

type PickAWord struct {
	WordsToPick [3]string
}

type EndGame struct{}

type ResetRoom struct{}

type NewTurn struct {
	UserIDToDraw string
}

type NewWord struct {
	Word string
}

type NewRound struct {
	Round uint8
}

type NewHost struct {
	UserID string
}

type PointerDown struct{}

type PointerMove struct {
	X float64
	Y float64
}

type PointerUp struct{}

type PointerLeave struct{}

type ChangeColor struct {
	Color string
}

type SendGameState struct {
	Room        internal.Room
	User        internal.User
	UsersInRoom []internal.User
}

type Message struct {
	UserID  string
	Message string
}

type AddScore struct {
	UserID string
	Score  uint16
}

type Tick struct {
	TimeLeft uint8
}

type UserGuessed struct {
	UserID string
}

type SystemMessage struct {
	Message string
}

func (Error) serverTag() byte         { return TagError }
func (ConnectError) serverTag() byte  { return TagConnectError }
func (UserJoined) serverTag() byte    { return TagUserJoined }
func (UserLeft) serverTag() byte      { return TagUserLeft }
func (StartGame) serverTag() byte     { return TagStartGame }
func (PickAWord) serverTag() byte     { return TagPickAWord }
func (EndGame) serverTag() byte       { return TagEndGame }
func (ResetRoom) serverTag() byte     { return TagResetRoom }
func (NewTurn) serverTag() byte       { return TagNewTurn }
func (NewWord) serverTag() byte       { return TagNewWord }
func (NewRound) serverTag() byte      { return TagNewRound }
func (NewHost) serverTag() byte       { return TagNewHost }
func (PointerDown) serverTag() byte   { return TagPointerDown }
func (PointerMove) serverTag() byte   { return TagPointerMove }
func (PointerUp) serverTag() byte     { return TagPointerUp }
func (PointerLeave) serverTag() byte  { return TagPointerLeave }
func (ChangeColor) serverTag() byte   { return TagChangeColor }
func (SendGameState) serverTag() byte { return TagSendGameState }
func (Message) serverTag() byte       { return TagMessage }
func (AddScore) serverTag() byte      { return TagAddScore }
func (Tick) serverTag() byte          { return TagTick }
func (UserGuessed) serverTag() byte   { return TagUserGuessed }
func (SystemMessage) serverTag() byte { return TagSystemMessage }
