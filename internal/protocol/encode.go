package protocol

// Server event encoders. Header-only events carry no payload beyond
// the two header bytes.

func (e Error) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).appendString(e.Message).build()
}

func (e ConnectError) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).appendString(e.Message).build()
}

func (e UserJoined) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).appendJSON(e.User).build()
}

func (e UserLeft) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).appendString(e.UserID).build()
}

func (e StartGame) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).build()
}

func (e PickAWord) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).appendJSON(e.WordsToPick).build()
}

func (e EndGame) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).build()
}

func (e ResetRoom) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).build()
}

func (e NewTurn) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).appendString(e.UserIDToDraw).build()
}

func (e NewWord) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).appendString(e.Word).build()
}

func (e NewRound) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).appendU8(e.Round).build()
}

func (e NewHost) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).appendString(e.UserID).build()
}

func (e PointerDown) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).build()
}

func (e PointerMove) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).appendF64(e.X).appendF64(e.Y).build()
}

func (e PointerUp) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).build()
}

func (e PointerLeave) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).build()
}

func (e ChangeColor) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).appendString(e.Color).build()
}

func (e SendGameState) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).
		appendJSON(e.Room).
		appendJSON(e.User).
		appendJSON(e.UsersInRoom).
		build()
}

func (e Message) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).
		appendString(e.UserID).
		appendString(e.Message).
		build()
}

func (e AddScore) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).
		appendString(e.UserID).
		appendU16(e.Score).
		build()
}

func (e Tick) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).appendU8(e.TimeLeft).build()
}

func (e UserGuessed) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).appendString(e.UserID).build()
}

func (e SystemMessage) Encode() ([]byte, error) {
	return newFrame(e.serverTag()).appendString(e.Message).build()
}

// Client event encoders, used by test clients and kept symmetric with
// the server side.

func (e ClientStartGame) Encode() ([]byte, error) {
	return newFrame(e.clientTag()).build()
}

func (e ClientPickAWord) Encode() ([]byte, error) {
	return newFrame(e.clientTag()).appendString(e.Word).build()
}

func (e ClientPointerDown) Encode() ([]byte, error) {
	return newFrame(e.clientTag()).build()
}

func (e ClientPointerMove) Encode() ([]byte, error) {
	return newFrame(e.clientTag()).appendF64(e.X).appendF64(e.Y).build()
}

func (e ClientPointerUp) Encode() ([]byte, error) {
	return newFrame(e.clientTag()).build()
}

func (e ClientPointerLeave) Encode() ([]byte, error) {
	return newFrame(e.clientTag()).build()
}

func (e ClientChangeColor) Encode() ([]byte, error) {
	return newFrame(e.clientTag()).appendString(e.Color).build()
}

func (e ClientChatMessage) Encode() ([]byte, error) {
	return newFrame(e.clientTag()).appendString(e.Message).build()
}
