package protocol

import "github.com/doodleduel/doodleduel-backend/internal"

// DecodeClientEvent parses one inbound frame from a client.
func DecodeClientEvent(data []byte) (ClientEvent, error) {
	tag, err := checkHeader(data)
	if err != nil {
		return nil, err
	}
	r := newFrameReader(data)

	switch tag {
	case TagClientStartGame:
		return ClientStartGame{}, nil
	case TagClientPickAWord:
		word, err := r.str()
		if err != nil {
			return nil, err
		}
		return ClientPickAWord{Word: word}, nil
	case TagClientPointerDown:
		return ClientPointerDown{}, nil
	case TagClientPointerMove:
		x, err := r.f64()
		if err != nil {
			return nil, err
		}
		y, err := r.f64()
		if err != nil {
			return nil, err
		}
		return ClientPointerMove{X: x, Y: y}, nil
	case TagClientPointerUp:
		return ClientPointerUp{}, nil
	case TagClientPointerLeave:
		return ClientPointerLeave{}, nil
	case TagClientChangeColor:
		color, err := r.str()
		if err != nil {
			return nil, err
		}
		return ClientChangeColor{Color: color}, nil
	case TagClientMessage:
		message, err := r.str()
		if err != nil {
			return nil, err
		}
		return ClientChatMessage{Message: message}, nil
	}
	return nil, ErrUnknownEvent
}

// DecodeServerEvent parses one server frame. The server never consumes
// these in production; test clients do.
func DecodeServerEvent(data []byte) (ServerEvent, error) {
	tag, err := checkHeader(data)
	if err != nil {
		return nil, err
	}
	r := newFrameReader(data)

	switch tag {
	case TagError:
		message, err := r.str()
		if err != nil {
			return nil, err
		}
		return Error{Message: message}, nil
	case TagConnectError:
		message, err := r.str()
		if err != nil {
			return nil, err
		}
		return ConnectError{Message: message}, nil
	case TagUserJoined:
		var user internal.User
		if err := r.jsonInto(&user); err != nil {
			return nil, err
		}
		return UserJoined{User: user}, nil
	case TagUserLeft:
		userID, err := r.str()
		if err != nil {
			return nil, err
		}
		return UserLeft{UserID: userID}, nil
	case TagStartGame:
		return StartGame{}, nil
	case TagPickAWord:
		var words [3]string
		if err := r.jsonInto(&words); err != nil {
			return nil, err
		}
		return PickAWord{WordsToPick: words}, nil
	case TagEndGame:
		return EndGame{}, nil
	case TagResetRoom:
		return ResetRoom{}, nil
	case TagNewTurn:
		userID, err := r.str()
		if err != nil {
			return nil, err
		}
		return NewTurn{UserIDToDraw: userID}, nil
	case TagNewWord:
		word, err := r.str()
		if err != nil {
			return nil, err
		}
		return NewWord{Word: word}, nil
	case TagNewRound:
		round, err := r.u8()
		if err != nil {
			return nil, err
		}
		return NewRound{Round: round}, nil
	case TagNewHost:
		userID, err := r.str()
		if err != nil {
			return nil, err
		}
		return NewHost{UserID: userID}, nil
	case TagPointerDown:
		return PointerDown{}, nil
	case TagPointerMove:
		x, err := r.f64()
		if err != nil {
			return nil, err
		}
		y, err := r.f64()
		if err != nil {
			return nil, err
		}
		return PointerMove{X: x, Y: y}, nil
	case TagPointerUp:
		return PointerUp{}, nil
	case TagPointerLeave:
		return PointerLeave{}, nil
	case TagChangeColor:
		color, err := r.str()
		if err != nil {
			return nil, err
		}
		return ChangeColor{Color: color}, nil
	case TagSendGameState:
		var event SendGameState
		if err := r.jsonInto(&event.Room); err != nil {
			return nil, err
		}
		if err := r.jsonInto(&event.User); err != nil {
			return nil, err
		}
		if err := r.jsonInto(&event.UsersInRoom); err != nil {
			return nil, err
		}
		return event, nil
	case TagMessage:
		userID, err := r.str()
		if err != nil {
			return nil, err
		}
		message, err := r.str()
		if err != nil {
			return nil, err
		}
		return Message{UserID: userID, Message: message}, nil
	case TagAddScore:
		userID, err := r.str()
		if err != nil {
			return nil, err
		}
		score, err := r.u16()
		if err != nil {
			return nil, err
		}
		return AddScore{UserID: userID, Score: score}, nil
	case TagTick:
		timeLeft, err := r.u8()
		if err != nil {
			return nil, err
		}
		return Tick{TimeLeft: timeLeft}, nil
	case TagUserGuessed:
		userID, err := r.str()
		if err != nil {
			return nil, err
		}
		return UserGuessed{UserID: userID}, nil
	case TagSystemMessage:
		message, err := r.str()
		if err != nil {
			return nil, err
		}
		return SystemMessage{Message: message}, nil
	}
	return nil, ErrUnknownEvent
}
