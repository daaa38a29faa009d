package game

import "errors"

var (
	ErrInvalidElement     = errors.New("invalid element")
	ErrInvalidChoice      = errors.New("invalid move")
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomFull           = errors.New("room is full")
	ErrGameAlreadyStarted = errors.New("game already started")
	ErrGameNotPlaying     = errors.New("game is not in progress")
	ErrPlayerNotInRoom    = errors.New("player not in room")
	ErrAlreadyInRoom      = errors.New("player already in room")
	ErrDuplicateMove      = errors.New("move already submitted")
	// ErrSessionCorrupted means resolution found the room in a state it can
	// never reach through valid input. The round is discarded.
	ErrSessionCorrupted = errors.New("turn error")
)
