package ws

import (
	"elemental-duel/internal/game"
	"elemental-duel/internal/room"
)

type RoomManager interface {
	CreateRoom(playerID game.PlayerID, element string) (*room.Room, error)
	JoinRoom(roomID string, playerID game.PlayerID, element string) (room.Snapshot, error)
	SubmitMove(roomID string, playerID game.PlayerID, choice string, isSpecial bool) error
	Disconnect(playerID game.PlayerID)
}
