package room

import "elemental-duel/internal/game"

// Outbound actions delivered to players.
const (
	ActionRoomCreated          = "room_created"
	ActionStartGame            = "start_game"
	ActionOpponentMoved        = "opponent_moved"
	ActionGameStateUpdate      = "game_state_update"
	ActionOpponentDisconnected = "opponent_disconnected"
	ActionError                = "error_msg"
)

// Broadcaster delivers an action to one connected player. Implementations
// must not block and must not call back into the room.
type Broadcaster interface {
	Send(playerID game.PlayerID, action string, data interface{})
}

// ErrorMessage is the payload of ActionError.
type ErrorMessage struct {
	Message string `json:"message"`
}
