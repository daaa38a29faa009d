package ws

import "encoding/json"

// Inbound actions.
const (
	ActionCreateRoom = "create_room"
	ActionJoinRoom   = "join_room"
	ActionPlayerMove = "player_move"
)

type envelope struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type outbound struct {
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

type createRoomRequest struct {
	Element string `json:"element"`
}

type joinRoomRequest struct {
	RoomID  string `json:"roomId"`
	Element string `json:"element"`
}

type playerMoveRequest struct {
	RoomID    string `json:"roomId"`
	Choice    string `json:"choice"`
	IsSpecial bool   `json:"isSpecial"`
}

type roomCreated struct {
	RoomID string `json:"roomId"`
}
