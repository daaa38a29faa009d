package http

import "elemental-duel/internal/room"

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status      string `json:"status"`
	Connections int    `json:"connections"`
}

// RoomResponse wraps a room's public snapshot.
type RoomResponse struct {
	Room room.Snapshot `json:"room"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
