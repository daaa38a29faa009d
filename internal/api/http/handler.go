package http

import (
	"net/http"

	"elemental-duel/internal/api/ws"
	"elemental-duel/internal/room"

	"github.com/gin-gonic/gin"
)

// @Summary Liveness probe
// @Tags Ops
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HealthHandler(hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{Status: "ok", Connections: hub.Connections()})
	}
}

// @Summary Count live rooms
// @Description Number of rooms by status
// @Tags Room
// @Produce json
// @Success 200 {object} room.Stats
// @Router /api/rooms [get]
func RoomStatsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, rm.Stats())
	}
}

// @Summary Get room state
// @Description Public snapshot of a room: hp, special meters and last round text
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} RoomResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/rooms/{id} [get]
func RoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "room not found"})
			return
		}
		c.JSON(http.StatusOK, RoomResponse{Room: rx.Snapshot()})
	}
}
