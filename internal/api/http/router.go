package http

import (
	"path/filepath"

	"elemental-duel/internal/api/ws"
	"elemental-duel/internal/logging"
	"elemental-duel/internal/room"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterOptions struct {
	// StaticDir serves the browser client when set.
	StaticDir string
}

func NewRouter(rm *room.Manager, hub *ws.Hub, opts RouterOptions, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(logging.GinLogger(log), gin.Recovery())

	// WebSocket for match traffic
	r.GET("/ws", hub.HandleWS)

	r.GET("/healthz", HealthHandler(hub))

	// --- ROOM ENDPOINTS (read-only) ---
	api := r.Group("/api")
	api.GET("/rooms", RoomStatsHandler(rm))
	api.GET("/rooms/:id", RoomHandler(rm))

	if opts.StaticDir != "" {
		r.StaticFile("/", filepath.Join(opts.StaticDir, "index.html"))
		r.Static("/static", opts.StaticDir)
	}
	return r
}
