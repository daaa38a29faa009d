package ws

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"elemental-duel/internal/game"
	"elemental-duel/internal/room"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Options struct {
	AllowedOrigins []string
	PingInterval   time.Duration
	PongTimeout    time.Duration
	WriteTimeout   time.Duration
	SendBuffer     int
}

// Hub owns every websocket connection. Each connection is one player; the
// player id is minted on upgrade and never leaves the server except as the
// id shown in snapshots.
type Hub struct {
	mu          sync.RWMutex
	clients     map[game.PlayerID]*client
	roomManager RoomManager
	upgrader    websocket.Upgrader
	opts        Options
	log         *zap.Logger
}

type client struct {
	id   game.PlayerID
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() { close(c.done) })
}

func NewHub(roomManager RoomManager, opts Options, log *zap.Logger) *Hub {
	if opts.SendBuffer <= 0 {
		opts.SendBuffer = 32
	}
	if opts.PongTimeout <= 0 {
		opts.PongTimeout = 60 * time.Second
	}
	if opts.PingInterval <= 0 || opts.PingInterval >= opts.PongTimeout {
		opts.PingInterval = opts.PongTimeout * 9 / 10
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 10 * time.Second
	}
	h := &Hub{
		clients:     make(map[game.PlayerID]*client),
		roomManager: roomManager,
		opts:        opts,
		log:         log,
	}
	h.upgrader = websocket.Upgrader{CheckOrigin: h.checkOrigin}
	return h
}

func (h *Hub) checkOrigin(r *http.Request) bool {
	if len(h.opts.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	for _, o := range h.opts.AllowedOrigins {
		if strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	cl := &client{
		id:   game.PlayerID(uuid.NewString()),
		conn: conn,
		send: make(chan []byte, h.opts.SendBuffer),
		done: make(chan struct{}),
	}
	h.mu.Lock()
	h.clients[cl.id] = cl
	h.mu.Unlock()
	h.log.Info("player connected", zap.String("player_id", string(cl.id)), zap.String("remote", c.ClientIP()))

	go h.writePump(cl)
	h.readPump(cl)
}

// readPump handles one player's commands in order. Disconnect runs on the
// same goroutine, after the last command has been applied.
func (h *Hub) readPump(cl *client) {
	defer func() {
		h.mu.Lock()
		delete(h.clients, cl.id)
		h.mu.Unlock()
		cl.close()
		h.roomManager.Disconnect(cl.id)
		h.log.Info("player disconnected", zap.String("player_id", string(cl.id)))
	}()

	_ = cl.conn.SetReadDeadline(time.Now().Add(h.opts.PongTimeout))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(h.opts.PongTimeout))
	})

	for {
		var msg envelope
		if err := cl.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("websocket read failed", zap.String("player_id", string(cl.id)), zap.Error(err))
			}
			return
		}
		h.dispatch(cl.id, msg)
	}
}

func (h *Hub) writePump(cl *client) {
	ticker := time.NewTicker(h.opts.PingInterval)
	defer func() {
		ticker.Stop()
		_ = cl.conn.Close()
	}()

	for {
		select {
		case <-cl.done:
			_ = cl.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(h.opts.WriteTimeout))
			return
		case b := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(h.opts.WriteTimeout))
			if err := cl.conn.WriteMessage(websocket.TextMessage, b); err != nil {
				h.log.Warn("websocket write failed", zap.String("player_id", string(cl.id)), zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(h.opts.WriteTimeout))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) dispatch(id game.PlayerID, msg envelope) {
	switch msg.Action {
	case ActionCreateRoom:
		var req createRoomRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			h.reject(id, msg.Action, err)
			return
		}
		r, err := h.roomManager.CreateRoom(id, req.Element)
		if err != nil {
			h.reject(id, msg.Action, err)
			return
		}
		h.Send(id, room.ActionRoomCreated, roomCreated{RoomID: r.ID})

	case ActionJoinRoom:
		var req joinRoomRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			h.reject(id, msg.Action, err)
			return
		}
		if _, err := h.roomManager.JoinRoom(req.RoomID, id, req.Element); err != nil {
			h.reject(id, msg.Action, err)
		}

	case ActionPlayerMove:
		var req playerMoveRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			h.reject(id, msg.Action, err)
			return
		}
		err := h.roomManager.SubmitMove(req.RoomID, id, req.Choice, req.IsSpecial)
		// A corrupted turn has already been reported to the whole room.
		if err != nil && !errors.Is(err, game.ErrSessionCorrupted) {
			h.reject(id, msg.Action, err)
		}

	default:
		h.log.Warn("unknown action", zap.String("player_id", string(id)), zap.String("action", msg.Action))
		h.Send(id, room.ActionError, room.ErrorMessage{Message: "Unknown action: " + msg.Action})
	}
}

func (h *Hub) reject(id game.PlayerID, action string, err error) {
	h.log.Warn("command rejected",
		zap.String("player_id", string(id)),
		zap.String("action", action),
		zap.Error(err),
	)
	h.Send(id, room.ActionError, room.ErrorMessage{Message: errorText(err)})
}

// errorText maps engine errors to the text shown to players.
func errorText(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidElement):
		return "Invalid element selected."
	case errors.Is(err, game.ErrInvalidChoice):
		return "Invalid move."
	case errors.Is(err, game.ErrRoomNotFound):
		return "Room not found."
	case errors.Is(err, game.ErrRoomFull):
		return "Room is full."
	case errors.Is(err, game.ErrGameAlreadyStarted):
		return "Game already started."
	case errors.Is(err, game.ErrAlreadyInRoom):
		return "You are already in this room."
	case errors.Is(err, game.ErrGameNotPlaying):
		return "Game is not in progress."
	case errors.Is(err, game.ErrPlayerNotInRoom):
		return "You are not in this room."
	case errors.Is(err, game.ErrDuplicateMove):
		return "Move already submitted."
	}
	return "Malformed request."
}

// Send queues an action for one player. It never blocks: a player whose
// queue is full is disconnected.
func (h *Hub) Send(playerID game.PlayerID, action string, data interface{}) {
	if h == nil {
		return
	}
	b, err := json.Marshal(outbound{Action: action, Data: data})
	if err != nil {
		h.log.Error("encode message", zap.String("action", action), zap.Error(err))
		return
	}

	h.mu.RLock()
	cl, ok := h.clients[playerID]
	h.mu.RUnlock()
	if !ok {
		h.log.Debug("drop message for unknown player", zap.String("player_id", string(playerID)), zap.String("action", action))
		return
	}
	select {
	case cl.send <- b:
	case <-cl.done:
	default:
		h.log.Warn("send queue full, closing", zap.String("player_id", string(playerID)))
		cl.close()
	}
}

// Close disconnects every player.
func (h *Hub) Close() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, cl := range h.clients {
		cl.close()
	}
}

// Connections returns the number of connected players.
func (h *Hub) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
