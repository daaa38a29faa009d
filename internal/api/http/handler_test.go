package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"elemental-duel/internal/api/ws"
	"elemental-duel/internal/game"
	"elemental-duel/internal/room"
	"elemental-duel/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, opts RouterOptions) (*gin.Engine, *room.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rm := room.NewManager(store.NewMemoryStore(), game.NewSeededRandomizer(1), zap.NewNop())
	hub := ws.NewHub(rm, ws.Options{}, zap.NewNop())
	rm.SetBroadcaster(hub)
	return NewRouter(rm, hub, opts, zap.NewNop()), rm
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t, RouterOptions{})
	w := get(r, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Status != "ok" {
		t.Fatalf("body = %s (%v)", w.Body.String(), err)
	}
}

func TestRoomEndpoints(t *testing.T) {
	r, rm := newTestRouter(t, RouterOptions{})
	rx, err := rm.CreateRoom("p1", "fire")
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	if _, err := rm.JoinRoom(rx.ID, "p2", "grass"); err != nil {
		t.Fatalf("join room: %v", err)
	}
	if err := rm.SubmitMove(rx.ID, "p1", "rock", true); err != nil {
		t.Fatalf("submit: %v", err)
	}

	w := get(r, "/api/rooms/"+rx.ID)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Room map[string]json.RawMessage `json:"room"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var players []map[string]interface{}
	if err := json.Unmarshal(body.Room["players"], &players); err != nil || len(players) != 2 {
		t.Fatalf("players = %s (%v)", body.Room["players"], err)
	}
	for _, p := range players {
		for _, hidden := range []string{"Pending", "Gambits", "pendingMove", "gambitAssignments"} {
			if _, ok := p[hidden]; ok {
				t.Fatalf("snapshot leaks %s: %v", hidden, p)
			}
		}
	}

	if w := get(r, "/api/rooms/unknown"); w.Code != http.StatusNotFound {
		t.Fatalf("unknown room status = %d", w.Code)
	}

	var stats room.Stats
	if err := json.Unmarshal(get(r, "/api/rooms").Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.Total != 1 || stats.Playing != 1 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestStaticClient(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>duel</html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	r, _ := newTestRouter(t, RouterOptions{StaticDir: dir})
	w := get(r, "/")
	if w.Code != http.StatusOK || w.Body.String() != "<html>duel</html>" {
		t.Fatalf("GET / = %d %q", w.Code, w.Body.String())
	}
}
