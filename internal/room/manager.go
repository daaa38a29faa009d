package room

import (
	"fmt"
	"strings"
	"sync"

	"elemental-duel/internal/game"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store holds live rooms by id. Implementations must be safe for
// concurrent use.
type Store interface {
	GetRoom(id string) (*Room, bool)
	// AddRoom saves r unless its id is taken and reports whether it did.
	AddRoom(r *Room) bool
	DeleteRoom(id string)
	ListRooms() []*Room
}

const roomIDLength = 12

// Manager is the only place rooms are created and destroyed.
type Manager struct {
	store Store
	rng   *game.Randomizer
	out   Broadcaster
	log   *zap.Logger
	newID func() string

	mu    sync.Mutex
	seats map[game.PlayerID]map[string]struct{}
}

func NewManager(s Store, rng *game.Randomizer, log *zap.Logger) *Manager {
	return &Manager{
		store: s,
		rng:   rng,
		out:   nopBroadcaster{},
		log:   log,
		newID: newRoomID,
		seats: make(map[game.PlayerID]map[string]struct{}),
	}
}

// SetBroadcaster wires the transport. Call it before the first room is
// created; existing rooms keep the broadcaster they were built with.
func (m *Manager) SetBroadcaster(b Broadcaster) {
	m.out = b
}

func newRoomID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:roomIDLength]
}

func (m *Manager) CreateRoom(playerID game.PlayerID, element string) (*Room, error) {
	el, err := game.ParseElement(element)
	if err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}
	for {
		r := newRoom(m.newID(), game.NewPlayerState(playerID, el), m.rng, m.out, m.log)
		if !m.store.AddRoom(r) {
			continue
		}
		m.seat(playerID, r.ID)
		m.log.Info("room created",
			zap.String("room_id", r.ID),
			zap.String("player_id", string(playerID)),
			zap.String("element", string(el)),
		)
		return r, nil
	}
}

// JoinRoom seats a second player and starts the match. The start snapshot
// has already been sent to both players when it returns.
func (m *Manager) JoinRoom(roomID string, playerID game.PlayerID, element string) (Snapshot, error) {
	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return Snapshot{}, fmt.Errorf("join room %s: %w", roomID, game.ErrRoomNotFound)
	}
	snap, err := r.join(playerID, element)
	if err != nil {
		return Snapshot{}, fmt.Errorf("join room %s: %w", roomID, err)
	}
	m.seat(playerID, roomID)
	return snap, nil
}

func (m *Manager) SubmitMove(roomID string, playerID game.PlayerID, choice string, isSpecial bool) error {
	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return fmt.Errorf("submit move in %s: %w", roomID, game.ErrRoomNotFound)
	}
	if err := r.SubmitMove(playerID, choice, isSpecial); err != nil {
		return fmt.Errorf("submit move in %s: %w", roomID, err)
	}
	return nil
}

// RemovePlayer takes a player out of one room, finishing or destroying it as
// needed.
func (m *Manager) RemovePlayer(roomID string, playerID game.PlayerID) {
	defer m.unseat(playerID, roomID)

	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return
	}
	removed, destroy := r.leave(playerID)
	if !removed || !destroy {
		return
	}
	m.store.DeleteRoom(roomID)
	m.log.Info("room deleted", zap.String("room_id", roomID))
}

// Disconnect removes the player from every room they sit in.
func (m *Manager) Disconnect(playerID game.PlayerID) {
	m.mu.Lock()
	rooms := make([]string, 0, len(m.seats[playerID]))
	for id := range m.seats[playerID] {
		rooms = append(rooms, id)
	}
	m.mu.Unlock()

	for _, id := range rooms {
		m.RemovePlayer(id, playerID)
	}
}

func (m *Manager) Get(roomID string) (*Room, bool) {
	return m.store.GetRoom(roomID)
}

// Stats counts live rooms by status.
type Stats struct {
	Total    int `json:"total"`
	Waiting  int `json:"waiting"`
	Playing  int `json:"playing"`
	Finished int `json:"finished"`
}

func (m *Manager) Stats() Stats {
	var s Stats
	for _, r := range m.store.ListRooms() {
		s.Total++
		switch r.CurrentStatus() {
		case StatusWaiting:
			s.Waiting++
		case StatusPlaying:
			s.Playing++
		case StatusFinished:
			s.Finished++
		}
	}
	return s
}

func (m *Manager) seat(playerID game.PlayerID, roomID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.seats[playerID] == nil {
		m.seats[playerID] = make(map[string]struct{})
	}
	m.seats[playerID][roomID] = struct{}{}
}

func (m *Manager) unseat(playerID game.PlayerID, roomID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.seats[playerID], roomID)
	if len(m.seats[playerID]) == 0 {
		delete(m.seats, playerID)
	}
}

type nopBroadcaster struct{}

func (nopBroadcaster) Send(game.PlayerID, string, interface{}) {}
