package room

import (
	"sync"
	"time"

	"elemental-duel/internal/game"

	"go.uber.org/zap"
)

type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
)

const (
	MaxPlayers = 2

	textWaiting    = "Waiting for opponent..."
	textFirstRound = "First round... Fight!"
	textGambitKO   = "Knocked out by a gambit!"
	textTurnError  = "Turn error."
)

// Room is one duel. Every exported method takes the room lock, so each room
// is an independent unit of mutable state.
type Room struct {
	mu sync.Mutex

	ID                string
	Players           []*game.PlayerState
	Status            Status
	Triangle          game.Triangle
	ClashMultiplier   int
	RoundResultText   string
	SpecialResultText string
	WinnerID          *game.PlayerID
	CreatedAt         time.Time

	// closed is set once the room has been removed from the registry.
	closed bool

	rng *game.Randomizer
	out Broadcaster
	log *zap.Logger
}

func newRoom(id string, creator *game.PlayerState, rng *game.Randomizer, out Broadcaster, log *zap.Logger) *Room {
	r := &Room{
		ID:              id,
		Status:          StatusWaiting,
		ClashMultiplier: 1,
		RoundResultText: textWaiting,
		CreatedAt:       time.Now(),
		rng:             rng,
		out:             out,
		log:             log.With(zap.String("room_id", id)),
	}
	r.Triangle = rng.Triangle()
	creator.Gambits = rng.Gambits()
	r.Players = append(r.Players, creator)
	return r
}

func (r *Room) indexOf(id game.PlayerID) int {
	for i, p := range r.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Has reports whether the player sits in this room.
func (r *Room) Has(id game.PlayerID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.indexOf(id) >= 0
}

func (r *Room) CurrentStatus() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Status
}

func (r *Room) broadcast(action string, data interface{}) {
	for _, p := range r.Players {
		r.out.Send(p.ID, action, data)
	}
}

func (r *Room) join(id game.PlayerID, element string) (Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case r.closed:
		return Snapshot{}, game.ErrRoomNotFound
	case r.indexOf(id) >= 0:
		return Snapshot{}, game.ErrAlreadyInRoom
	case len(r.Players) >= MaxPlayers:
		return Snapshot{}, game.ErrRoomFull
	case r.Status != StatusWaiting:
		return Snapshot{}, game.ErrGameAlreadyStarted
	}
	el, err := game.ParseElement(element)
	if err != nil {
		return Snapshot{}, err
	}

	p := game.NewPlayerState(id, el)
	p.Gambits = r.rng.Gambits()
	r.Players = append(r.Players, p)
	r.Status = StatusPlaying
	r.RoundResultText = textFirstRound

	snap := r.snapshot(nil)
	r.broadcast(ActionStartGame, snap)
	r.log.Info("game started",
		zap.String("player_id", string(id)),
		zap.String("element", string(el)),
	)
	return snap, nil
}

// leave removes a player and reports whether the room should be destroyed.
func (r *Room) leave(id game.PlayerID) (removed, destroy bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return false, false
	}
	wasPlaying := len(r.Players) == MaxPlayers && r.Status == StatusPlaying
	r.Players = append(r.Players[:idx], r.Players[idx+1:]...)
	r.log.Info("player left", zap.String("player_id", string(id)), zap.String("status", string(r.Status)))

	if wasPlaying && len(r.Players) == 1 {
		r.out.Send(r.Players[0].ID, ActionOpponentDisconnected, struct{}{})
		r.finish(nil)
	}
	if len(r.Players) == 0 || r.Status == StatusWaiting {
		r.closed = true
		return true, true
	}
	return true, false
}

// finish ends the match once. Later calls are no-ops.
func (r *Room) finish(turn *TurnResult) {
	if r.Status == StatusFinished {
		return
	}
	r.Status = StatusFinished
	for _, p := range r.Players {
		p.Pending = nil
	}
	r.WinnerID = r.winner()

	r.broadcast(ActionGameStateUpdate, r.snapshot(turn))

	winner := "draw"
	if r.WinnerID != nil {
		winner = string(*r.WinnerID)
	} else if len(r.Players) < MaxPlayers {
		winner = "inconclusive"
	}
	r.log.Info("game over", zap.String("winner", winner))
}

func (r *Room) winner() *game.PlayerID {
	switch len(r.Players) {
	case MaxPlayers:
		p1, p2 := r.Players[0], r.Players[1]
		switch {
		case p1.KnockedOut() && p2.KnockedOut():
			return nil
		case p2.KnockedOut():
			return &p1.ID
		case p1.KnockedOut():
			return &p2.ID
		}
	case 1:
		if p := r.Players[0]; !p.KnockedOut() {
			return &p.ID
		}
	}
	return nil
}
