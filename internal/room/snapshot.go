package room

import "elemental-duel/internal/game"

type PlayerView struct {
	ID      game.PlayerID `json:"id"`
	Element game.Element  `json:"element"`
	HP      int           `json:"hp"`
	Special int           `json:"special"`
	MaxHP   int           `json:"maxHp"`
}

type GameStateView struct {
	Status            Status `json:"status"`
	ClashMultiplier   int    `json:"clashMultiplier"`
	RoundResultText   string `json:"roundResultText"`
	SpecialResultText string `json:"specialResultText"`
}

type GambitEffects struct {
	P1 *game.GambitEffect `json:"p1"`
	P2 *game.GambitEffect `json:"p2"`
}

// TurnResult describes one resolved exchange.
type TurnResult struct {
	P1ID              game.PlayerID `json:"p1Id"`
	P2ID              game.PlayerID `json:"p2Id"`
	P1Move            game.Choice   `json:"p1Move"`
	P2Move            game.Choice   `json:"p2Move"`
	GambitEffects     GambitEffects `json:"gambitEffects"`
	CombatResultText  string        `json:"combatResultText"`
	SpecialChangeText string        `json:"specialChangeText"`
	IsClash           bool          `json:"isClash"`
}

// Snapshot is the public view of a room. It never carries pending moves or
// gambit bindings.
type Snapshot struct {
	RoomID     string         `json:"roomId"`
	Players    []PlayerView   `json:"players"`
	GameState  GameStateView  `json:"gameState"`
	TurnResult *TurnResult    `json:"turnResult"`
	GameOver   bool           `json:"gameOver"`
	WinnerID   *game.PlayerID `json:"winnerId"`
}

func (r *Room) snapshot(turn *TurnResult) Snapshot {
	s := Snapshot{
		RoomID:  r.ID,
		Players: make([]PlayerView, 0, len(r.Players)),
		GameState: GameStateView{
			Status:            r.Status,
			ClashMultiplier:   r.ClashMultiplier,
			RoundResultText:   r.RoundResultText,
			SpecialResultText: r.SpecialResultText,
		},
		TurnResult: turn,
		GameOver:   r.Status == StatusFinished,
		WinnerID:   r.WinnerID,
	}
	for _, p := range r.Players {
		s.Players = append(s.Players, PlayerView{
			ID:      p.ID,
			Element: p.Element,
			HP:      p.HP,
			Special: p.Special,
			MaxHP:   p.MaxHP,
		})
	}
	return s
}

// Snapshot returns the current public view of the room.
func (r *Room) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(nil)
}
