package room

import (
	"elemental-duel/internal/game"

	"go.uber.org/zap"
)

// SubmitMove records a player's hand for the current turn. The second
// submission resolves the turn before the lock is released, so a third move
// can never land on a pair that is still being resolved.
func (r *Room) SubmitMove(id game.PlayerID, choice string, isSpecial bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return game.ErrRoomNotFound
	}
	if r.Status != StatusPlaying || len(r.Players) != MaxPlayers {
		return game.ErrGameNotPlaying
	}
	idx := r.indexOf(id)
	if idx < 0 {
		return game.ErrPlayerNotInRoom
	}
	p := r.Players[idx]
	if p.Pending != nil {
		return game.ErrDuplicateMove
	}
	c, err := game.ParseChoice(choice)
	if err != nil {
		return err
	}

	p.Pending = &game.Move{Choice: c, IsSpecial: isSpecial}
	r.log.Debug("move received",
		zap.String("player_id", string(id)),
		zap.Int("seat", idx+1),
		zap.Bool("special", isSpecial),
	)

	opp := r.Players[1-idx]
	if opp.Pending == nil {
		r.out.Send(opp.ID, ActionOpponentMoved, struct{}{})
		return nil
	}
	return r.resolveTurn()
}

// resolveTurn consumes both pending moves: gambits first, then combat.
func (r *Room) resolveTurn() error {
	if len(r.Players) != MaxPlayers || r.Players[0].Pending == nil || r.Players[1].Pending == nil {
		for _, p := range r.Players {
			p.Pending = nil
		}
		r.broadcast(ActionError, ErrorMessage{Message: textTurnError})
		r.log.Error("resolve invoked without two pending moves", zap.Int("players", len(r.Players)))
		return game.ErrSessionCorrupted
	}

	p1, p2 := r.Players[0], r.Players[1]
	m1, m2 := *p1.Pending, *p2.Pending
	p1.Pending, p2.Pending = nil, nil

	turn := &TurnResult{
		P1ID:   p1.ID,
		P2ID:   p2.ID,
		P1Move: m1.Choice,
		P2Move: m2.Choice,
	}
	if m1.IsSpecial {
		turn.GambitEffects.P1 = game.ApplyGambit(p1, p2, m1.Choice, r.rng)
	}
	if m2.IsSpecial {
		turn.GambitEffects.P2 = game.ApplyGambit(p2, p1, m2.Choice, r.rng)
	}
	if p1.KnockedOut() || p2.KnockedOut() {
		r.RoundResultText = textGambitKO
		r.SpecialResultText = ""
		turn.CombatResultText = textGambitKO
		r.finish(turn)
		return nil
	}

	res := game.ResolveCombat([2]*game.PlayerState{p1, p2}, r.Triangle, r.ClashMultiplier, m1.Choice, m2.Choice)
	r.ClashMultiplier = res.NextMultiplier
	r.RoundResultText, r.SpecialResultText = res.Text()
	turn.CombatResultText = r.RoundResultText
	turn.SpecialChangeText = r.SpecialResultText
	turn.IsClash = res.Clash

	r.log.Info("turn resolved",
		zap.Bool("clash", res.Clash),
		zap.String("impact", string(res.Impact)),
		zap.Int("multiplier", r.ClashMultiplier),
		zap.Int("p1_hp", p1.HP), zap.Int("p1_special", p1.Special),
		zap.Int("p2_hp", p2.HP), zap.Int("p2_special", p2.Special),
	)

	if p1.KnockedOut() || p2.KnockedOut() {
		r.finish(turn)
		return nil
	}
	r.broadcast(ActionGameStateUpdate, r.snapshot(turn))
	return nil
}
