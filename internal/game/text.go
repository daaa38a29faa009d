package game

import (
	"fmt"
	"strings"
)

// Text renders the round and special-meter lines shown to both players.
// Players are numbered from 1 in join order.
func (r CombatResult) Text() (round, special string) {
	if r.Clash {
		round = fmt.Sprintf("CLASH! Next round is worth %dx!", r.NextMultiplier)
		if r.StreakBroken {
			special = "Streak broken!"
		}
		return round, special
	}

	n := r.Winner + 1
	switch r.Impact {
	case ImpactCritical:
		round = fmt.Sprintf("Player %d CRITICAL HIT!", n)
	case ImpactDampened:
		round = fmt.Sprintf("Player %d's hit was DAMPENED!", n)
	default:
		round = fmt.Sprintf("Player %d wins!", n)
	}
	round += fmt.Sprintf(" (±%d HP)", r.HPSwing)

	var b strings.Builder
	if r.Winner == 0 {
		fmt.Fprintf(&b, "P1 +%d Sp! (P2 -%d Sp)", r.Charge, r.Penalty)
	} else {
		fmt.Fprintf(&b, "P1 -%d Sp! (P2 +%d Sp)", r.Penalty, r.Charge)
	}
	if r.WinnerStreak > 1 {
		fmt.Fprintf(&b, " (%dx win!)", r.WinnerStreak)
	}
	return round, b.String()
}
