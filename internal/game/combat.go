package game

// Triangle maps each element to the element it beats.
type Triangle map[Element]Element

// Valid reports whether t covers every element once as source and once as
// target with no fixed points. Over three elements that is a 3-cycle.
func (t Triangle) Valid() bool {
	if len(t) != len(Elements) {
		return false
	}
	targets := make(map[Element]bool, len(Elements))
	for _, e := range Elements {
		beats, ok := t[e]
		if !ok || beats == e || targets[beats] {
			return false
		}
		if _, err := ParseElement(string(beats)); err != nil {
			return false
		}
		targets[beats] = true
	}
	return true
}

type Impact string

const (
	ImpactCritical Impact = "critical"
	ImpactNormal   Impact = "normal"
	ImpactDampened Impact = "dampened"
)

// Impact grades a hit landed by attacker on defender.
func (t Triangle) Impact(attacker, defender Element) Impact {
	switch {
	case attacker == defender:
		return ImpactNormal
	case t[attacker] == defender:
		return ImpactCritical
	case t[defender] == attacker:
		return ImpactDampened
	}
	return ImpactNormal
}

// Outcome of a rock-paper-scissors exchange from the first player's side.
type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomeFirstWins
	OutcomeSecondWins
)

var choiceBeats = map[Choice]Choice{
	ChoiceRock:     ChoiceScissors,
	ChoiceScissors: ChoicePaper,
	ChoicePaper:    ChoiceRock,
}

func CompareChoices(first, second Choice) Outcome {
	switch {
	case first == second:
		return OutcomeTie
	case choiceBeats[first] == second:
		return OutcomeFirstWins
	}
	return OutcomeSecondWins
}

const (
	hpCritical = 15
	hpNormal   = 10
	hpDampened = 5
)

// StreakCharge is the special gained by a winner on their n-th straight win.
func StreakCharge(n int) int {
	switch {
	case n <= 0:
		return 0
	case n == 1:
		return 20
	case n == 2:
		return 30
	}
	return 30 + (n-2)*10
}

// StreakPenalty is the special lost by a loser on their n-th straight loss.
func StreakPenalty(n int) int {
	switch {
	case n <= 0:
		return 0
	case n == 1:
		return 10
	case n == 2:
		return 15
	}
	return 15 + (n-2)*5
}

// CombatResult is the numeric outcome of one resolved exchange.
type CombatResult struct {
	Clash bool
	// StreakBroken is set when a clash reset at least one non-zero streak.
	StreakBroken bool
	// Winner is the index of the RPS winner, or -1 on a clash.
	Winner int
	Impact Impact
	// Multiplier is the clash multiplier applied to a decisive round.
	Multiplier     int
	HPSwing        int
	Charge         int
	Penalty        int
	WinnerStreak   int
	NextMultiplier int
}

// ResolveCombat settles one exchange between players[0] and players[1] with
// the given clash multiplier and mutates both players. The multiplier to
// carry into the next round is returned in NextMultiplier.
func ResolveCombat(players [2]*PlayerState, tri Triangle, multiplier int, first, second Choice) CombatResult {
	if multiplier < 1 {
		multiplier = 1
	}

	outcome := CompareChoices(first, second)
	if outcome == OutcomeTie {
		res := CombatResult{Clash: true, Winner: -1, Multiplier: multiplier, NextMultiplier: multiplier + 1}
		for _, p := range players {
			if p.ConsecutiveWins > 0 || p.ConsecutiveLosses > 0 {
				res.StreakBroken = true
			}
			p.ConsecutiveWins = 0
			p.ConsecutiveLosses = 0
		}
		return res
	}

	w := 0
	if outcome == OutcomeSecondWins {
		w = 1
	}
	winner, loser := players[w], players[1-w]

	winner.ConsecutiveWins++
	winner.ConsecutiveLosses = 0
	loser.ConsecutiveLosses++
	loser.ConsecutiveWins = 0

	res := CombatResult{
		Winner:         w,
		Impact:         tri.Impact(winner.Element, loser.Element),
		Multiplier:     multiplier,
		WinnerStreak:   winner.ConsecutiveWins,
		NextMultiplier: 1,
	}
	charge := StreakCharge(winner.ConsecutiveWins)
	penalty := StreakPenalty(loser.ConsecutiveLosses)
	switch res.Impact {
	case ImpactCritical:
		res.HPSwing, res.Charge, res.Penalty = hpCritical, charge*2, penalty*2
	case ImpactDampened:
		res.HPSwing, res.Charge, res.Penalty = hpDampened, charge/2, penalty/2
	default:
		res.HPSwing, res.Charge, res.Penalty = hpNormal, charge, penalty
	}
	res.HPSwing *= multiplier
	res.Charge *= multiplier
	res.Penalty *= multiplier

	winner.AddHP(res.HPSwing)
	loser.AddHP(-res.HPSwing)
	winner.AddSpecial(res.Charge)
	loser.AddSpecial(-res.Penalty)
	return res
}
