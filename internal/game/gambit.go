package game

type GambitID string

const (
	GambitRed    GambitID = "gambit_red"
	GambitGreen  GambitID = "gambit_green"
	GambitPurple GambitID = "gambit_purple"
)

// GambitIDs lists every gambit in canonical order.
var GambitIDs = [3]GambitID{GambitRed, GambitGreen, GambitPurple}

// Delta is a change to one player's hp and special meter.
type Delta struct {
	HP      int
	Special int
}

type Gambit struct {
	ID       GambitID
	User     Delta
	Opponent Delta
	Text     string
}

var gambits = map[GambitID]Gambit{
	GambitRed: {
		ID:       GambitRed,
		User:     Delta{HP: -25, Special: 20},
		Opponent: Delta{HP: -35, Special: 15},
		Text:     "Sacrifice: You -25HP,+20Sp | Opp -35HP,+15Sp",
	},
	GambitGreen: {
		ID:       GambitGreen,
		User:     Delta{HP: 30, Special: 10},
		Opponent: Delta{HP: 10, Special: 5},
		Text:     "Shared Boon: You +30HP,+10Sp | Opp +10HP,+5Sp",
	},
	GambitPurple: {
		ID:       GambitPurple,
		User:     Delta{HP: -15, Special: 40},
		Opponent: Delta{HP: 10, Special: -25},
		Text:     "Meter Burn: You -15HP,+40Sp | Opp +10HP,-25Sp",
	},
}

func LookupGambit(id GambitID) (Gambit, bool) {
	g, ok := gambits[id]
	return g, ok
}

// GambitAssignments binds each hand choice to a gambit.
type GambitAssignments map[Choice]GambitID

// Valid reports whether a is a bijection from the three choices onto the
// three gambits.
func (a GambitAssignments) Valid() bool {
	if len(a) != len(Choices) {
		return false
	}
	seen := make(map[GambitID]bool, len(GambitIDs))
	for _, c := range Choices {
		id, ok := a[c]
		if !ok || seen[id] {
			return false
		}
		if _, known := gambits[id]; !known {
			return false
		}
		seen[id] = true
	}
	return true
}

// GambitEffect records a gambit that fired during a turn.
type GambitEffect struct {
	Key  GambitID `json:"key"`
	Text string   `json:"text"`
}

// ApplyGambit fires the gambit bound to choice for user. Deltas are applied
// to both players, then SpecialCost is taken from the user's meter whether
// or not it was full. The user's bindings are reshuffled afterwards. A nil
// effect means no gambit was bound to that hand.
func ApplyGambit(user, opponent *PlayerState, choice Choice, rng *Randomizer) *GambitEffect {
	defer func() { user.Gambits = rng.Gambits() }()

	g, ok := gambits[user.Gambits[choice]]
	if !ok {
		return nil
	}
	user.AddHP(g.User.HP)
	user.AddSpecial(g.User.Special)
	opponent.AddHP(g.Opponent.HP)
	opponent.AddSpecial(g.Opponent.Special)
	user.AddSpecial(-SpecialCost)
	return &GambitEffect{Key: g.ID, Text: g.Text}
}
