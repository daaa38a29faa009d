package game

import "testing"

func canonicalGambits() GambitAssignments {
	return GambitAssignments{ChoiceRock: GambitRed, ChoicePaper: GambitGreen, ChoiceScissors: GambitPurple}
}

func TestApplyGambitRedSacrifice(t *testing.T) {
	rng := NewSeededRandomizer(1)
	user := NewPlayerState("p1", ElementFire)
	user.Special = 100
	user.Gambits = canonicalGambits()
	opp := NewPlayerState("p2", ElementWater)

	eff := ApplyGambit(user, opp, ChoiceRock, rng)
	if eff == nil || eff.Key != GambitRed {
		t.Fatalf("expected red gambit effect, got %+v", eff)
	}
	if user.HP != 75 {
		t.Fatalf("user hp = %d, want 75", user.HP)
	}
	if user.Special != 0 {
		t.Fatalf("user special = %d, want 0", user.Special)
	}
	if opp.HP != 65 {
		t.Fatalf("opponent hp = %d, want 65", opp.HP)
	}
	if opp.Special != 15 {
		t.Fatalf("opponent special = %d, want 15", opp.Special)
	}
	if !user.Gambits.Valid() {
		t.Fatalf("user gambits not reassigned to a bijection: %v", user.Gambits)
	}
}

func TestApplyGambitClampsAndChargesCost(t *testing.T) {
	rng := NewSeededRandomizer(2)
	user := NewPlayerState("p1", ElementFire)
	user.HP = 90
	user.Special = 30
	user.Gambits = canonicalGambits()
	opp := NewPlayerState("p2", ElementWater)
	opp.Special = 98

	eff := ApplyGambit(user, opp, ChoicePaper, rng)
	if eff == nil || eff.Key != GambitGreen {
		t.Fatalf("expected green gambit effect, got %+v", eff)
	}
	if user.HP != 100 {
		t.Fatalf("user hp = %d, want 100 (capped)", user.HP)
	}
	// 30+10 = 40, then the full cost is still deducted.
	if user.Special != 0 {
		t.Fatalf("user special = %d, want 0", user.Special)
	}
	if opp.HP != 100 || opp.Special != 100 {
		t.Fatalf("opponent = %d hp %d sp, want 100/100", opp.HP, opp.Special)
	}
}

func TestApplyGambitPurpleDrainsOpponent(t *testing.T) {
	rng := NewSeededRandomizer(3)
	user := NewPlayerState("p1", ElementFire)
	user.Special = 100
	user.Gambits = canonicalGambits()
	opp := NewPlayerState("p2", ElementWater)
	opp.HP = 50
	opp.Special = 10

	ApplyGambit(user, opp, ChoiceScissors, rng)
	if user.HP != 85 || user.Special != 0 {
		t.Fatalf("user = %d hp %d sp, want 85/0", user.HP, user.Special)
	}
	if opp.HP != 60 || opp.Special != 0 {
		t.Fatalf("opponent = %d hp %d sp, want 60/0", opp.HP, opp.Special)
	}
}

func TestApplyGambitUnboundHandHasNoEffect(t *testing.T) {
	rng := NewSeededRandomizer(4)
	user := NewPlayerState("p1", ElementFire)
	user.Special = 100
	user.Gambits = GambitAssignments{}
	opp := NewPlayerState("p2", ElementWater)

	if eff := ApplyGambit(user, opp, ChoiceRock, rng); eff != nil {
		t.Fatalf("expected no effect, got %+v", eff)
	}
	if user.HP != 100 || user.Special != 100 || opp.HP != 100 || opp.Special != 0 {
		t.Fatalf("state changed without a bound gambit: user %+v opp %+v", user, opp)
	}
	if !user.Gambits.Valid() {
		t.Fatalf("expected fresh bindings, got %v", user.Gambits)
	}
}

func TestGambitAssignmentsValid(t *testing.T) {
	if !canonicalGambits().Valid() {
		t.Fatal("canonical bindings should be valid")
	}
	dup := GambitAssignments{ChoiceRock: GambitRed, ChoicePaper: GambitRed, ChoiceScissors: GambitPurple}
	if dup.Valid() {
		t.Fatal("duplicate gambit should be invalid")
	}
	unknown := GambitAssignments{ChoiceRock: "gambit_blue", ChoicePaper: GambitGreen, ChoiceScissors: GambitPurple}
	if unknown.Valid() {
		t.Fatal("unknown gambit should be invalid")
	}
}
