package game

import (
	"sync"
	"testing"
)

// fixedSource always answers the same position relative to n.
type fixedSource struct{ last bool }

func (s fixedSource) Intn(n int) int {
	if s.last {
		return n - 1
	}
	return 0
}

func TestTriangleFromFixedSource(t *testing.T) {
	// Intn(n) == n-1 never swaps: canonical order fire, water, grass.
	tri := NewRandomizer(fixedSource{last: true}).Triangle()
	want := Triangle{ElementFire: ElementWater, ElementWater: ElementGrass, ElementGrass: ElementFire}
	for k, v := range want {
		if tri[k] != v {
			t.Fatalf("triangle[%s] = %s, want %s", k, tri[k], v)
		}
	}

	// Intn(n) == 0 rotates to water, grass, fire.
	tri = NewRandomizer(fixedSource{}).Triangle()
	want = Triangle{ElementWater: ElementGrass, ElementGrass: ElementFire, ElementFire: ElementWater}
	for k, v := range want {
		if tri[k] != v {
			t.Fatalf("triangle[%s] = %s, want %s", k, tri[k], v)
		}
	}
}

func TestGambitsFromFixedSource(t *testing.T) {
	got := NewRandomizer(fixedSource{last: true}).Gambits()
	want := GambitAssignments{ChoiceRock: GambitRed, ChoicePaper: GambitGreen, ChoiceScissors: GambitPurple}
	for c, id := range want {
		if got[c] != id {
			t.Fatalf("gambits[%s] = %s, want %s", c, got[c], id)
		}
	}

	got = NewRandomizer(fixedSource{}).Gambits()
	want = GambitAssignments{ChoiceRock: GambitGreen, ChoicePaper: GambitPurple, ChoiceScissors: GambitRed}
	for c, id := range want {
		if got[c] != id {
			t.Fatalf("gambits[%s] = %s, want %s", c, got[c], id)
		}
	}
}

func TestTriangleAlwaysValid(t *testing.T) {
	rng := NewSeededRandomizer(7)
	orientations := map[Element]bool{}
	for i := 0; i < 500; i++ {
		tri := rng.Triangle()
		if !tri.Valid() {
			t.Fatalf("invalid triangle %v", tri)
		}
		orientations[tri[ElementFire]] = true
	}
	if len(orientations) != 2 {
		t.Fatalf("expected both cycle orientations, saw %v", orientations)
	}
}

func TestGambitsAlwaysBijective(t *testing.T) {
	rng := NewSeededRandomizer(11)
	seen := map[GambitID]bool{}
	for i := 0; i < 500; i++ {
		a := rng.Gambits()
		if !a.Valid() {
			t.Fatalf("invalid assignment %v", a)
		}
		seen[a[ChoiceRock]] = true
	}
	if len(seen) != len(GambitIDs) {
		t.Fatalf("rock never bound to some gambits: %v", seen)
	}
}

func TestTriangleValidRejects(t *testing.T) {
	cases := map[string]Triangle{
		"empty":       {},
		"fixed point": {ElementFire: ElementFire, ElementWater: ElementGrass, ElementGrass: ElementWater},
		"two cycle":   {ElementFire: ElementWater, ElementWater: ElementFire, ElementGrass: ElementFire},
		"unknown":     {ElementFire: "air", ElementWater: ElementGrass, ElementGrass: ElementFire},
	}
	for name, tri := range cases {
		if tri.Valid() {
			t.Errorf("%s: expected invalid", name)
		}
	}
}

func TestRandomizerConcurrentUse(t *testing.T) {
	rng := NewSeededRandomizer(3)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if !rng.Gambits().Valid() {
					t.Error("invalid assignment under concurrency")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNewSecureRandomizer(t *testing.T) {
	rng, err := NewSecureRandomizer()
	if err != nil {
		t.Fatalf("secure randomizer: %v", err)
	}
	if !rng.Triangle().Valid() {
		t.Fatal("invalid triangle from secure randomizer")
	}
}
