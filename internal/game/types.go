package game

import "fmt"

// PlayerID is the opaque identity of a connected participant. The transport
// decides what it maps to; the engine only compares them.
type PlayerID string

type Element string

const (
	ElementFire  Element = "fire"
	ElementWater Element = "water"
	ElementGrass Element = "grass"
)

// Elements lists the valid elements in their canonical order.
var Elements = [3]Element{ElementFire, ElementWater, ElementGrass}

func ParseElement(s string) (Element, error) {
	for _, e := range Elements {
		if string(e) == s {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidElement, s)
}

type Choice string

const (
	ChoiceRock     Choice = "rock"
	ChoicePaper    Choice = "paper"
	ChoiceScissors Choice = "scissors"
)

// Choices lists the valid hand choices in their canonical order.
var Choices = [3]Choice{ChoiceRock, ChoicePaper, ChoiceScissors}

func ParseChoice(s string) (Choice, error) {
	for _, c := range Choices {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidChoice, s)
}

const (
	StartHP     = 100
	MaxSpecial  = 100
	SpecialCost = 100
)

// Move is a submitted hand awaiting resolution.
type Move struct {
	Choice    Choice `json:"choice"`
	IsSpecial bool   `json:"isSpecial"`
}

// PlayerState is one participant of a match. Streak counters are mutually
// exclusive: at most one of ConsecutiveWins and ConsecutiveLosses is non-zero.
type PlayerState struct {
	ID                PlayerID
	Element           Element
	HP                int
	MaxHP             int
	Special           int
	ConsecutiveWins   int
	ConsecutiveLosses int
	Gambits           GambitAssignments
	Pending           *Move
}

func NewPlayerState(id PlayerID, element Element) *PlayerState {
	return &PlayerState{
		ID:      id,
		Element: element,
		HP:      StartHP,
		MaxHP:   StartHP,
	}
}

// AddHP changes hp by delta, clamped to [0, MaxHP].
func (p *PlayerState) AddHP(delta int) {
	p.HP = clamp(p.HP+delta, 0, p.MaxHP)
}

// AddSpecial changes the special meter by delta, clamped to [0, MaxSpecial].
func (p *PlayerState) AddSpecial(delta int) {
	p.Special = clamp(p.Special+delta, 0, MaxSpecial)
}

func (p *PlayerState) KnockedOut() bool {
	return p.HP <= 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
