package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
)

// Source supplies uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Randomizer shuffles elemental triangles and gambit bindings. It is safe
// for concurrent use by many rooms.
type Randomizer struct {
	mu  sync.Mutex
	src Source
}

func NewRandomizer(src Source) *Randomizer {
	return &Randomizer{src: src}
}

// NewSeededRandomizer returns a Randomizer whose sequence is fully
// determined by seed.
func NewSeededRandomizer(seed int64) *Randomizer {
	return NewRandomizer(rand.New(rand.NewSource(seed)))
}

// NewSecureRandomizer seeds a Randomizer from crypto/rand.
func NewSecureRandomizer() (*Randomizer, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return NewSeededRandomizer(int64(binary.LittleEndian.Uint64(b[:]))), nil
}

// perm3 returns a Fisher-Yates shuffle of the indexes 0..2.
func (r *Randomizer) perm3() [3]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := [3]int{0, 1, 2}
	for i := len(idx) - 1; i > 0; i-- {
		j := r.src.Intn(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx
}

// Triangle returns a uniformly random dominance cycle over the elements.
func (r *Randomizer) Triangle() Triangle {
	p := r.perm3()
	a, b, c := Elements[p[0]], Elements[p[1]], Elements[p[2]]
	return Triangle{a: b, b: c, c: a}
}

// Gambits returns a uniformly random binding of hand choices to gambits.
func (r *Randomizer) Gambits() GambitAssignments {
	p := r.perm3()
	out := make(GambitAssignments, len(Choices))
	for i, c := range Choices {
		out[c] = GambitIDs[p[i]]
	}
	return out
}
