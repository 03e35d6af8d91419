package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// FillPlayable clears g and sets each playable cell alive with probability
// density. Border cells stay dead.
func FillPlayable(r *RNG, g *Grid, density float64) {
	g.Clear()
	if density <= 0 {
		return
	}
	n := g.N()
	for y := 1; y <= n; y++ {
		for x := 1; x <= n; x++ {
			if r.Chance(density) {
				g.Set(x, y, true)
			}
		}
	}
}
