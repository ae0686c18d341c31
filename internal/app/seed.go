package app

import (
	"math/rand/v2"

	"torus-ca/pkg/automata"
)

// Randomize fills the grid with a deterministic half-density pattern
// derived from the seed.
func Randomize(grid *automata.Grid, seed int64) {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for v := 0; v < grid.VerticalSize(); v++ {
		for h := 0; h < grid.HorizontalSize(); h++ {
			state := automata.Dead
			if rng.IntN(2) == 1 {
				state = automata.Alive
			}
			grid.Set(h, v, state)
		}
	}
}
