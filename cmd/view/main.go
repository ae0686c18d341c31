//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"torus-ca/internal/app"
	"torus-ca/pkg/automata"

	"github.com/hajimehoshi/ebiten/v2"
)

// conway implements Conway's Game of Life on the toroidal grid. Demo glue:
// the engine ships no rules of its own.
func conway(h, v int, g automata.View) automata.CellState {
	neighbors := 0
	for _, c := range [8]automata.Coord{
		g.North(h, v), g.NorthEast(h, v), g.East(h, v), g.SouthEast(h, v),
		g.South(h, v), g.SouthWest(h, v), g.West(h, v), g.NorthWest(h, v),
	} {
		if g.GetAt(c) == automata.Alive {
			neighbors++
		}
	}
	if neighbors == 3 || (neighbors == 2 && g.Get(h, v) == automata.Alive) {
		return automata.Alive
	}
	return automata.Dead
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	uni, err := automata.NewUniverse(cfg.Width, cfg.Height, conway)
	if err != nil {
		log.Fatalf("bad grid size %dx%d: %v", cfg.Width, cfg.Height, err)
	}
	app.Randomize(uni.Grid(), cfg.Seed)

	game := app.New(uni, cfg.Scale, cfg.Seed)

	ebiten.SetWindowTitle("torus-ca — life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
