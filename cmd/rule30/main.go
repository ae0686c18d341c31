// Command rule30 runs Wolfram's rule 30 on a width x 1 toroidal strip and
// prints each generation to the terminal, one line per generation.
// Living cells print as 'o', dead cells as 'x'.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"torus-ca/pkg/automata"
)

// rule30 maps the west/self/east 3-neighborhood through Wolfram code 30:
// the next state is west XOR (self OR east).
func rule30(h, v int, g automata.View) automata.CellState {
	left := g.GetAt(g.West(h, v)) == automata.Alive
	center := g.Get(h, v) == automata.Alive
	right := g.GetAt(g.East(h, v)) == automata.Alive
	if left != (center || right) {
		return automata.Alive
	}
	return automata.Dead
}

func formatRow(g *automata.Grid, v int) string {
	var b strings.Builder
	for h := 0; h < g.HorizontalSize(); h++ {
		if g.Get(h, v) == automata.Alive {
			b.WriteByte('o')
		} else {
			b.WriteByte('x')
		}
	}
	return b.String()
}

func main() {
	width := flag.Int("width", 31, "width of the strip in cells")
	generations := flag.Int("generations", 15, "number of generations to run")
	flag.Parse()

	uni, err := automata.NewUniverse(*width, 1, rule30)
	if err != nil {
		log.Fatalf("bad strip width %d: %v", *width, err)
	}

	// Single live cell in the center column.
	uni.Grid().Set(*width/2, 0, automata.Alive)

	fmt.Println(formatRow(uni.Grid(), 0))
	for i := 0; i < *generations; i++ {
		uni.Update()
		fmt.Println(formatRow(uni.Grid(), 0))
	}
}
