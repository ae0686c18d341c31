// Command export runs the rule 30 demo on a 3x1 strip and writes every
// generation's cell states to a JSON file, demonstrating how a structured
// export collaborator consumes the engine's read-only surface.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"torus-ca/pkg/automata"
)

// output is the document written to disk: a free-form note plus one
// rows-of-cells snapshot per generation.
type output struct {
	Note   string       `json:"note"`
	States [][][]string `json:"states"`
}

func rule30(h, v int, g automata.View) automata.CellState {
	left := g.GetAt(g.West(h, v)) == automata.Alive
	center := g.Get(h, v) == automata.Alive
	right := g.GetAt(g.East(h, v)) == automata.Alive
	if left != (center || right) {
		return automata.Alive
	}
	return automata.Dead
}

// snapshot copies the grid into rows of state names. The grid is re-read
// in full after every update; nothing is cached across generations.
func snapshot(g *automata.Grid) [][]string {
	rows := make([][]string, g.VerticalSize())
	for v := range rows {
		row := make([]string, g.HorizontalSize())
		for h := range row {
			row[h] = g.Get(h, v).String()
		}
		rows[v] = row
	}
	return rows
}

func main() {
	out := flag.String("out", "simulation.json", "path of the JSON file to write")
	generations := flag.Int("generations", 3, "number of generations to record after the initial state")
	flag.Parse()

	uni, err := automata.NewUniverse(3, 1, rule30)
	if err != nil {
		log.Fatalf("constructing universe: %v", err)
	}
	uni.Grid().Set(1, 0, automata.Alive)

	doc := output{Note: "simulating rule 30"}
	doc.States = append(doc.States, snapshot(uni.Grid()))
	for i := 0; i < *generations; i++ {
		uni.Update()
		doc.States = append(doc.States, snapshot(uni.Grid()))
	}

	data, err := json.Marshal(doc)
	if err != nil {
		log.Fatalf("encoding states: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
}
