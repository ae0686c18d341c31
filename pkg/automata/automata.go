// Package automata implements a discrete cellular automata engine on a
// fixed-size toroidal grid. A Grid owns bounded 2D cell storage and the
// wrap-around neighbor-coordinate arithmetic; a Universe pairs a live grid
// with a private shadow grid and advances generations by applying a pure
// transition rule to every cell. Storage is allocated once at construction
// and never resized.
package automata

import "strconv"

// CellState is the condition of a single cell. The engine only stores,
// copies, and forwards state values; interpreting them is entirely up to
// the transition rule, so rules are free to use richer finite state sets
// than the binary Dead/Alive pair.
type CellState uint8

const (
	// Dead is the default state every grid starts in.
	Dead CellState = iota
	// Alive marks a living cell.
	Alive
)

// Bool reports whether the state counts as alive. Dead maps to false,
// everything else to true.
func (c CellState) Bool() bool { return c != Dead }

// String returns a human-readable name for binary states.
func (c CellState) String() string {
	switch c {
	case Dead:
		return "Dead"
	case Alive:
		return "Alive"
	}
	return "CellState(" + strconv.Itoa(int(c)) + ")"
}

// PackByte folds eight binary cell states into one octet. The state at
// index 0 ends up in the most significant bit; any non-Dead state sets
// its bit.
func PackByte(states [8]CellState) uint8 {
	var b uint8
	for _, s := range states {
		b <<= 1
		if s != Dead {
			b |= 1
		}
	}
	return b
}

// Coord is the paired form of a grid coordinate. Accessors taking a Coord
// delegate to their two-argument twins, so both forms share one code path
// and one validation site.
type Coord struct {
	H int
	V int
}

// View is the read-only surface of a Grid. Transition rules receive a View
// rather than a *Grid, which keeps a stepping universe's live grid
// structurally immutable from inside rule code.
type View interface {
	HorizontalSize() int
	VerticalSize() int

	Get(h, v int) CellState
	GetAt(c Coord) CellState

	North(h, v int) Coord
	South(h, v int) Coord
	East(h, v int) Coord
	West(h, v int) Coord
	NorthAt(c Coord) Coord
	SouthAt(c Coord) Coord
	EastAt(c Coord) Coord
	WestAt(c Coord) Coord

	NorthEast(h, v int) Coord
	SouthEast(h, v int) Coord
	SouthWest(h, v int) Coord
	NorthWest(h, v int) Coord
	NorthEastAt(c Coord) Coord
	SouthEastAt(c Coord) Coord
	SouthWestAt(c Coord) Coord
	NorthWestAt(c Coord) Coord
}

// Rule maps a coordinate and the frozen pre-step grid to the cell's next
// state. Rules must be pure: no mutation of anything reachable through the
// View, and identical inputs always yield the identical result. That purity
// is what makes cell evaluation order unobservable.
type Rule func(h, v int, g View) CellState
