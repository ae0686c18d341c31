package automata

import (
	"errors"
	"fmt"
)

// MaxSize is the largest dimension a grid may have on either axis. The
// bound keeps the worst-case footprint (MaxSize*MaxSize cells) small
// enough for memory-constrained targets.
const MaxSize = 255

var (
	// ErrInvalidDimension reports a requested grid size of zero or one
	// exceeding MaxSize.
	ErrInvalidDimension = errors.New("automata: invalid grid dimension")
	// ErrCoordinateOutOfRange reports a coordinate outside the grid's
	// configured bounds. Accessors panic with an error wrapping this
	// value; out-of-range input is a caller contract violation, not a
	// recoverable condition.
	ErrCoordinateOutOfRange = errors.New("automata: coordinate out of range")
	// ErrNilRule reports a Universe constructed without a transition rule.
	ErrNilRule = errors.New("automata: nil rule")
)

// Grid stores cell states for a rectangular toroidal surface and provides
// the wrap-around neighbor-coordinate arithmetic. Cell positions start at
// the top left corner; the grid knows nothing about simulation semantics.
//
// Cells live in a single flat slice in row-major order, allocated once at
// construction and never resized.
type Grid struct {
	hsize int
	vsize int
	cells []CellState
}

// NewGrid returns a grid with the given dimensions, every cell Dead.
// Either size being zero or exceeding MaxSize fails with
// ErrInvalidDimension.
func NewGrid(hSize, vSize int) (*Grid, error) {
	if hSize < 1 || hSize > MaxSize {
		return nil, fmt.Errorf("%w: horizontal size %d not in [1, %d]", ErrInvalidDimension, hSize, MaxSize)
	}
	if vSize < 1 || vSize > MaxSize {
		return nil, fmt.Errorf("%w: vertical size %d not in [1, %d]", ErrInvalidDimension, vSize, MaxSize)
	}
	return &Grid{
		hsize: hSize,
		vsize: vSize,
		cells: make([]CellState, hSize*vSize),
	}, nil
}

// HorizontalSize returns the number of columns.
func (g *Grid) HorizontalSize() int { return g.hsize }

// VerticalSize returns the number of rows.
func (g *Grid) VerticalSize() int { return g.vsize }

// check panics with ErrCoordinateOutOfRange unless (h, v) lies within the
// configured bounds. Wrapping is reserved for the neighbor functions;
// invalid input is never clamped or wrapped.
func (g *Grid) check(h, v int) {
	if h < 0 || h >= g.hsize {
		panic(fmt.Errorf("%w: horizontal coordinate %d not in [0, %d)", ErrCoordinateOutOfRange, h, g.hsize))
	}
	if v < 0 || v >= g.vsize {
		panic(fmt.Errorf("%w: vertical coordinate %d not in [0, %d)", ErrCoordinateOutOfRange, v, g.vsize))
	}
}

// Get returns the state at (h, v).
func (g *Grid) Get(h, v int) CellState {
	g.check(h, v)
	return g.cells[h+v*g.hsize]
}

// GetAt is Get for the paired-coordinate form.
func (g *Grid) GetAt(c Coord) CellState { return g.Get(c.H, c.V) }

// Set replaces the state at (h, v).
func (g *Grid) Set(h, v int, state CellState) {
	g.check(h, v)
	g.cells[h+v*g.hsize] = state
}

// SetAt is Set for the paired-coordinate form.
func (g *Grid) SetAt(c Coord, state CellState) { g.Set(c.H, c.V, state) }

// North returns the coordinate one step up from (h, v), wrapping from the
// top row to the bottom row.
func (g *Grid) North(h, v int) Coord {
	g.check(h, v)
	if v == 0 {
		return Coord{H: h, V: g.vsize - 1}
	}
	return Coord{H: h, V: v - 1}
}

// NorthAt is North for the paired-coordinate form.
func (g *Grid) NorthAt(c Coord) Coord { return g.North(c.H, c.V) }

// South returns the coordinate one step down from (h, v), wrapping from
// the bottom row to the top row.
func (g *Grid) South(h, v int) Coord {
	g.check(h, v)
	if v == g.vsize-1 {
		return Coord{H: h, V: 0}
	}
	return Coord{H: h, V: v + 1}
}

// SouthAt is South for the paired-coordinate form.
func (g *Grid) SouthAt(c Coord) Coord { return g.South(c.H, c.V) }

// East returns the coordinate one step right of (h, v), wrapping from the
// last column to the first.
func (g *Grid) East(h, v int) Coord {
	g.check(h, v)
	if h == g.hsize-1 {
		return Coord{H: 0, V: v}
	}
	return Coord{H: h + 1, V: v}
}

// EastAt is East for the paired-coordinate form.
func (g *Grid) EastAt(c Coord) Coord { return g.East(c.H, c.V) }

// West returns the coordinate one step left of (h, v), wrapping from the
// first column to the last.
func (g *Grid) West(h, v int) Coord {
	g.check(h, v)
	if h == 0 {
		return Coord{H: g.hsize - 1, V: v}
	}
	return Coord{H: h - 1, V: v}
}

// WestAt is West for the paired-coordinate form.
func (g *Grid) WestAt(c Coord) Coord { return g.West(c.H, c.V) }

// The diagonals are compositions of the cardinal functions, never
// independent arithmetic, so diagonal wrap stays consistent with cardinal
// wrap even at corners where both axes wrap at once.

// NorthEast returns the coordinate diagonally up-right of (h, v).
func (g *Grid) NorthEast(h, v int) Coord { return g.NorthAt(g.East(h, v)) }

// NorthEastAt is NorthEast for the paired-coordinate form.
func (g *Grid) NorthEastAt(c Coord) Coord { return g.NorthAt(g.East(c.H, c.V)) }

// SouthEast returns the coordinate diagonally down-right of (h, v).
func (g *Grid) SouthEast(h, v int) Coord { return g.SouthAt(g.East(h, v)) }

// SouthEastAt is SouthEast for the paired-coordinate form.
func (g *Grid) SouthEastAt(c Coord) Coord { return g.SouthAt(g.East(c.H, c.V)) }

// SouthWest returns the coordinate diagonally down-left of (h, v).
func (g *Grid) SouthWest(h, v int) Coord { return g.SouthAt(g.West(h, v)) }

// SouthWestAt is SouthWest for the paired-coordinate form.
func (g *Grid) SouthWestAt(c Coord) Coord { return g.SouthAt(g.West(c.H, c.V)) }

// NorthWest returns the coordinate diagonally up-left of (h, v).
func (g *Grid) NorthWest(h, v int) Coord { return g.NorthAt(g.West(h, v)) }

// NorthWestAt is NorthWest for the paired-coordinate form.
func (g *Grid) NorthWestAt(c Coord) Coord { return g.NorthAt(g.West(c.H, c.V)) }
