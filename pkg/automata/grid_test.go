package automata

import (
	"errors"
	"testing"
)

// wantCoordinatePanic fails the test unless fn panics with an error
// wrapping ErrCoordinateOutOfRange.
func wantCoordinatePanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("%s: expected panic for out-of-range coordinate", name)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrCoordinateOutOfRange) {
			t.Fatalf("%s: panic value %v does not wrap ErrCoordinateOutOfRange", name, r)
		}
	}()
	fn()
}

func mustGrid(t *testing.T, h, v int) *Grid {
	t.Helper()
	g, err := NewGrid(h, v)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", h, v, err)
	}
	return g
}

func TestNewGrid(t *testing.T) {
	g := mustGrid(t, 5, 23)
	if g.HorizontalSize() != 5 {
		t.Fatalf("horizontal size = %d, want 5", g.HorizontalSize())
	}
	if g.VerticalSize() != 23 {
		t.Fatalf("vertical size = %d, want 23", g.VerticalSize())
	}
	for v := 0; v < 23; v++ {
		for h := 0; h < 5; h++ {
			if g.Get(h, v) != Dead {
				t.Fatalf("cell (%d,%d) = %v, want Dead", h, v, g.Get(h, v))
			}
		}
	}
}

func TestNewGridInvalidDimension(t *testing.T) {
	cases := []struct{ h, v int }{
		{0, 1},
		{1, 0},
		{0, 0},
		{MaxSize + 1, 1},
		{1, MaxSize + 1},
		{-3, 4},
	}
	for _, c := range cases {
		if _, err := NewGrid(c.h, c.v); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("NewGrid(%d, %d): err = %v, want ErrInvalidDimension", c.h, c.v, err)
		}
	}
	if _, err := NewGrid(MaxSize, MaxSize); err != nil {
		t.Fatalf("NewGrid at capacity: %v", err)
	}
}

func TestGetSetCellState(t *testing.T) {
	g := mustGrid(t, 3, 17)
	if got := g.Get(1, 8); got != Dead {
		t.Fatalf("fresh cell = %v, want Dead", got)
	}

	g.Set(1, 8, Alive)
	if got := g.Get(1, 8); got != Alive {
		t.Fatalf("after Set, cell = %v, want Alive", got)
	}

	// The paired form must behave identically to the discrete form.
	g.SetAt(Coord{H: 2, V: 5}, Alive)
	if got := g.Get(2, 5); got != Alive {
		t.Fatalf("after SetAt, cell = %v, want Alive", got)
	}
	if got := g.GetAt(Coord{H: 2, V: 5}); got != Alive {
		t.Fatalf("GetAt = %v, want Alive", got)
	}
	if g.Get(0, 0) != Dead {
		t.Fatal("Set must mutate exactly one cell")
	}
}

func TestAccessorsOutOfRange(t *testing.T) {
	g := mustGrid(t, 3, 17)
	wantCoordinatePanic(t, "Get h", func() { g.Get(3, 0) })
	wantCoordinatePanic(t, "Get v", func() { g.Get(1, 17) })
	wantCoordinatePanic(t, "Get negative", func() { g.Get(-1, 0) })
	wantCoordinatePanic(t, "GetAt", func() { g.GetAt(Coord{H: 3, V: 0}) })
	wantCoordinatePanic(t, "Set h", func() { g.Set(3, 0, Alive) })
	wantCoordinatePanic(t, "Set v", func() { g.Set(1, 17, Alive) })
	wantCoordinatePanic(t, "SetAt", func() { g.SetAt(Coord{H: 0, V: 17}, Alive) })
}

func TestNeighborsOutOfRange(t *testing.T) {
	g := mustGrid(t, 1, 4)
	wantCoordinatePanic(t, "North", func() { g.North(1, 2) })
	wantCoordinatePanic(t, "South", func() { g.South(0, 4) })
	wantCoordinatePanic(t, "East", func() { g.East(1, 2) })
	wantCoordinatePanic(t, "West", func() { g.West(0, 4) })
	wantCoordinatePanic(t, "NorthEast", func() { g.NorthEast(1, 2) })
	wantCoordinatePanic(t, "SouthEast", func() { g.SouthEast(0, 4) })
	wantCoordinatePanic(t, "SouthWest", func() { g.SouthWest(1, 2) })
	wantCoordinatePanic(t, "NorthWest", func() { g.NorthWest(0, 4) })
	wantCoordinatePanic(t, "NorthAt", func() { g.NorthAt(Coord{H: 1, V: 2}) })
	wantCoordinatePanic(t, "NorthEastAt", func() { g.NorthEastAt(Coord{H: 0, V: 4}) })
}

func TestCardinalCoordinates(t *testing.T) {
	g := mustGrid(t, 3, 4)
	cases := []struct {
		name string
		fn   func(h, v int) Coord
		h, v int
		want Coord
	}{
		{"north interior", g.North, 1, 2, Coord{1, 1}},
		{"north wraps", g.North, 2, 0, Coord{2, 3}},
		{"south interior", g.South, 1, 2, Coord{1, 3}},
		{"south wraps", g.South, 2, 3, Coord{2, 0}},
		{"east interior", g.East, 1, 2, Coord{2, 2}},
		{"east wraps", g.East, 2, 2, Coord{0, 2}},
		{"west interior", g.West, 1, 2, Coord{0, 2}},
		{"west wraps", g.West, 0, 2, Coord{2, 2}},
	}
	for _, c := range cases {
		if got := c.fn(c.h, c.v); got != c.want {
			t.Fatalf("%s: (%d,%d) -> %v, want %v", c.name, c.h, c.v, got, c.want)
		}
	}
}

func TestDiagonalCoordinates(t *testing.T) {
	g := mustGrid(t, 3, 4)
	cases := []struct {
		name string
		fn   func(h, v int) Coord
		h, v int
		want Coord
	}{
		{"northeast interior", g.NorthEast, 1, 2, Coord{2, 1}},
		{"northeast corner wrap", g.NorthEast, 2, 0, Coord{0, 3}},
		{"southeast interior", g.SouthEast, 1, 2, Coord{2, 3}},
		{"southeast corner wrap", g.SouthEast, 2, 3, Coord{0, 0}},
		{"southwest interior", g.SouthWest, 1, 2, Coord{0, 3}},
		{"southwest corner wrap", g.SouthWest, 0, 3, Coord{2, 0}},
		{"northwest interior", g.NorthWest, 1, 2, Coord{0, 1}},
		{"northwest corner wrap", g.NorthWest, 0, 0, Coord{2, 3}},
	}
	for _, c := range cases {
		if got := c.fn(c.h, c.v); got != c.want {
			t.Fatalf("%s: (%d,%d) -> %v, want %v", c.name, c.h, c.v, got, c.want)
		}
	}
}

// Diagonals are defined as compositions of the cardinals; verify the
// equality over every coordinate of a small grid, corners included.
func TestDiagonalsComposeFromCardinals(t *testing.T) {
	g := mustGrid(t, 4, 3)
	for v := 0; v < g.VerticalSize(); v++ {
		for h := 0; h < g.HorizontalSize(); h++ {
			if got, want := g.NorthEast(h, v), g.NorthAt(g.East(h, v)); got != want {
				t.Fatalf("northeast(%d,%d) = %v, want north(east) = %v", h, v, got, want)
			}
			if got, want := g.SouthEast(h, v), g.SouthAt(g.East(h, v)); got != want {
				t.Fatalf("southeast(%d,%d) = %v, want south(east) = %v", h, v, got, want)
			}
			if got, want := g.SouthWest(h, v), g.SouthAt(g.West(h, v)); got != want {
				t.Fatalf("southwest(%d,%d) = %v, want south(west) = %v", h, v, got, want)
			}
			if got, want := g.NorthWest(h, v), g.NorthAt(g.West(h, v)); got != want {
				t.Fatalf("northwest(%d,%d) = %v, want north(west) = %v", h, v, got, want)
			}
		}
	}
}

// Each cardinal is the inverse of its opposite on a torus.
func TestWrapIsItsOwnInverse(t *testing.T) {
	g := mustGrid(t, 5, 3)
	for v := 0; v < g.VerticalSize(); v++ {
		for h := 0; h < g.HorizontalSize(); h++ {
			at := Coord{H: h, V: v}
			if got := g.WestAt(g.East(h, v)); got != at {
				t.Fatalf("west(east(%v)) = %v", at, got)
			}
			if got := g.EastAt(g.West(h, v)); got != at {
				t.Fatalf("east(west(%v)) = %v", at, got)
			}
			if got := g.NorthAt(g.South(h, v)); got != at {
				t.Fatalf("north(south(%v)) = %v", at, got)
			}
			if got := g.SouthAt(g.North(h, v)); got != at {
				t.Fatalf("south(north(%v)) = %v", at, got)
			}
		}
	}
}

func TestWrapOnlyAtEdges(t *testing.T) {
	g := mustGrid(t, 5, 3)
	for v := 0; v < g.VerticalSize(); v++ {
		if got := g.West(0, v); got != (Coord{H: 4, V: v}) {
			t.Fatalf("west(0,%d) = %v, want (4,%d)", v, got, v)
		}
		for h := 0; h < g.HorizontalSize(); h++ {
			east := g.East(h, v)
			if h == g.HorizontalSize()-1 {
				if east.H != 0 {
					t.Fatalf("east(%d,%d) = %v, want wrap to column 0", h, v, east)
				}
				continue
			}
			if east.H != h+1 {
				t.Fatalf("east(%d,%d) = %v, want column %d", h, v, east, h+1)
			}
		}
	}
	for h := 0; h < g.HorizontalSize(); h++ {
		if got := g.North(h, 0); got != (Coord{H: h, V: 2}) {
			t.Fatalf("north(%d,0) = %v, want (%d,2)", h, got, h)
		}
		if got := g.South(h, 2); got != (Coord{H: h, V: 0}) {
			t.Fatalf("south(%d,2) = %v, want (%d,0)", h, got, h)
		}
	}
}

func TestSingleRowAndColumnWrap(t *testing.T) {
	g := mustGrid(t, 1, 1)
	at := Coord{H: 0, V: 0}
	for name, fn := range map[string]func(h, v int) Coord{
		"north": g.North, "south": g.South, "east": g.East, "west": g.West,
		"northeast": g.NorthEast, "southeast": g.SouthEast,
		"southwest": g.SouthWest, "northwest": g.NorthWest,
	} {
		if got := fn(0, 0); got != at {
			t.Fatalf("%s on 1x1 grid = %v, want (0,0)", name, got)
		}
	}
}
