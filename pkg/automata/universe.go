package automata

// Universe runs one simulation: a live grid, a same-sized shadow grid used
// as scratch space while stepping, and the transition rule bound for the
// universe's lifetime. The shadow grid is never exposed; between steps the
// live grid is the only state callers read or mutate.
type Universe struct {
	grid   *Grid
	shadow *Grid
	rule   Rule
}

// NewUniverse returns a universe of the given dimensions with every cell
// Dead. Dimension failures from grid construction propagate unchanged; a
// nil rule fails with ErrNilRule.
func NewUniverse(hSize, vSize int, rule Rule) (*Universe, error) {
	if rule == nil {
		return nil, ErrNilRule
	}
	grid, err := NewGrid(hSize, vSize)
	if err != nil {
		return nil, err
	}
	shadow, err := NewGrid(hSize, vSize)
	if err != nil {
		return nil, err
	}
	return &Universe{grid: grid, shadow: shadow, rule: rule}, nil
}

// Grid returns the live grid. Callers may read it at any time and mutate
// it between Update calls, but must not touch it while Update runs.
func (u *Universe) Grid() *Grid { return u.grid }

// Update advances the universe by one generation. Every cell's next state
// is computed from the frozen pre-step grid and written into the shadow
// grid, so rule invocations never observe a neighbor that was already
// updated this generation and the result is independent of evaluation
// order. Once all cells are written the shadow contents are published by
// swapping the two grids' backing storage; grid identity stays stable, so
// a *Grid held by the caller keeps pointing at the live state.
func (u *Universe) Update() {
	for v := 0; v < u.grid.vsize; v++ {
		for h := 0; h < u.grid.hsize; h++ {
			u.shadow.cells[h+v*u.shadow.hsize] = u.rule(h, v, u.grid)
		}
	}
	u.grid.cells, u.shadow.cells = u.shadow.cells, u.grid.cells
}
