package core

// Grid stores a fixed-size field of cell states in row-major order. Cells are
// addressed by (col, row); callers never pass out-of-range coordinates.
type Grid struct {
	W, H int
	data []CellState
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(size Size) *Grid {
	w, h := size.W, size.H
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]CellState, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []CellState { return g.data }

// Index returns the linear slice index for coordinates (col, row).
func (g *Grid) Index(col, row int) int { return row*g.W + col }

// At returns the state of the cell at (col, row).
func (g *Grid) At(col, row int) CellState { return g.data[row*g.W+col] }

// Alive reports whether the cell at (col, row) is alive.
func (g *Grid) Alive(col, row int) bool { return g.data[row*g.W+col] == Alive }

// Set writes the state of the cell at (col, row).
func (g *Grid) Set(col, row int, s CellState) { g.data[row*g.W+col] = s }

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]CellState, len(g.data))
	copy(data, g.data)
	return &Grid{W: g.W, H: g.H, data: data}
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(o *Grid) bool {
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i, s := range g.data {
		if o.data[i] != s {
			return false
		}
	}
	return true
}

// Clear resets every cell to Dead.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, s := range g.data {
		if s == Alive {
			n++
		}
	}
	return n
}

// LiveCells lists the coordinates of all live cells, row by row.
func (g *Grid) LiveCells() []Point {
	var pts []Point
	for i, s := range g.data {
		if s == Alive {
			pts = append(pts, Point{X: i % g.W, Y: i / g.W})
		}
	}
	return pts
}
