package core

// Size describes the dimensions of a cell grid.
type Size struct {
	W int
	H int
}

// DefaultSize is the field the viewer runs on: 200 columns by 150 rows.
var DefaultSize = Size{W: 200, H: 150}

// Contains reports whether (x, y) addresses a cell inside the size.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// CellState is the two-valued state of a single cell.
type CellState uint8

const (
	// Dead is the zero value so freshly allocated grids start empty.
	Dead CellState = iota
	// Alive marks a live cell.
	Alive
)

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Point is a (col, row) grid coordinate.
type Point struct {
	X int
	Y int
}
