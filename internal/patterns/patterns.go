// Package patterns is the catalogue of built-in structures that can be stamped
// onto the grid.
package patterns

import (
	"lastgol/internal/core"
	"lastgol/internal/stamp"
)

// Kind names a built-in structure.
type Kind uint8

const (
	Blinker Kind = iota
	Glider
	GliderGun
)

// Kinds lists every structure in key order (1, 2, 3).
var Kinds = []Kind{Blinker, Glider, GliderGun}

func (k Kind) String() string {
	switch k {
	case Blinker:
		return "Blinker"
	case Glider:
		return "Glider"
	case GliderGun:
		return "Glider Gun"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is one of the catalogued structures.
func (k Kind) Valid() bool { return k <= GliderGun }

var catalogue = map[Kind][]core.Point{
	Blinker: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
	Glider:  {{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}},
	GliderGun: {
		// left block
		{X: 0, Y: 4}, {X: 0, Y: 5}, {X: 1, Y: 4}, {X: 1, Y: 5},
		// left queen bee
		{X: 11, Y: 3}, {X: 12, Y: 2}, {X: 13, Y: 2},
		{X: 10, Y: 4}, {X: 10, Y: 5}, {X: 10, Y: 6},
		{X: 14, Y: 5}, {X: 15, Y: 3}, {X: 16, Y: 4}, {X: 16, Y: 5}, {X: 17, Y: 5}, {X: 16, Y: 6}, {X: 15, Y: 7},
		{X: 11, Y: 7}, {X: 12, Y: 8}, {X: 13, Y: 8},
		// right queen bee
		{X: 20, Y: 2}, {X: 20, Y: 3}, {X: 20, Y: 4}, {X: 21, Y: 2}, {X: 21, Y: 3}, {X: 21, Y: 4},
		{X: 22, Y: 1}, {X: 24, Y: 1}, {X: 24, Y: 0}, {X: 22, Y: 5}, {X: 24, Y: 5}, {X: 24, Y: 6},
		// right block
		{X: 34, Y: 2}, {X: 34, Y: 3}, {X: 35, Y: 2}, {X: 35, Y: 3},
	},
}

// MakeStamp returns a fresh buffer sized like the default grid, holding k's
// cells and positioned at (x, y).
func MakeStamp(k Kind, x, y int) *stamp.Buffer {
	return MakeStampSized(core.DefaultSize, k, x, y)
}

// MakeStampSized is MakeStamp for a buffer of an explicit size. Pattern cells
// that do not fit in the buffer are skipped.
func MakeStampSized(size core.Size, k Kind, x, y int) *stamp.Buffer {
	b := stamp.New(size, x, y)
	cells := b.Cells()
	for _, p := range catalogue[k] {
		if size.Contains(p.X, p.Y) {
			cells.Set(p.X, p.Y, core.Alive)
		}
	}
	return b
}
