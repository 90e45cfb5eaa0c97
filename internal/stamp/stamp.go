// Package stamp holds a pattern preview that is positioned over the live grid
// and later committed into it.
package stamp

import (
	"lastgol/internal/core"

	"github.com/pkg/errors"
)

// ErrOffsetUnderflow is returned when a move would push an offset below zero.
var ErrOffsetUnderflow = errors.New("stamp offset would become negative")

// Buffer is a grid-shaped pattern plus the (x, y) offset it is drawn at.
// Offsets are never negative; live cells may still land outside the target
// grid, which Commit clips.
type Buffer struct {
	cells *core.Grid
	x, y  int
}

// New allocates an empty buffer of the given size positioned at (x, y).
// Negative offsets are clamped to zero.
func New(size core.Size, x, y int) *Buffer {
	return &Buffer{cells: core.NewGrid(size), x: max(x, 0), y: max(y, 0)}
}

// Cells exposes the buffer's own field in buffer-local coordinates.
func (b *Buffer) Cells() *core.Grid { return b.cells }

// Pos returns the current offset.
func (b *Buffer) Pos() (int, int) { return b.x, b.y }

// CanMove reports whether MoveBy(dx, dy) would succeed.
func (b *Buffer) CanMove(dx, dy int) bool {
	return b.x+dx >= 0 && b.y+dy >= 0
}

// MoveBy shifts the offset. The buffer is unchanged when the move fails.
func (b *Buffer) MoveBy(dx, dy int) error {
	if !b.CanMove(dx, dy) {
		return errors.Wrapf(ErrOffsetUnderflow, "move (%d,%d) from (%d,%d)", dx, dy, b.x, b.y)
	}
	b.x += dx
	b.y += dy
	return nil
}

// Targets lists the live cells translated by the offset, without clipping.
func (b *Buffer) Targets() []core.Point {
	pts := b.cells.LiveCells()
	for i := range pts {
		pts[i].X += b.x
		pts[i].Y += b.y
	}
	return pts
}

// Commit writes every live cell of b into g at its offset position. Targets
// outside g are dropped, and cells already alive in g are never cleared. It
// returns the number of cells that landed inside g.
func Commit(g *core.Grid, b *Buffer) int {
	size := g.Size()
	n := 0
	for _, p := range b.Targets() {
		if !size.Contains(p.X, p.Y) {
			continue
		}
		g.Set(p.X, p.Y, core.Alive)
		n++
	}
	return n
}
