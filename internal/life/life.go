// Package life implements the B3/S23 generation step over a bounded grid.
//
// The field has a frozen dead frame: any cell with col == 0, row == 0,
// col >= W-2 or row >= H-2 sees no live neighbours, so a live cell there dies
// and a dead one stays dead. The frame is one cell thick on the left and top
// edges and two cells thick on the right and bottom edges.
package life

import (
	"runtime"

	"lastgol/internal/core"

	"golang.org/x/sync/errgroup"
)

// Frozen reports whether (col, row) lies in the dead frame of a w*h field.
func Frozen(col, row, w, h int) bool {
	return col == 0 || row == 0 || col >= w-2 || row >= h-2
}

// Rule applies B3/S23 to a cell with the given number of live neighbours.
func Rule(s core.CellState, neighbors int) core.CellState {
	switch s {
	case core.Dead:
		if neighbors == 3 {
			return core.Alive
		}
	case core.Alive:
		if neighbors < 2 || neighbors > 3 {
			return core.Dead
		}
	}
	return s
}

// Neighbors counts the live Moore neighbours of (col, row). Cells in the
// frozen frame always report zero.
func Neighbors(g *core.Grid, col, row int) int {
	if Frozen(col, row, g.W, g.H) {
		return 0
	}
	cells := g.Cells()
	w := g.W
	n := 0
	for dy := -1; dy <= 1; dy++ {
		base := (row+dy)*w + col
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if cells[base+dx] == core.Alive {
				n++
			}
		}
	}
	return n
}

// Step returns the next generation of cur. cur is not modified.
func Step(cur *core.Grid) *core.Grid {
	next := cur.Clone()
	stepRows(cur, next, 0, cur.H)
	return next
}

// StepParallel computes the same generation as Step, splitting rows into
// bands evaluated concurrently. workers <= 0 uses one worker per CPU.
func StepParallel(cur *core.Grid, workers int) *core.Grid {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	next := cur.Clone()

	var (
		eg          errgroup.Group
		rowsPerBand = (cur.H + workers - 1) / workers
	)
	for i := 0; i < workers; i++ {
		var (
			start = i * rowsPerBand
			end   = min(start+rowsPerBand, cur.H)
		)
		if start >= cur.H {
			break
		}
		eg.Go(func() error {
			stepRows(cur, next, start, end)
			return nil
		})
	}
	// Bands never fail; Wait only joins them.
	_ = eg.Wait()
	return next
}

// stepRows reads only from cur and writes rows [start, end) of next.
func stepRows(cur, next *core.Grid, start, end int) {
	src := cur.Cells()
	dst := next.Cells()
	for row := start; row < end; row++ {
		for col := 0; col < cur.W; col++ {
			idx := cur.Index(col, row)
			dst[idx] = Rule(src[idx], Neighbors(cur, col, row))
		}
	}
}
