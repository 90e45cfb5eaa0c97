package render

import (
	"lastgol/internal/core"
	"lastgol/internal/stamp"
)

const (
	// ScreenW and ScreenH are the logical window size in pixels.
	ScreenW = 800
	ScreenH = 600
)

// Scene is the read-only view of the viewer state a frame is planned from.
type Scene interface {
	Grid() *core.Grid
	Pending() (*stamp.Buffer, bool)
	CellSize() int
	ShowGrid() bool
}

// Rect is an axis-aligned filled rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float32
}

// Line is a 1px segment in screen pixels.
type Line struct {
	X0, Y0, X1, Y1 float32
}

// Frame lists everything drawn on top of the black background, in order:
// overlay lines, live cells, then the ghost of the pending stamp.
type Frame struct {
	Lines []Line
	Cells []Rect
	Ghost []Rect
}

// Plan computes the frame for s.
func Plan(s Scene) Frame {
	var f Frame
	size := s.CellSize()
	if size <= 0 {
		size = 1
	}
	if s.ShowGrid() {
		f.Lines = gridLines(size)
	}
	for _, p := range s.Grid().LiveCells() {
		if r, ok := cellRect(p.X, p.Y, size); ok {
			f.Cells = append(f.Cells, r)
		}
	}
	if b, ok := s.Pending(); ok {
		for _, p := range b.Targets() {
			if r, ok := cellRect(p.X, p.Y, size); ok {
				f.Ghost = append(f.Ghost, r)
			}
		}
	}
	return f
}

// gridLines places horizontal and vertical lines every size/2 pixels.
func gridLines(size int) []Line {
	step := size / 2
	if step <= 0 {
		step = 1
	}
	var lines []Line
	for y := 0; y < ScreenH; y += step {
		lines = append(lines, Line{X0: 0, Y0: float32(y), X1: ScreenW, Y1: float32(y)})
	}
	for x := 0; x < ScreenW; x += step {
		lines = append(lines, Line{X0: float32(x), Y0: 0, X1: float32(x), Y1: ScreenH})
	}
	return lines
}

// cellRect returns the (size+1) square drawn for (col, row), overlapping its
// neighbours by a pixel. Rects entirely off screen are reported as not visible.
func cellRect(col, row, size int) (Rect, bool) {
	x := col*size - 1
	y := row*size - 1
	if x >= ScreenW || y >= ScreenH {
		return Rect{}, false
	}
	return Rect{X: float32(x), Y: float32(y), W: float32(size + 1), H: float32(size + 1)}, true
}
