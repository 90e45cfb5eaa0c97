package term

import (
	"bytes"

	"lastgol/internal/core"
	"lastgol/internal/stamp"
)

// Viewport is the window of grid cells shown in the field view. Each cell
// takes two terminal columns.
type Viewport struct {
	X, Y int
	W, H int
}

// Follow scrolls v so that the stamp origin (sx, sy) is inside it, and keeps
// the viewport inside a grid of the given size.
func (v Viewport) Follow(sx, sy int, size core.Size) Viewport {
	if sx < v.X {
		v.X = sx
	}
	if sy < v.Y {
		v.Y = sy
	}
	if sx >= v.X+v.W {
		v.X = sx - v.W + 1
	}
	if sy >= v.Y+v.H {
		v.Y = sy - v.H + 1
	}
	v.X = max(0, min(v.X, size.W-v.W))
	v.Y = max(0, min(v.Y, size.H-v.H))
	return v
}

// Fillers are the two-column strings drawn for each kind of cell.
type Fillers struct {
	Live  string
	Ghost string
	Dead  string
}

// RenderField draws the part of g under v, with the pending stamp b (may be
// nil) shown over live and dead cells alike.
func RenderField(g *core.Grid, b *stamp.Buffer, v Viewport, f Fillers) string {
	var ghost map[core.Point]bool
	if b != nil {
		targets := b.Targets()
		ghost = make(map[core.Point]bool, len(targets))
		for _, p := range targets {
			ghost[p] = true
		}
	}

	size := g.Size()
	var buf bytes.Buffer
	for row := v.Y; row < v.Y+v.H && row < size.H; row++ {
		if row != v.Y {
			buf.WriteByte('\n')
		}
		for col := v.X; col < v.X+v.W && col < size.W; col++ {
			switch {
			case ghost[core.Point{X: col, Y: row}]:
				buf.WriteString(f.Ghost)
			case g.Alive(col, row):
				buf.WriteString(f.Live)
			default:
				buf.WriteString(f.Dead)
			}
		}
	}
	return buf.String()
}
