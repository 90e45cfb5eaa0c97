//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter draws planned frames onto an ebiten image.
type Painter struct{}

// NewPainter constructs a Painter.
func NewPainter() *Painter { return &Painter{} }

// Draw clears dst to black and paints f on it.
func (p *Painter) Draw(dst *ebiten.Image, f Frame) {
	dst.Fill(Background)
	for _, l := range f.Lines {
		vector.StrokeLine(dst, l.X0, l.Y0, l.X1, l.Y1, 1, GridColor, false)
	}
	for _, r := range f.Cells {
		vector.DrawFilledRect(dst, r.X, r.Y, r.W, r.H, LiveColor, false)
	}
	for _, r := range f.Ghost {
		vector.DrawFilledRect(dst, r.X, r.Y, r.W, r.H, GhostColor, false)
	}
}
