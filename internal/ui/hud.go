//go:build ebiten

package ui

import (
	"image/color"

	"lastgol/internal/controller"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a translucent status panel in the top-left corner.
type HUD struct {
	ctl   *controller.Controller
	pixel *ebiten.Image
}

// NewHUD constructs a HUD reading from ctl.
func NewHUD(ctl *controller.Controller) *HUD {
	h := &HUD{ctl: ctl}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Draw paints the panel over screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	lines := StatusLines(h.ctl.Parameters())
	lines = append(lines, "")
	lines = append(lines, HelpLines(h.ctl.Mode())...)

	face := basicfont.Face7x13
	width := 0
	for _, l := range lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}
	height := len(lines)*lineHeight + 2*panelPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*panelPadding), float64(height))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	screen.DrawImage(h.pixel, op)

	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	for i, l := range lines {
		text.Draw(screen, l, face, panelPadding, panelPadding+(i+1)*lineHeight-3, fg)
	}
}

const (
	panelPadding = 8
	lineHeight   = 15
)
