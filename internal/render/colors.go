package render

import (
	"image/color"
	"math"
)

// Colors used by the viewer, given as 0..1 float channels and converted once.
var (
	Background = color.RGBA{A: 255}
	LiveColor  = RGBAf(0.3, 0.1, 0.6, 1.0)
	GhostColor = RGBAf(0.3, 0.3, 0.3, 1.0)
	GridColor  = RGBAf(0.3, 0.3, 0.3, 1.0)
)

// RGBAf converts float channels in [0, 1] into an 8-bit color. Out of range
// channels are clamped.
func RGBAf(r, g, b, a float64) color.RGBA {
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: channel(a)}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
