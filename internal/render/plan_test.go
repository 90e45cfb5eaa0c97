package render

import (
	"image/color"
	"testing"

	"lastgol/internal/controller"
	"lastgol/internal/core"
)

func TestColors(t *testing.T) {
	if LiveColor != (color.RGBA{R: 77, G: 26, B: 153, A: 255}) {
		t.Fatalf("live color = %+v", LiveColor)
	}
	if GhostColor != (color.RGBA{R: 77, G: 77, B: 77, A: 255}) {
		t.Fatalf("ghost color = %+v", GhostColor)
	}
	if got := RGBAf(-1, 2, 0.5, 1); got != (color.RGBA{R: 0, G: 255, B: 128, A: 255}) {
		t.Fatalf("clamped color = %+v", got)
	}
}

func TestPlanLiveCells(t *testing.T) {
	c := controller.New(controller.Options{})
	c.Grid().Set(0, 0, core.Alive)
	c.Grid().Set(3, 2, core.Alive)

	f := Plan(c)
	want := []Rect{
		{X: -1, Y: -1, W: 5, H: 5},
		{X: 11, Y: 7, W: 5, H: 5},
	}
	if len(f.Cells) != len(want) {
		t.Fatalf("got %d cell rects, want %d", len(f.Cells), len(want))
	}
	for i := range want {
		if f.Cells[i] != want[i] {
			t.Fatalf("rect %d = %+v, want %+v", i, f.Cells[i], want[i])
		}
	}
	if len(f.Ghost) != 0 {
		t.Fatal("no stamp pending, ghost must be empty")
	}
}

func TestPlanGhostUsesOffset(t *testing.T) {
	c := controller.New(controller.Options{})
	c.OnKey(controller.Key1)
	c.OnKey(controller.KeyRight)
	c.OnKey(controller.KeyDown)
	c.OnKey(controller.KeyDown)

	f := Plan(c)
	if len(f.Ghost) != 3 {
		t.Fatalf("got %d ghost rects, want 3", len(f.Ghost))
	}
	first := f.Ghost[0]
	if first != (Rect{X: 3, Y: 7, W: 5, H: 5}) {
		t.Fatalf("first ghost rect = %+v", first)
	}
	if len(f.Cells) != 0 {
		t.Fatal("ghost cells must not show up as live cells")
	}
}

func TestPlanGridLines(t *testing.T) {
	c := controller.New(controller.Options{})
	f := Plan(c)
	// 4px cells: a line every 2px.
	if want := ScreenH/2 + ScreenW/2; len(f.Lines) != want {
		t.Fatalf("got %d lines, want %d", len(f.Lines), want)
	}
	if f.Lines[1] != (Line{X0: 0, Y0: 2, X1: ScreenW, Y1: 2}) {
		t.Fatalf("second line = %+v", f.Lines[1])
	}

	c.OnKey(controller.KeyG)
	if f := Plan(c); len(f.Lines) != 0 {
		t.Fatalf("grid disabled but %d lines planned", len(f.Lines))
	}
}

func TestPlanGridStepAtOddZoom(t *testing.T) {
	c := controller.New(controller.Options{})
	c.OnKey(controller.KeyPageUp) // 5px cells
	f := Plan(c)
	if f.Lines[1].Y0 != 2 {
		t.Fatalf("5px cells should draw lines every 2px, got %v", f.Lines[1].Y0)
	}
}

func TestPlanSkipsOffscreenCells(t *testing.T) {
	c := controller.New(controller.Options{})
	for i := 0; i < 4; i++ {
		c.OnKey(controller.KeyPageUp) // 20px cells
	}
	c.Grid().Set(39, 10, core.Alive)
	c.Grid().Set(41, 10, core.Alive)
	c.Grid().Set(10, 31, core.Alive)

	f := Plan(c)
	if len(f.Cells) != 1 {
		t.Fatalf("expected only the visible cell, got %+v", f.Cells)
	}
	if f.Cells[0].X != 779 {
		t.Fatalf("visible cell at x=%v", f.Cells[0].X)
	}
}
