// Package controller owns the viewer state: the live grid, the optional
// pending stamp and the view settings. Hosts feed it ticks and key presses and
// read it back when drawing.
package controller

import (
	"fmt"

	"lastgol/internal/core"
	"lastgol/internal/life"
	"lastgol/internal/patterns"
	"lastgol/internal/stamp"
)

// Divisors is the table of cell sizes in pixels, indexed by zoom.
var Divisors = [...]int{2, 4, 5, 8, 10, 20, 25, 40, 50, 100, 200}

const (
	// InitialZoomIndex selects 4px cells.
	InitialZoomIndex = 1
	// minZoomIndex is the zoom floor unless Options.FullZoomRange is set.
	minZoomIndex = 1
)

// Mode is the top-level input mode.
type Mode uint8

const (
	// ModeFree has no pending stamp; Space steps the simulation.
	ModeFree Mode = iota
	// ModeStamp has a pending stamp; arrows move it and Space commits it.
	ModeStamp
)

func (m Mode) String() string {
	if m == ModeStamp {
		return "stamp"
	}
	return "free"
}

// ViewSettings are the display toggles driven by input.
type ViewSettings struct {
	ZoomIndex   int
	DisplayGrid bool
	AutoStep    bool
}

// Options configure a Controller.
type Options struct {
	// FullZoomRange lets zoom out reach index 0 (2px cells).
	FullZoomRange bool
	// Parallel selects the row-banded stepper.
	Parallel bool
	// Workers bounds the parallel stepper; zero means one per CPU.
	Workers int
}

// Controller binds the grid, the pending stamp and the view settings.
type Controller struct {
	opts Options

	grid        *core.Grid
	pending     *stamp.Buffer
	pendingKind patterns.Kind
	view        ViewSettings
	generation  uint64
}

// New returns a controller with an empty default-sized grid in free mode.
func New(opts Options) *Controller {
	return &Controller{
		opts: opts,
		grid: core.NewGrid(core.DefaultSize),
		view: ViewSettings{ZoomIndex: InitialZoomIndex, DisplayGrid: true},
	}
}

// Grid exposes the live grid. Callers must treat it as read-only.
func (c *Controller) Grid() *core.Grid { return c.grid }

// Pending returns the stamp being placed, if any.
func (c *Controller) Pending() (*stamp.Buffer, bool) { return c.pending, c.pending != nil }

// PendingKind returns the structure of the pending stamp, if any.
func (c *Controller) PendingKind() (patterns.Kind, bool) { return c.pendingKind, c.pending != nil }

// View returns the current view settings.
func (c *Controller) View() ViewSettings { return c.view }

// Mode reports whether a stamp is pending.
func (c *Controller) Mode() Mode {
	if c.pending != nil {
		return ModeStamp
	}
	return ModeFree
}

// Generation counts the steps applied since startup.
func (c *Controller) Generation() uint64 { return c.generation }

// CellSize is the pixel size of a cell at the current zoom.
func (c *Controller) CellSize() int { return Divisors[c.view.ZoomIndex] }

// ShowGrid reports whether the grid overlay is enabled.
func (c *Controller) ShowGrid() bool { return c.view.DisplayGrid }

// Tick runs one generation when auto step is on.
func (c *Controller) Tick() {
	if c.view.AutoStep {
		c.step()
	}
}

// OnKey applies a key press. Keys shared by both modes are handled first,
// then the mode-specific keys.
func (c *Controller) OnKey(k Key) {
	switch k {
	case KeyPageUp:
		c.ZoomIn()
		return
	case KeyPageDown:
		c.ZoomOut()
		return
	case KeyA:
		c.ToggleAutoStep()
		return
	case KeyG:
		c.ToggleDisplayGrid()
		return
	case Key1, Key2, Key3:
		c.StartStamp(patterns.Kinds[k-Key1])
		return
	}

	switch c.Mode() {
	case ModeFree:
		c.onFreeKey(k)
	case ModeStamp:
		c.onStampKey(k)
	}
}

func (c *Controller) onFreeKey(k Key) {
	if k == KeySpace && !c.view.AutoStep {
		c.step()
	}
}

func (c *Controller) onStampKey(k Key) {
	switch k {
	case KeyUp:
		c.MoveStamp(0, -1)
	case KeyDown:
		c.MoveStamp(0, 1)
	case KeyLeft:
		c.MoveStamp(-1, 0)
	case KeyRight:
		c.MoveStamp(1, 0)
	case KeySpace:
		c.CommitStamp()
	}
}

// ZoomIn selects the next larger cell size, stopping at the last divisor.
func (c *Controller) ZoomIn() {
	if c.view.ZoomIndex < len(Divisors)-1 {
		c.view.ZoomIndex++
	}
}

// ZoomOut selects the next smaller cell size, stopping at index 1 (or 0 with
// FullZoomRange).
func (c *Controller) ZoomOut() {
	floor := minZoomIndex
	if c.opts.FullZoomRange {
		floor = 0
	}
	if c.view.ZoomIndex > floor {
		c.view.ZoomIndex--
	}
}

// ToggleAutoStep flips auto stepping.
func (c *Controller) ToggleAutoStep() { c.view.AutoStep = !c.view.AutoStep }

// ToggleDisplayGrid flips the grid overlay.
func (c *Controller) ToggleDisplayGrid() { c.view.DisplayGrid = !c.view.DisplayGrid }

// StartStamp enters stamp mode with a fresh k stamp. A replaced stamp hands
// its offset to the new one; otherwise the stamp starts at (0, 0). Unknown
// kinds are ignored.
func (c *Controller) StartStamp(k patterns.Kind) {
	if !k.Valid() {
		return
	}
	x, y := 0, 0
	if c.pending != nil {
		x, y = c.pending.Pos()
	}
	c.pending = patterns.MakeStamp(k, x, y)
	c.pendingKind = k
}

// MoveStamp shifts the pending stamp. Moves past the top or left edge are
// dropped. It reports whether the stamp moved.
func (c *Controller) MoveStamp(dx, dy int) bool {
	if c.pending == nil || !c.pending.CanMove(dx, dy) {
		return false
	}
	return c.pending.MoveBy(dx, dy) == nil
}

// CommitStamp stamps the pending pattern into the grid and returns to free
// mode. It reports whether a stamp was committed.
func (c *Controller) CommitStamp() bool {
	if c.pending == nil {
		return false
	}
	stamp.Commit(c.grid, c.pending)
	c.pending = nil
	return true
}

func (c *Controller) step() {
	if c.opts.Parallel {
		c.grid = life.StepParallel(c.grid, c.opts.Workers)
	} else {
		c.grid = life.Step(c.grid)
	}
	c.generation++
}

// Parameters snapshots the state for status panels.
func (c *Controller) Parameters() core.ParameterSnapshot {
	pattern, offset := "-", "-"
	if c.pending != nil {
		x, y := c.pending.Pos()
		pattern = c.pendingKind.String()
		offset = fmt.Sprintf("%d,%d", x, y)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				core.Uint64Param("generation", "Generation", c.generation),
				core.IntParam("population", "Population", c.grid.Population()),
				core.BoolParam("auto_step", "Auto step", c.view.AutoStep),
			},
		},
		{
			Name: "Stamp",
			Params: []core.Parameter{
				core.StringParam("mode", "Mode", c.Mode().String()),
				core.StringParam("pattern", "Pattern", pattern),
				core.StringParam("offset", "Offset", offset),
			},
		},
		{
			Name: "View",
			Params: []core.Parameter{
				core.IntParam("zoom", "Zoom", c.view.ZoomIndex),
				core.IntParam("cell_size", "Cell size", c.CellSize()),
				core.BoolParam("grid", "Grid", c.view.DisplayGrid),
			},
		},
	}}
}
