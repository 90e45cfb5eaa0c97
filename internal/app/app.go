//go:build ebiten

package app

import (
	"log"

	"lastgol/internal/controller"
	"lastgol/internal/render"
	"lastgol/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
)

// keymap is scanned in order each frame.
var keymap = []struct {
	native ebiten.Key
	key    controller.Key
}{
	{ebiten.KeyPageUp, controller.KeyPageUp},
	{ebiten.KeyPageDown, controller.KeyPageDown},
	{ebiten.KeyA, controller.KeyA},
	{ebiten.KeyG, controller.KeyG},
	{ebiten.KeyDigit1, controller.Key1},
	{ebiten.KeyDigit2, controller.Key2},
	{ebiten.KeyDigit3, controller.Key3},
	{ebiten.KeyArrowUp, controller.KeyUp},
	{ebiten.KeyArrowDown, controller.KeyDown},
	{ebiten.KeyArrowLeft, controller.KeyLeft},
	{ebiten.KeyArrowRight, controller.KeyRight},
	{ebiten.KeySpace, controller.KeySpace},
}

// Game adapts the controller to the ebiten.Game interface.
type Game struct {
	ctl     *controller.Controller
	painter *render.Painter
	hud     *ui.HUD
	verbose bool
}

// New constructs a Game from the configuration.
func New(cfg *Config) *Game {
	g := &Game{
		ctl:     controller.New(cfg.ControllerOptions()),
		painter: render.NewPainter(),
		verbose: cfg.Verbose,
	}
	if cfg.HUD {
		g.hud = ui.NewHUD(g.ctl)
	}
	return g
}

// Run opens the window and blocks until it is closed.
func Run(cfg *Config) error {
	ebiten.SetWindowTitle("Last Game of Life")
	ebiten.SetWindowSize(render.ScreenW, render.ScreenH)
	ebiten.SetTPS(cfg.TPS)

	err := ebiten.RunGame(New(cfg))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run game")
	}
	return nil
}

// Update handles key presses, then advances the simulation when auto step is on.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, m := range keymap {
		if !inpututil.IsKeyJustPressed(m.native) {
			continue
		}
		before := g.ctl.Mode()
		g.ctl.OnKey(m.key)
		if g.verbose {
			log.Printf("key %s: mode %s -> %s, view %+v", m.key, before, g.ctl.Mode(), g.ctl.View())
		}
	}
	g.ctl.Tick()
	return nil
}

// Draw renders the current controller state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, render.Plan(g.ctl))
	if g.hud != nil {
		g.hud.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.ScreenW, render.ScreenH
}
