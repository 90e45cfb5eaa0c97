// Package term runs the viewer inside a terminal using gocui.
package term

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"lastgol/internal/controller"
	"lastgol/internal/ui"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

type keyBinding struct {
	key  interface{}
	name string
	ctl  controller.Key
}

// ConsoleUI drives a controller from terminal key presses and a ticker.
// Every controller access happens on the gocui main loop.
type ConsoleUI struct {
	ctl     *controller.Controller
	g       *gocui.Gui
	k       []keyBinding
	tps     int
	verbose bool

	view    Viewport
	fillers Fillers
	gate    tickGate
	done    chan struct{}
}

// NewConsoleUI creates the terminal UI. Close must be called when Start
// returns.
func NewConsoleUI(ctl *controller.Controller, tps int, verbose bool) (*ConsoleUI, error) {
	if tps <= 0 {
		tps = 60
	}
	t := &ConsoleUI{
		ctl:     ctl,
		tps:     tps,
		verbose: verbose,
		fillers: Fillers{
			Live:  aurora.Magenta("██").String(),
			Ghost: "▒▒",
			Dead:  "  ",
		},
		gate: newTickGate(),
		done: make(chan struct{}),
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "create terminal ui")
	}
	t.g = g

	t.k = []keyBinding{
		{gocui.KeyPgup, "PgUp", controller.KeyPageUp},
		{gocui.KeyPgdn, "PgDn", controller.KeyPageDown},
		{'a', "a", controller.KeyA},
		{'A', "A", controller.KeyA},
		{'g', "g", controller.KeyG},
		{'G', "G", controller.KeyG},
		{'1', "1", controller.Key1},
		{'2', "2", controller.Key2},
		{'3', "3", controller.Key3},
		{gocui.KeyArrowUp, "Up", controller.KeyUp},
		{gocui.KeyArrowDown, "Down", controller.KeyDown},
		{gocui.KeyArrowLeft, "Left", controller.KeyLeft},
		{gocui.KeyArrowRight, "Right", controller.KeyRight},
		{gocui.KeySpace, "Space", controller.KeySpace},
	}

	g.SetManagerFunc(t.layout)
	if err := t.initKeyBindings(); err != nil {
		g.Close()
		return nil, err
	}
	return t, nil
}

func (t *ConsoleUI) initKeyBindings() error {
	if err := t.g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, t.cmdQuit); err != nil {
		return errors.Wrap(err, "bind quit")
	}
	for _, kb := range t.k {
		key := kb.ctl
		name := kb.name
		handler := func(_ *gocui.Gui, _ *gocui.View) error {
			before := t.ctl.Mode()
			t.ctl.OnKey(key)
			if t.verbose {
				log.Printf("key %s: mode %s -> %s, view %+v", name, before, t.ctl.Mode(), t.ctl.View())
			}
			t.refresh()
			return nil
		}
		if err := t.g.SetKeybinding("", kb.key, gocui.ModNone, handler); err != nil {
			return errors.Wrapf(err, "bind %s", kb.name)
		}
	}
	return nil
}

// Start runs the main loop until Ctrl-C.
func (t *ConsoleUI) Start() error {
	go t.tick()
	err := t.g.MainLoop()
	close(t.done)
	if err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "terminal main loop")
	}
	return nil
}

// Close restores the terminal.
func (t *ConsoleUI) Close() {
	t.g.Close()
}

// tick delivers controller ticks on the gui goroutine until Start returns.
// Ticks that arrive while one is still queued are dropped.
func (t *ConsoleUI) tick() {
	ticker := time.NewTicker(time.Second / time.Duration(t.tps))
	defer ticker.Stop()
	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			if !t.gate.acquire() {
				continue
			}
			t.g.Update(func(*gocui.Gui) error {
				t.gate.release()
				t.ctl.Tick()
				t.refresh()
				return nil
			})
		}
	}
}

func (t *ConsoleUI) refresh() {
	t.renderField()
	t.renderStatus()
	t.renderHelp()
}

func (t *ConsoleUI) renderField() {
	v, err := t.g.View("field")
	if err != nil {
		return
	}
	w, h := v.Size()
	t.view.W, t.view.H = w/2, h
	b, ok := t.ctl.Pending()
	if ok {
		x, y := b.Pos()
		t.view = t.view.Follow(x, y, t.ctl.Grid().Size())
	}
	v.Title = fmt.Sprintf("Field %d,%d", t.view.X, t.view.Y)
	v.Clear()
	_, _ = fmt.Fprint(v, RenderField(t.ctl.Grid(), b, t.view, t.fillers))
}

func (t *ConsoleUI) renderStatus() {
	v, err := t.g.View("status")
	if err != nil {
		return
	}
	v.Clear()
	for _, line := range ui.StatusLines(t.ctl.Parameters()) {
		label, value, _ := strings.Cut(line, ": ")
		_, _ = fmt.Fprintf(v, " %s: %s\n", aurora.Green(label), value)
	}
}

func (t *ConsoleUI) renderHelp() {
	v, err := t.g.View("help")
	if err != nil {
		return
	}
	v.Clear()
	var b bytes.Buffer
	b.WriteString("KEYS: ")
	for i, line := range ui.HelpLines(t.ctl.Mode()) {
		if i != 0 {
			b.WriteString(", ")
		}
		key, action, _ := strings.Cut(line, ": ")
		b.WriteString(aurora.Green(key).String())
		b.WriteString(" ")
		b.WriteString(action)
	}
	b.WriteString(", ")
	b.WriteString(aurora.Red("^C").String())
	b.WriteString(" quit")
	_, _ = fmt.Fprintln(v, b.String())
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 28

	if v, err := g.SetView("status", 0, 0, leftColumnWidth, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}
	if v, err := g.SetView("field", leftColumnWidth+1, 0, maxX-1, maxY-4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Field"
		v.Frame = true
	}
	if v, err := g.SetView("help", -1, maxY-3, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.Wrap = true
	}
	t.refresh()
	return nil
}

func (t *ConsoleUI) cmdQuit(_ *gocui.Gui, _ *gocui.View) error {
	return gocui.ErrQuit
}
