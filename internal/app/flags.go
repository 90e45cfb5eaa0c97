package app

import (
	"lastgol/internal/controller"

	"github.com/integrii/flaggy"
)

// Config represents the command-line parameters for the application.
type Config struct {
	TPS      int
	FullZoom bool
	Parallel bool
	Workers  int
	HUD      bool
	Verbose  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{TPS: 60}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.Int(&c.TPS, "t", "tps", "ticks per second")
	p.Bool(&c.FullZoom, "z", "full-zoom", "allow zooming out to 2px cells")
	p.Bool(&c.Parallel, "p", "parallel", "step the grid with parallel workers")
	p.Int(&c.Workers, "w", "workers", "worker count for --parallel (0 = one per CPU)")
	p.Bool(&c.HUD, "u", "hud", "draw the status HUD")
	p.Bool(&c.Verbose, "", "verbose", "log handled keys")
}

// Normalize replaces invalid values with defaults.
func (c *Config) Normalize() {
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.Workers < 0 {
		c.Workers = 0
	}
}

// ControllerOptions maps the config onto controller options.
func (c *Config) ControllerOptions() controller.Options {
	return controller.Options{
		FullZoomRange: c.FullZoom,
		Parallel:      c.Parallel,
		Workers:       c.Workers,
	}
}
