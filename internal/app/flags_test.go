package app

import (
	"testing"

	"github.com/integrii/flaggy"
)

func TestDefaults(t *testing.T) {
	cfg := NewConfig()
	p := flaggy.NewParser("gol")
	cfg.Bind(p)
	if err := p.ParseArgs(nil); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.TPS != 60 || cfg.FullZoom || cfg.Parallel || cfg.HUD || cfg.Verbose || cfg.Workers != 0 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	opts := cfg.ControllerOptions()
	if opts.FullZoomRange || opts.Parallel {
		t.Fatalf("default options %+v", opts)
	}
}

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	p := flaggy.NewParser("gol")
	cfg.Bind(p)
	args := []string{"--tps", "30", "--full-zoom", "--parallel", "--workers", "3", "--hud", "--verbose"}
	if err := p.ParseArgs(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.TPS != 30 || !cfg.FullZoom || !cfg.Parallel || cfg.Workers != 3 || !cfg.HUD || !cfg.Verbose {
		t.Fatalf("parsed config %+v", cfg)
	}
	opts := cfg.ControllerOptions()
	if !opts.FullZoomRange || !opts.Parallel || opts.Workers != 3 {
		t.Fatalf("options %+v", opts)
	}
}

func TestNormalize(t *testing.T) {
	cfg := &Config{TPS: -5, Workers: -2}
	cfg.Normalize()
	if cfg.TPS != 60 || cfg.Workers != 0 {
		t.Fatalf("normalized %+v", cfg)
	}
}
