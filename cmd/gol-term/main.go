package main

import (
	"log"

	"lastgol/internal/app"
	"lastgol/internal/controller"
	"lastgol/internal/term"

	"github.com/integrii/flaggy"
)

func main() {
	cfg := app.NewConfig()
	flaggy.SetName("gol-term")
	flaggy.SetDescription("Conway's Game of Life viewer for the terminal")
	cfg.Bind(flaggy.DefaultParser)
	flaggy.Parse()
	cfg.Normalize()

	ctl := controller.New(cfg.ControllerOptions())
	t, err := term.NewConsoleUI(ctl, cfg.TPS, cfg.Verbose)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	err = t.Start()
	t.Close()
	if err != nil {
		log.Fatalf("%+v", err)
	}
}
