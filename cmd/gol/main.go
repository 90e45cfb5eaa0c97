package main

import (
	"fmt"
	"log"
	"os"

	"lastgol/internal/app"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

func main() {
	cfg := app.NewConfig()
	flaggy.SetName("gol")
	flaggy.SetDescription("Conway's Game of Life viewer with pattern stamping")
	cfg.Bind(flaggy.DefaultParser)
	flaggy.Parse()
	cfg.Normalize()

	err := app.Run(cfg)
	if errors.Is(err, app.ErrNoGUI) {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/gol` or use the terminal viewer `go run ./cmd/gol-term`.")
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%+v", err)
	}
}
