//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"toruslife/internal/app"
	"toruslife/internal/sims/life"
	"toruslife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	engine := life.New(cfg.Life)
	game := app.New(engine, cfg)
	side := engine.Size() * cfg.Scale

	ebiten.SetWindowTitle(app.Title(engine.Mode()))
	ebiten.SetWindowSize(side+ui.HUDWidth, side)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
