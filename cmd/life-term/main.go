package main

import (
	"flag"
	"log"

	"toruslife/internal/app"
	"toruslife/internal/core"
	"toruslife/internal/sims/life"
	"toruslife/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life-term: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	engine := life.New(cfg.Life)
	if w, h := screen.Size(); w < engine.Size()*2 || h < engine.Size()+2 {
		screen.Fini()
		log.Fatalf("terminal is %dx%d, a %d-cell grid needs at least %dx%d; pass a smaller -size",
			w, h, engine.Size(), engine.Size()*2, engine.Size()+2)
	}

	runErr := term.New(screen, engine, core.NewSeedSource(cfg.Seed)).Run()
	screen.Fini()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
