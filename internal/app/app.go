//go:build ebiten

package app

import (
	"toruslife/internal/core"
	"toruslife/internal/render"
	"toruslife/internal/sims/life"
	"toruslife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Life engine to the ebiten.Game interface.
type Game struct {
	engine  *life.Engine
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.FixedStep
	seeds   *core.SeedSource

	scale     int
	pending   []life.Event
	lastMode  core.Mode
	lastSpeed int
}

// New constructs a Game for the provided engine.
func New(engine *life.Engine, cfg *Config) *Game {
	n := engine.Size()
	return &Game{
		engine:    engine,
		painter:   render.NewGridPainter(n),
		overlay:   ui.NewOverlay(n, cfg.Scale, cfg.Grid),
		hud:       ui.NewHUD(engine, ui.HUDWidth),
		pacer:     core.NewFixedStep(engine.Speed()),
		seeds:     core.NewSeedSource(cfg.Seed),
		scale:     cfg.Scale,
		lastMode:  engine.Mode(),
		lastSpeed: engine.Speed(),
	}
}

// Update polls input, feeds it to the engine and advances generations at the
// engine's speed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.pending = g.collectEvents(g.pending[:0])
	g.overlay.Update()
	g.hud.Update(g.gridPixels())

	if speed := g.engine.Speed(); speed != g.lastSpeed {
		g.pacer.SetTPS(speed)
		g.lastSpeed = speed
	}
	if g.pacer.ShouldStep() {
		g.engine.Tick(g.pending...)
		for g.pacer.ShouldStep() {
			g.engine.Step()
		}
	} else {
		g.engine.Apply(g.pending...)
	}

	if mode := g.engine.Mode(); mode != g.lastMode {
		ebiten.SetWindowTitle(Title(mode))
		g.lastMode = mode
	}
	return nil
}

func (g *Game) collectEvents(events []life.Event) []life.Event {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		events = append(events, life.ToggleRunEvent)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		events = append(events, life.ResetEvent)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		events = append(events, life.IncreaseSpeedEvent)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		events = append(events, life.DecreaseSpeedEvent)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		events = append(events, life.RandomizeEvent(g.seeds.Next()))
	}

	var paint core.Cell
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		paint = core.Alive
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		paint = core.Dead
	default:
		return events
	}
	mx, my := ebiten.CursorPosition()
	if x, y, ok := CellAt(mx, my, g.scale, g.engine.Size()); ok {
		events = append(events, life.PaintEvent(x, y, paint))
	}
	return events
}

func (g *Game) gridPixels() int { return g.engine.Size() * g.scale }

// Draw renders the current generation, grid lines and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.engine, render.AliveColor, render.DeadColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridPixels())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.gridPixels()
	return side + ui.HUDWidth, side
}
