package life

import (
	"strconv"

	"toruslife/internal/core"
)

// Engine runs Conway's Game of Life on a toroidal grid and owns the
// edit/running state machine around it.
type Engine struct {
	cfg Config

	cur  *core.Grid
	prev *core.Grid

	mode       core.Mode
	speed      int
	generation int
}

// New returns an Engine in edit mode with an all-dead grid. Out-of-range
// configuration values are clamped; use Config.Validate to reject them.
func New(cfg Config) *Engine {
	cfg = cfg.normalized()
	return &Engine{
		cfg:   cfg,
		cur:   core.NewGrid(cfg.Size),
		prev:  core.NewGrid(cfg.Size),
		mode:  core.ModeEdit,
		speed: cfg.Speed,
	}
}

// Size returns the grid side length.
func (e *Engine) Size() int { return e.cfg.Size }

// Mode returns the current interaction mode.
func (e *Engine) Mode() core.Mode { return e.mode }

// Speed returns the current rate in generations per second.
func (e *Engine) Speed() int { return e.speed }

// Generation returns the number of generations computed since the last reset.
func (e *Engine) Generation() int { return e.generation }

// Population returns the number of live cells in the current generation.
func (e *Engine) Population() int { return e.cur.Population() }

// Cell returns the current state of (x, y), wrapping the coordinates.
func (e *Engine) Cell(x, y int) core.Cell { return e.cur.Get(x, y) }

// Render copies the current generation into dst.
func (e *Engine) Render(dst []core.Cell) []core.Cell {
	cells := e.cur.Cells()
	if cap(dst) < len(cells) {
		dst = make([]core.Cell, len(cells))
	}
	dst = dst[:len(cells)]
	copy(dst, cells)
	return dst
}

// ToggleRun switches between edit and running mode.
func (e *Engine) ToggleRun() {
	if e.mode == core.ModeRunning {
		e.mode = core.ModeEdit
		return
	}
	e.mode = core.ModeRunning
}

// Reset clears the grid and returns to edit mode.
func (e *Engine) Reset() {
	e.cur.Clear()
	e.mode = core.ModeEdit
	e.generation = 0
}

// SetCell writes c at (x, y). It is ignored while running and reports
// whether the write happened.
func (e *Engine) SetCell(x, y int, c core.Cell) bool {
	if e.mode != core.ModeEdit {
		return false
	}
	e.cur.Set(x, y, c)
	return true
}

// Randomize replaces the grid with a deterministic soup. Like SetCell it is
// ignored while running.
func (e *Engine) Randomize(seed int64) bool {
	if e.mode != core.ModeEdit {
		return false
	}
	core.NewRNG(seed).FillSoup(e.cur.Cells())
	e.generation = 0
	return true
}

// AdjustSpeed adds delta to the speed, never going below the floor, and
// returns the resulting speed.
func (e *Engine) AdjustSpeed(delta int) int {
	e.speed += delta
	if e.speed < e.cfg.MinSpeed {
		e.speed = e.cfg.MinSpeed
	}
	return e.speed
}

// Step advances one generation when running and reports whether it did.
func (e *Engine) Step() bool {
	if e.mode != core.ModeRunning {
		return false
	}
	e.cur.CopyTo(e.prev)
	advance(e.prev, e.cur)
	e.generation++
	return true
}

// Tick runs one full tick: snapshot, mode and speed events, then either the
// next generation (running) or the manual edits (edit). It reports whether a
// generation was computed.
//
// Edits that precede the last reset in events are discarded.
func (e *Engine) Tick(events ...Event) bool {
	e.cur.CopyTo(e.prev)

	lastReset := -1
	for i, ev := range events {
		if ev.edits() {
			continue
		}
		e.handle(ev)
		if ev.Kind == EventReset {
			// Later events in the batch must see the cleared grid.
			e.cur.CopyTo(e.prev)
			lastReset = i
		}
	}

	if e.mode == core.ModeRunning {
		advance(e.prev, e.cur)
		e.generation++
		return true
	}
	for i, ev := range events {
		if i > lastReset && ev.edits() {
			e.handle(ev)
		}
	}
	return false
}

// Apply handles events in order without computing a generation. Frontends
// call it on frames where the pacer does not advance the simulation.
func (e *Engine) Apply(events ...Event) {
	for _, ev := range events {
		e.handle(ev)
	}
}

func (e *Engine) handle(ev Event) {
	switch ev.Kind {
	case EventToggleRun:
		e.ToggleRun()
	case EventReset:
		e.Reset()
	case EventIncreaseSpeed:
		e.AdjustSpeed(e.cfg.SpeedStep)
	case EventDecreaseSpeed:
		e.AdjustSpeed(-e.cfg.SpeedStep)
	case EventPaint:
		e.SetCell(ev.X, ev.Y, ev.Cell)
	case EventRandomize:
		e.Randomize(ev.Seed)
	}
}

// Parameters reports the values shown on the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "mode", Label: "Mode", Type: core.ParamTypeString, Value: e.mode.String()},
		intParam("speed", "Speed", e.speed),
		intParam("generation", "Generation", e.generation),
		intParam("population", "Population", e.Population()),
		intParam("size", "Grid", e.cfg.Size),
	}}
}

// ParameterControls exposes the speed as the only HUD-adjustable value.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "speed", Label: "Speed", Step: e.cfg.SpeedStep, Min: e.cfg.MinSpeed},
	}
}

// SetIntParameter routes HUD adjustments through AdjustSpeed so the floor
// still applies.
func (e *Engine) SetIntParameter(key string, value int) bool {
	if key != "speed" {
		return false
	}
	e.AdjustSpeed(value - e.speed)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

var (
	_ core.View                      = (*Engine)(nil)
	_ core.ParameterProvider         = (*Engine)(nil)
	_ core.ParameterControlsProvider = (*Engine)(nil)
	_ core.IntParameterSetter        = (*Engine)(nil)
)
