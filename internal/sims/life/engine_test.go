package life

import (
	"slices"
	"testing"

	"toruslife/internal/core"
)

func TestNewEngineDefaults(t *testing.T) {
	e := New(DefaultConfig())
	if e.Mode() != core.ModeEdit {
		t.Fatalf("initial mode = %v, want Edit", e.Mode())
	}
	if e.Speed() != 10 {
		t.Fatalf("initial speed = %d, want 10", e.Speed())
	}
	if e.Size() != 50 {
		t.Fatalf("size = %d, want 50", e.Size())
	}
	if e.Population() != 0 {
		t.Fatalf("initial population = %d, want 0", e.Population())
	}
}

func TestNewClampsConfig(t *testing.T) {
	e := New(Config{Size: -3, Speed: 2, MinSpeed: 5, SpeedStep: 0})
	if e.Size() != 1 {
		t.Fatalf("size = %d, want 1", e.Size())
	}
	if e.Speed() != 5 {
		t.Fatalf("speed = %d, want clamped to floor 5", e.Speed())
	}
	e.Apply(IncreaseSpeedEvent)
	if e.Speed() != 6 {
		t.Fatalf("speed after increase = %d, want 6", e.Speed())
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero floor", func(c *Config) { c.MinSpeed = 0 }, false},
		{"zero size", func(c *Config) { c.Size = 0 }, true},
		{"negative floor", func(c *Config) { c.MinSpeed = -1 }, true},
		{"speed below floor", func(c *Config) { c.MinSpeed = 5; c.Speed = 4 }, true},
		{"zero step", func(c *Config) { c.SpeedStep = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestToggleRunKeepsGrid(t *testing.T) {
	e := New(DefaultConfig())
	e.SetCell(3, 4, core.Alive)
	before := e.Render(nil)

	e.ToggleRun()
	if e.Mode() != core.ModeRunning {
		t.Fatalf("mode = %v, want Running", e.Mode())
	}
	e.ToggleRun()
	if e.Mode() != core.ModeEdit {
		t.Fatalf("mode = %v, want Edit", e.Mode())
	}
	if !slices.Equal(before, e.Render(nil)) {
		t.Fatal("toggling modes changed the grid")
	}
}

func TestResetFromAnyState(t *testing.T) {
	for _, running := range []bool{false, true} {
		e := New(DefaultConfig())
		e.Randomize(3)
		if running {
			e.ToggleRun()
			e.Step()
		}
		for i := 0; i < 2; i++ {
			e.Reset()
			if e.Mode() != core.ModeEdit {
				t.Fatalf("running=%v: mode after reset = %v", running, e.Mode())
			}
			if e.Population() != 0 {
				t.Fatalf("running=%v: population after reset = %d", running, e.Population())
			}
			if e.Generation() != 0 {
				t.Fatalf("running=%v: generation after reset = %d", running, e.Generation())
			}
		}
	}
}

func TestSpeedFloor(t *testing.T) {
	for _, floor := range []int{0, 1, 5} {
		cfg := DefaultConfig()
		cfg.MinSpeed = floor
		e := New(cfg)
		for i := 0; i < 50; i++ {
			e.Apply(DecreaseSpeedEvent)
			if e.Speed() < floor {
				t.Fatalf("floor %d: speed dropped to %d", floor, e.Speed())
			}
		}
		if e.Speed() != floor {
			t.Fatalf("floor %d: speed settled at %d", floor, e.Speed())
		}
		if got := e.AdjustSpeed(-1000); got != floor {
			t.Fatalf("floor %d: AdjustSpeed(-1000) = %d", floor, got)
		}
	}
}

func TestSpeedStepAppliesInAnyMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpeedStep = 5
	e := New(cfg)
	e.Apply(IncreaseSpeedEvent)
	e.ToggleRun()
	e.Apply(IncreaseSpeedEvent)
	if e.Speed() != 20 {
		t.Fatalf("speed = %d, want 20", e.Speed())
	}
}

func TestPaintIgnoredWhileRunning(t *testing.T) {
	e := New(DefaultConfig())
	e.ToggleRun()
	before := e.Render(nil)

	e.Apply(PaintEvent(5, 5, core.Alive), RandomizeEvent(9))
	if e.SetCell(6, 6, core.Alive) {
		t.Fatal("SetCell reported a write while running")
	}
	if !slices.Equal(before, e.Render(nil)) {
		t.Fatal("painting while running changed the grid")
	}
}

func TestPaintWrapsCoordinates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 8
	e := New(cfg)
	e.Apply(PaintEvent(-1, 9, core.Alive))
	if e.Cell(7, 1) != core.Alive {
		t.Fatal("(-1, 9) did not wrap to (7, 1)")
	}
	e.Apply(PaintEvent(7, 1, core.Dead))
	if e.Population() != 0 {
		t.Fatalf("population = %d after erasing", e.Population())
	}
}

func TestTickInEditModeAppliesEdits(t *testing.T) {
	e := New(DefaultConfig())
	if e.Tick(PaintEvent(1, 1, core.Alive), IncreaseSpeedEvent) {
		t.Fatal("Tick computed a generation in edit mode")
	}
	if e.Cell(1, 1) != core.Alive {
		t.Fatal("paint was not applied in edit mode")
	}
	if e.Speed() != 11 {
		t.Fatalf("speed = %d, want 11", e.Speed())
	}
}

func TestTickToggleComputesFromSnapshot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 5
	e := New(cfg)
	for _, x := range []int{1, 2, 3} {
		e.SetCell(x, 2, core.Alive)
	}
	// The paint is dropped: once the toggle switches to running the tick
	// computes the next generation instead of applying edits.
	if !e.Tick(ToggleRunEvent, PaintEvent(0, 0, core.Alive)) {
		t.Fatal("Tick did not compute a generation after toggling to running")
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := x == 2 && y >= 1 && y <= 3
			if got := e.Cell(x, y) == core.Alive; got != want {
				t.Fatalf("cell (%d,%d) alive=%v, want %v", x, y, got, want)
			}
		}
	}
}

func TestTickDropsEditsBeforeReset(t *testing.T) {
	e := New(DefaultConfig())
	e.Tick(PaintEvent(1, 1, core.Alive), ResetEvent, PaintEvent(2, 2, core.Alive))
	if e.Cell(1, 1) != core.Dead {
		t.Fatal("edit issued before reset survived")
	}
	if e.Cell(2, 2) != core.Alive {
		t.Fatal("edit issued after reset was lost")
	}
}

func TestTickResetThenToggleStartsFromClearedGrid(t *testing.T) {
	e := runningEngine(t, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	if !e.Tick(ResetEvent, ToggleRunEvent) {
		t.Fatal("Tick did not compute a generation after toggling back to running")
	}
	if e.Mode() != core.ModeRunning {
		t.Fatalf("mode = %v, want Running", e.Mode())
	}
	if e.Population() != 0 {
		t.Fatalf("population = %d after reset, want 0", e.Population())
	}
	if e.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", e.Generation())
	}
}

func TestRandomizeIsDeterministic(t *testing.T) {
	a := New(DefaultConfig())
	b := New(DefaultConfig())
	a.Randomize(42)
	b.Apply(RandomizeEvent(42))
	if !slices.Equal(a.Render(nil), b.Render(nil)) {
		t.Fatal("same seed produced different soups")
	}
	if a.Population() == 0 {
		t.Fatal("soup has no live cells")
	}
}

func TestRenderReusesBuffer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 4
	e := New(cfg)
	e.SetCell(0, 0, core.Alive)

	buf := make([]core.Cell, 0, 16)
	out := e.Render(buf)
	if len(out) != 16 || &out[0] != &buf[:1][0] {
		t.Fatal("Render did not reuse a buffer with enough capacity")
	}
	out[0] = core.Dead
	if e.Cell(0, 0) != core.Alive {
		t.Fatal("mutating the rendered copy changed the engine")
	}
}

func TestParametersAndSpeedControl(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinSpeed = 5
	e := New(cfg)
	e.ToggleRun()

	snap := e.Parameters()
	if p, ok := snap.Lookup("mode"); !ok || p.Value != "Running" {
		t.Fatalf("mode parameter = %+v, %v", p, ok)
	}
	if p, ok := snap.Lookup("speed"); !ok || p.Value != "10" {
		t.Fatalf("speed parameter = %+v, %v", p, ok)
	}

	controls := e.ParameterControls()
	if len(controls) != 1 || controls[0].Key != "speed" || controls[0].Min != 5 {
		t.Fatalf("unexpected controls %+v", controls)
	}

	if !e.SetIntParameter("speed", 2) {
		t.Fatal("SetIntParameter rejected speed")
	}
	if e.Speed() != 5 {
		t.Fatalf("speed = %d, want floor 5", e.Speed())
	}
	if e.SetIntParameter("size", 10) {
		t.Fatal("SetIntParameter accepted a fixed parameter")
	}
}
