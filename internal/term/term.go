// Package term drives a Life engine from a terminal using tcell.
package term

import (
	"fmt"
	"time"

	"toruslife/internal/core"
	"toruslife/internal/sims/life"

	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = time.Second / 30
	// cellWidth is the number of columns per cell so cells look square.
	cellWidth = 2
)

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorBlue)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	runStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

// Terminal owns the loop that feeds terminal input to an engine and draws the
// result. Only the goroutine calling Run touches the engine.
type Terminal struct {
	screen tcell.Screen
	engine *life.Engine
	pacer  *core.FixedStep
	seeds  *core.SeedSource

	cells     []core.Cell
	pending   []life.Event
	lastSpeed int
}

// New returns a Terminal drawing to an initialized screen.
func New(screen tcell.Screen, engine *life.Engine, seeds *core.SeedSource) *Terminal {
	return &Terminal{
		screen:    screen,
		engine:    engine,
		pacer:     core.NewFixedStep(engine.Speed()),
		seeds:     seeds,
		lastSpeed: engine.Speed(),
	}
}

// Run processes terminal events and advances the engine until the user quits
// or the screen stops delivering events.
func (t *Terminal) Run() error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go t.screen.ChannelEvents(events, quit)

	t.screen.EnableMouse()
	t.draw()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if t.handle(ev) {
				return nil
			}
		case <-ticker.C:
			t.frame()
		}
	}
}

// handle queues the engine events for ev and reports whether ev asks to quit.
func (t *Terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
		return false
	case *tcell.EventKey:
		next, quit := translateKey(ev, t.seeds)
		t.pending = append(t.pending, next...)
		return quit
	case *tcell.EventMouse:
		if paint, ok := translateMouse(ev, t.engine.Size()); ok {
			t.pending = append(t.pending, paint)
		}
	}
	return false
}

func translateKey(ev *tcell.EventKey, seeds *core.SeedSource) ([]life.Event, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return nil, true
	case tcell.KeyUp:
		return []life.Event{life.IncreaseSpeedEvent}, false
	case tcell.KeyDown:
		return []life.Event{life.DecreaseSpeedEvent}, false
	case tcell.KeyRune:
	default:
		return nil, false
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return nil, true
	case ' ':
		return []life.Event{life.ToggleRunEvent}, false
	case 'r', 'R':
		return []life.Event{life.ResetEvent}, false
	case '+', '=':
		return []life.Event{life.IncreaseSpeedEvent}, false
	case '-', '_':
		return []life.Event{life.DecreaseSpeedEvent}, false
	case 's', 'S':
		return []life.Event{life.RandomizeEvent(seeds.Next())}, false
	}
	return nil, false
}

// translateMouse turns a button press over the grid into a paint event.
// Presses outside the grid are dropped.
func translateMouse(ev *tcell.EventMouse, n int) (life.Event, bool) {
	var c core.Cell
	switch buttons := ev.Buttons(); {
	case buttons&tcell.Button1 != 0:
		c = core.Alive
	case buttons&tcell.Button2 != 0:
		c = core.Dead
	default:
		return life.Event{}, false
	}
	col, row := ev.Position()
	if col < 0 || row < 0 {
		return life.Event{}, false
	}
	x, y := col/cellWidth, row
	if x >= n || y >= n {
		return life.Event{}, false
	}
	return life.PaintEvent(x, y, c), true
}

// frame applies queued input, advances generations the pacer allows and
// redraws.
func (t *Terminal) frame() {
	if speed := t.engine.Speed(); speed != t.lastSpeed {
		t.pacer.SetTPS(speed)
		t.lastSpeed = speed
	}
	if t.pacer.ShouldStep() {
		t.engine.Tick(t.pending...)
		for t.pacer.ShouldStep() {
			t.engine.Step()
		}
	} else {
		t.engine.Apply(t.pending...)
	}
	t.pending = t.pending[:0]
	t.draw()
}

func (t *Terminal) draw() {
	n := t.engine.Size()
	t.cells = t.engine.Render(t.cells)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			style := deadStyle
			if t.cells[y*n+x] == core.Alive {
				style = aliveStyle
			}
			for i := 0; i < cellWidth; i++ {
				t.screen.SetContent(x*cellWidth+i, y, ' ', nil, style)
			}
		}
	}

	mode := t.engine.Mode()
	modeStyle := statusStyle
	if mode == core.ModeRunning {
		modeStyle = runStyle
	}
	col := drawText(t.screen, 0, n, modeStyle, fmt.Sprintf("%-8s", mode))
	status := fmt.Sprintf("speed %d  gen %d  pop %d", t.engine.Speed(), t.engine.Generation(), t.engine.Population())
	col = drawText(t.screen, col, n, statusStyle, status)
	clearLine(t.screen, col, n)
	help := "[space] run/edit  [r] reset  [+/-] speed  [s] soup  [q] quit"
	col = drawText(t.screen, 0, n+1, statusStyle, help)
	clearLine(t.screen, col, n+1)
	t.screen.Show()
}

func drawText(s tcell.Screen, col, row int, style tcell.Style, text string) int {
	for _, r := range text {
		s.SetContent(col, row, r, nil, style)
		col++
	}
	return col
}

func clearLine(s tcell.Screen, col, row int) {
	width, _ := s.Size()
	for ; col < width; col++ {
		s.SetContent(col, row, ' ', nil, tcell.StyleDefault)
	}
}
