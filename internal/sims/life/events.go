package life

import "toruslife/internal/core"

// EventKind identifies a discrete input delivered to the engine.
type EventKind uint8

const (
	EventToggleRun EventKind = iota + 1
	EventReset
	EventIncreaseSpeed
	EventDecreaseSpeed
	EventPaint
	EventRandomize
)

// Event is a single input delivered by a frontend. X, Y and Cell are only
// read for EventPaint; Seed only for EventRandomize.
type Event struct {
	Kind EventKind
	X, Y int
	Cell core.Cell
	Seed int64
}

var (
	ToggleRunEvent     = Event{Kind: EventToggleRun}
	ResetEvent         = Event{Kind: EventReset}
	IncreaseSpeedEvent = Event{Kind: EventIncreaseSpeed}
	DecreaseSpeedEvent = Event{Kind: EventDecreaseSpeed}
)

// PaintEvent sets (x, y) to c when the engine is in edit mode.
func PaintEvent(x, y int, c core.Cell) Event {
	return Event{Kind: EventPaint, X: x, Y: y, Cell: c}
}

// RandomizeEvent fills the grid with a soup derived from seed in edit mode.
func RandomizeEvent(seed int64) Event {
	return Event{Kind: EventRandomize, Seed: seed}
}

// edits reports whether the event writes cells directly and is therefore
// gated on edit mode.
func (ev Event) edits() bool {
	return ev.Kind == EventPaint || ev.Kind == EventRandomize
}
