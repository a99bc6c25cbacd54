package core

// Mode is the interaction state of a simulation.
type Mode uint8

const (
	// ModeEdit pauses the simulation and allows painting cells.
	ModeEdit Mode = iota
	// ModeRunning advances generations automatically; painting is disabled.
	ModeRunning
)

// String returns the label shown in window titles and status lines.
func (m Mode) String() string {
	if m == ModeRunning {
		return "Running"
	}
	return "Edit"
}

// View is the read-only surface a frontend draws from.
type View interface {
	Size() int
	Cell(x, y int) Cell
	// Render copies the current generation into dst, growing it if needed,
	// and returns the filled slice.
	Render(dst []Cell) []Cell
	Mode() Mode
	Speed() int
	Generation() int
	Population() int
}
