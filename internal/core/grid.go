package core

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// String returns a human readable state name.
func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Grid stores an N×N toroidal grid of cells in row-major order.
type Grid struct {
	n    int
	data []Cell
}

// NewGrid allocates an all-dead grid with side length n.
func NewGrid(n int) *Grid {
	if n <= 0 {
		n = 1
	}
	return &Grid{n: n, data: make([]Cell, n*n)}
}

// Size returns the side length of the grid.
func (g *Grid) Size() int { return g.n }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.n + g.n) % g.n
	y = (y%g.n + g.n) % g.n
	return x, y
}

// Index returns the linear slice index for (x, y) after wrapping.
func (g *Grid) Index(x, y int) int {
	x, y = g.Wrap(x, y)
	return y*g.n + x
}

// Get returns the cell at (x, y). Any integer coordinate is accepted.
func (g *Grid) Get(x, y int) Cell { return g.data[g.Index(x, y)] }

// Set stores c at (x, y). Any integer coordinate is accepted.
func (g *Grid) Set(x, y int, c Cell) { g.data[g.Index(x, y)] = c }

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// CopyTo overwrites dst with the contents of g. Both grids must share the
// same size; a smaller dst only receives its leading cells.
func (g *Grid) CopyTo(dst *Grid) {
	copy(dst.data, g.data)
}

// Population counts the live cells.
func (g *Grid) Population() int {
	total := 0
	for _, c := range g.data {
		total += int(c)
	}
	return total
}
