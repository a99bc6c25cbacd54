package app

import "toruslife/internal/core"

const titlePrefix = "Game of Life - "

// Title returns the window title for the given mode.
func Title(m core.Mode) string { return titlePrefix + m.String() }

// CellAt converts a pointer position in window pixels into grid coordinates.
// Positions outside the n×n grid report ok=false rather than wrapping onto
// the opposite edge.
func CellAt(px, py, scale, n int) (x, y int, ok bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	if x >= n || y >= n {
		return 0, 0, false
	}
	return x, y, true
}
