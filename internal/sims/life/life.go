package life

import "toruslife/internal/core"

// nextState applies Conway's rule to a cell with the given live neighbor count.
func nextState(prev core.Cell, neighbors int) core.Cell {
	if neighbors == 3 || (neighbors == 2 && prev == core.Alive) {
		return core.Alive
	}
	return core.Dead
}

// neighbors counts the live cells around (x, y), wrapping every coordinate.
func neighbors(g *core.Grid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			count += int(g.Get(x+dx, y+dy))
		}
	}
	return count
}

// interiorNeighbors reads the 3×3 block around (x, y) directly. The caller
// guarantees 1 <= x, y < n-1.
func interiorNeighbors(cells []core.Cell, n, x, y int) int {
	above := (y-1)*n + x
	row := y*n + x
	below := (y+1)*n + x
	return int(cells[above-1]) + int(cells[above]) + int(cells[above+1]) +
		int(cells[row-1]) + int(cells[row+1]) +
		int(cells[below-1]) + int(cells[below]) + int(cells[below+1])
}

// advance writes into cur the generation that follows prev. prev is only read.
func advance(prev, cur *core.Grid) {
	n := prev.Size()
	src := prev.Cells()
	dst := cur.Cells()
	for y := 0; y < n; y++ {
		border := y == 0 || y == n-1
		for x := 0; x < n; x++ {
			idx := y*n + x
			var count int
			if border || x == 0 || x == n-1 {
				count = neighbors(prev, x, y)
			} else {
				count = interiorNeighbors(src, n, x, y)
			}
			dst[idx] = nextState(src[idx], count)
		}
	}
}
