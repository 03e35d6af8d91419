// Package rules implements Conway's Game of Life transition on a bounded
// grid. Positions outside the matrix are absent: they contribute nothing to
// a neighbor count and nothing wraps around.
package rules

import "lifegrid/internal/core"

// Apply returns the next state of a cell: survival on 2 or 3 neighbors,
// birth on exactly 3.
func Apply(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// CountNeighbors counts alive cells in the Moore neighborhood of (x, y),
// skipping positions outside the matrix.
func CountNeighbors(g *core.Grid, x, y int) int {
	side := g.Side()
	cells := g.Cells()

	minX, maxX := max(0, x-1), min(side-1, x+1)
	minY, maxY := max(0, y-1), min(side-1, y+1)

	count := 0
	for ny := minY; ny <= maxY; ny++ {
		row := ny * side
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if cells[row+nx] {
				count++
			}
		}
	}
	return count
}

// Next writes the generation following src into dst and returns its
// population. Every cell of the matrix evolves, border included. dst must
// have the same dimensions as src and must not be src.
func Next(dst, src *core.Grid) int {
	if dst.Side() != src.Side() {
		panic("rules: grid size mismatch")
	}
	if dst == src {
		panic("rules: in-place step")
	}
	side := src.Side()
	in := src.Cells()
	out := dst.Cells()

	population := 0
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			idx := y*side + x
			alive := Apply(in[idx], CountNeighbors(src, x, y))
			out[idx] = alive
			if alive {
				population++
			}
		}
	}
	return population
}

// Step returns a freshly allocated next generation of g.
func Step(g *core.Grid) *core.Grid {
	next := core.NewGrid(g.N())
	Next(next, g)
	return next
}
