package core

// Grid stores a square boolean cell matrix of side N+2 in row-major order.
// The outer ring of cells is the border: it evolves with the rest of the
// matrix but is never painted or clicked directly.
type Grid struct {
	n    int
	side int
	data []bool
}

// NewGrid allocates an all-dead grid with n playable cells per side.
func NewGrid(n int) *Grid {
	if n <= 0 {
		n = 1
	}
	side := n + 2
	return &Grid{n: n, side: side, data: make([]bool, side*side)}
}

// N returns the playable size.
func (g *Grid) N() int { return g.n }

// Side returns the matrix side length including the border.
func (g *Grid) Side() int { return g.side }

// Cells exposes the backing slice so callers can read values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.side + x }

// InBounds reports whether (x, y) addresses a matrix cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.side && y >= 0 && y < g.side
}

// Get reads the cell at (x, y). Coordinates outside the matrix panic.
func (g *Grid) Get(x, y int) bool {
	if !g.InBounds(x, y) {
		panic("core: grid index out of range")
	}
	return g.data[g.Index(x, y)]
}

// Set writes the cell at (x, y); out-of-range writes are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[g.Index(x, y)] = alive
}

// Toggle flips the cell at (x, y); out-of-range toggles are ignored.
func (g *Grid) Toggle(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	i := g.Index(x, y)
	g.data[i] = !g.data[i]
}

// Clear kills every cell without changing dimensions.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// Resize replaces the matrix with an all-dead one of playable size n.
func (g *Grid) Resize(n int) {
	*g = *NewGrid(n)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{n: g.n, side: g.side, data: make([]bool, len(g.data))}
	copy(c.data, g.data)
	return c
}

// CopyFrom overwrites g with the contents of src, adopting its dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	if len(g.data) != len(src.data) {
		g.data = make([]bool, len(src.data))
	}
	g.n, g.side = src.n, src.side
	copy(g.data, src.data)
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.side != other.side {
		return false
	}
	for i, v := range g.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// Population counts alive cells across the whole matrix, border included.
func (g *Grid) Population() int {
	count := 0
	for _, v := range g.data {
		if v {
			count++
		}
	}
	return count
}
