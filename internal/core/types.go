package core

// Size describes the dimensions of a grid in cells.
type Size struct {
	W int
	H int
}

// View is the read-only picture of the grid handed to renderers. Alive takes
// matrix coordinates; Playable takes coordinates relative to the border.
type View struct {
	N      int
	Border int
	Alive  func(x, y int) bool
}

// Size returns the playable dimensions.
func (v View) Size() Size { return Size{W: v.N, H: v.N} }

// Playable reports whether playable cell (i, j) is alive.
func (v View) Playable(i, j int) bool {
	return v.Alive(i+v.Border, j+v.Border)
}

// ViewOf wraps g in a View with a one-cell border.
func ViewOf(g *Grid) View {
	return View{N: g.N(), Border: 1, Alive: g.Get}
}
