// Package input converts pointer positions into grid cells.
//
// Hosts paint playable cell (i, j) at Origin + (i, j)*CellSize and fill it
// from matrix cell (i+BorderOffset, j+BorderOffset). Map returns playable
// coordinates; Index.Matrix shifts them onto the bordered matrix so a click
// lands on the cell drawn under the pointer.
package input

import "math"

// BorderOffset is the shift from a playable coordinate to its matrix
// coordinate, equal to the border width.
const BorderOffset = 1

// Layout places the playable region on screen.
type Layout struct {
	N        int
	CellSize float64
	// OriginX and OriginY locate the top-left corner of playable cell (0, 0).
	OriginX float64
	OriginY float64
}

// Index is a playable cell coordinate in [0, N).
type Index struct {
	X int
	Y int
}

// Matrix returns the bordered matrix coordinate of the cell.
func (i Index) Matrix() (int, int) {
	return i.X + BorderOffset, i.Y + BorderOffset
}

// Map returns the playable cell under pixel (px, py). Pointers outside the
// playable region, or a non-positive cell size, are rejected.
func Map(px, py float64, l Layout) (Index, bool) {
	if l.CellSize <= 0 || l.N <= 0 {
		return Index{}, false
	}
	fx := math.Floor((px - l.OriginX) / l.CellSize)
	fy := math.Floor((py - l.OriginY) / l.CellSize)
	if math.IsNaN(fx) || math.IsNaN(fy) {
		return Index{}, false
	}
	n := float64(l.N)
	if fx < 0 || fy < 0 || fx >= n || fy >= n {
		return Index{}, false
	}
	return Index{X: int(fx), Y: int(fy)}, true
}

// CellOrigin returns the top-left pixel of playable cell (i, j).
func (l Layout) CellOrigin(i, j int) (float64, float64) {
	return l.OriginX + float64(i)*l.CellSize, l.OriginY + float64(j)*l.CellSize
}

// Extent returns the pixel side length of the playable region.
func (l Layout) Extent() float64 {
	return float64(l.N) * l.CellSize
}
