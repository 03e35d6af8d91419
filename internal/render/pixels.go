// Package render paints a grid view. The conversion helpers here are pure;
// the ebiten painter lives behind the ebiten build tag.
package render

import (
	"image/color"

	"lifegrid/internal/core"
	"lifegrid/internal/input"
)

// Palette holds the colours used to paint cells and grid lines.
type Palette struct {
	Alive color.Color
	Dead  color.Color
	Line  color.Color
}

// DefaultPalette paints alive cells red on black with white grid lines.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{R: 255, A: 255},
		Dead:  color.Black,
		Line:  color.White,
	}
}

// fillViewRGBA converts the playable cells of v into RGBA pixels in buf, one
// pixel per cell in row-major order. Border cells are skipped. buf must hold
// 4*N*N bytes.
func fillViewRGBA(buf []byte, v core.View, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for j := 0; j < v.N; j++ {
		for i := 0; i < v.N; i++ {
			base := (j*v.N + i) * 4
			if v.Playable(i, j) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}

// segment is a line from (X0, Y0) to (X1, Y1) in screen pixels.
type segment struct {
	X0, Y0, X1, Y1 float32
}

// gridLines returns the N+1 vertical and N+1 horizontal lines bounding the
// playable cells of l.
func gridLines(l input.Layout) []segment {
	if l.N <= 0 {
		return nil
	}
	ox, oy := float32(l.OriginX), float32(l.OriginY)
	ext := float32(l.Extent())
	lines := make([]segment, 0, 2*(l.N+1))
	for i := 0; i <= l.N; i++ {
		off := float32(float64(i) * l.CellSize)
		lines = append(lines, segment{X0: ox + off, Y0: oy, X1: ox + off, Y1: oy + ext})
	}
	for j := 0; j <= l.N; j++ {
		off := float32(float64(j) * l.CellSize)
		lines = append(lines, segment{X0: ox, Y0: oy + off, X1: ox + ext, Y1: oy + off})
	}
	return lines
}
