//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lifegrid/internal/core"
	"lifegrid/internal/input"
)

// GridPainter uploads the playable cells into a one-pixel-per-cell image and
// scales it onto the screen, then overlays grid lines.
type GridPainter struct {
	n       int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewGridPainter allocates a painter for an n*n playable region.
func NewGridPainter(n int, palette Palette) *GridPainter {
	if n <= 0 {
		n = 1
	}
	return &GridPainter{
		n:       n,
		img:     ebiten.NewImage(n, n),
		buf:     make([]byte, 4*n*n),
		palette: palette,
	}
}

// Draw paints v at the position described by l.
func (gp *GridPainter) Draw(dst *ebiten.Image, v core.View, l input.Layout) {
	if v.N != gp.n {
		return
	}
	fillViewRGBA(gp.buf, v, gp.palette.Alive, gp.palette.Dead)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(l.CellSize, l.CellSize)
	op.GeoM.Translate(l.OriginX, l.OriginY)
	dst.DrawImage(gp.img, op)

	for _, s := range gridLines(l) {
		vector.StrokeLine(dst, s.X0, s.Y0, s.X1, s.Y1, 1, gp.palette.Line, false)
	}
}

// Size returns the playable size the painter was built for.
func (gp *GridPainter) Size() int { return gp.n }
