package app

import (
	"lifegrid/internal/config"
	"lifegrid/internal/input"
	"lifegrid/internal/ui"
)

// Frame positions the grid and the HUD inside the window.
type Frame struct {
	Grid   input.Layout
	HUDX   int
	HUDY   int
	Width  int
	Height int
}

// NewFrame lays out an n*n grid of cellSize pixels with the HUD below it.
func NewFrame(n, cellSize int, win config.WindowConfig) Frame {
	m := win.Margin
	extent := n * cellSize
	f := Frame{
		Grid: input.Layout{
			N:        n,
			CellSize: float64(cellSize),
			OriginX:  float64(m),
			OriginY:  float64(m),
		},
		HUDX: m,
		HUDY: m + extent + m,
	}
	bar := ui.LayoutBar(f.HUDX, f.HUDY)
	hudHeight := max(win.HUDHeight, bar.Height())
	f.Width = max(extent, bar.MinWidth()) + 2*m
	f.Height = f.HUDY + hudHeight + m
	return f
}
