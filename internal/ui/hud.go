//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Stats is the read-only part of the engine shown next to the controls.
type Stats interface {
	StatusLabel() string
	Generation() uint64
	Population() int
}

// HUD renders the control strip below the grid and routes clicks on it.
type HUD struct {
	bar   Bar
	ctl   Controls
	stats Stats
	pixel *ebiten.Image
}

// NewHUD lays out the controls with their top-left corner at (x, y).
func NewHUD(ctl Controls, stats Stats, x, y int) *HUD {
	h := &HUD{bar: LayoutBar(x, y), ctl: ctl, stats: stats}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Bar exposes the layout for sizing the window.
func (h *HUD) Bar() Bar { return h.bar }

// Update handles a click on the HUD. It reports whether the click was
// consumed so the caller does not forward it to the grid.
func (h *HUD) Update() bool {
	if h == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	action := h.bar.HitTest(mx, my)
	if action == ActionNone {
		return false
	}
	if Enabled(action, h.ctl) {
		Apply(action, h.ctl)
	}
	return true
}

// Draw paints the buttons, status label and statistics.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	face := basicfont.Face7x13
	for _, btn := range h.bar.Buttons {
		h.drawButton(screen, btn.Rect, btn.Label, Enabled(btn.Action, h.ctl))
	}

	statusColor := color.RGBA{R: 160, G: 160, B: 170, A: 255}
	if h.ctl.Playing() {
		statusColor = color.RGBA{R: 120, G: 220, B: 120, A: 255}
	}
	text.Draw(screen, h.stats.StatusLabel(), face, h.bar.StatusAt.X, h.bar.StatusAt.Y, statusColor)

	labelColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	text.Draw(screen, FormatInterval(h.ctl), face, h.bar.ValueAt.X, h.bar.ValueAt.Y, labelColor)
	stats := fmt.Sprintf("Gen %d  Pop %d", h.stats.Generation(), h.stats.Population())
	text.Draw(screen, stats, face, h.bar.StatsAt.X, h.bar.StatsAt.Y, labelColor)
}

func (h *HUD) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, x, y, fg)
}
