//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"lifegrid/internal/engine"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"
)

// Game adapts the engine to the ebiten.Game interface. ebiten calls Update
// and Draw from one goroutine, which is the only caller of the engine.
type Game struct {
	eng     *engine.Engine
	painter *render.GridPainter
	hud     *ui.HUD
	frame   Frame
	log     *zap.Logger

	background color.Color
	seed       int64
	density    float64
}

// New constructs a Game drawing eng inside frame.
func New(eng *engine.Engine, frame Frame, seed int64, density float64, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		eng:        eng,
		painter:    render.NewGridPainter(eng.N(), render.DefaultPalette()),
		hud:        ui.NewHUD(eng, eng, frame.HUDX, frame.HUDY),
		frame:      frame,
		log:        log,
		background: color.RGBA{R: 16, G: 16, B: 20, A: 255},
		seed:       seed,
		density:    density,
	}
}

// Update handles input and advances the simulation when the scheduler says
// a step is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.eng.TogglePlaying()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.eng.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.eng.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.eng.Randomize(g.seed, g.density)
		g.seed++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		ui.Apply(ui.ActionIntervalUp, g.eng)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		ui.Apply(ui.ActionIntervalDown, g.eng)
	}

	if !g.hud.Update() && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		l := g.frame.Grid
		if g.eng.OnPointerClick(float64(mx), float64(my), l.CellSize, l.OriginX, l.OriginY) {
			g.log.Debug("cell toggled", zap.Int("x", mx), zap.Int("y", my))
		}
	}

	if g.eng.Update() {
		g.log.Debug("step", zap.Uint64("generation", g.eng.Generation()), zap.Int("population", g.eng.Population()))
	}
	return nil
}

// Draw renders the grid and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.painter.Draw(screen, g.eng.RenderView(), g.frame.Grid)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.frame.Width, g.frame.Height
}
