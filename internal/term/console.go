// Package term hosts the engine in a terminal using gocui. Each cell is one
// character; mouse clicks on the field toggle cells.
package term

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"

	"lifegrid/internal/core"
	"lifegrid/internal/engine"
	"lifegrid/internal/ui"
)

const (
	viewField  = "field"
	viewStatus = "status"
	viewHelp   = "help"

	statusWidth = 30
)

// Options tunes the terminal host.
type Options struct {
	// FrameRate is how often the engine is polled and the field redrawn.
	FrameRate time.Duration
	Seed      int64
	Density   float64
}

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func(v *gocui.View) error
	view    string
}

// Console drives an engine from a gocui main loop. All engine calls happen
// on the gocui loop goroutine: key handlers run there, and the frame ticker
// hands its work over with Gui.Update.
type Console struct {
	g    *gocui.Gui
	eng  *engine.Engine
	log  *zap.Logger
	opts Options
	keys []keyBinding

	liveFiller string
	deadFiller string
}

// New prepares the terminal. The caller must call Run, which restores the
// terminal on exit.
func New(eng *engine.Engine, opts Options, log *zap.Logger) (*Console, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = 50 * time.Millisecond
	}
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	c := &Console{
		g:          g,
		eng:        eng,
		log:        log,
		opts:       opts,
		liveFiller: aurora.Red("█").String(),
		deadFiller: "·",
	}
	g.Mouse = true
	g.SetManagerFunc(c.layout)

	c.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit, ""},
		{'q', "Q", "Exit", c.cmdQuit, ""},
		{'p', "P", "Play", c.cmdPlay, ""},
		{'s', "S", "Pause", c.cmdPause, ""},
		{gocui.KeySpace, "SPACE", "Play/Pause", c.cmdToggle, ""},
		{'n', "N", "Step", c.cmdStep, ""},
		{'c', "C", "Clear", c.cmdClear, ""},
		{'w', "W", "Random", c.cmdRandom, ""},
		{'+', "+", "Slower", c.cmdSlower, ""},
		{'-', "-", "Faster", c.cmdFaster, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", c.cmdClick, viewField},
	}
	for _, kb := range c.keys {
		h := kb.handler
		if err := g.SetKeybinding(kb.view, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, fmt.Errorf("bind %s: %w", kb.name, err)
		}
	}
	return c, nil
}

// Run blocks in the gocui main loop until the user quits or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	defer c.g.Close()

	done := make(chan struct{})
	defer close(done)
	go c.tick(ctx, done)

	if err := c.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

func (c *Console) tick(ctx context.Context, done <-chan struct{}) {
	ticker := time.NewTicker(c.opts.FrameRate)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			c.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
			return
		case <-ticker.C:
			c.g.Update(func(g *gocui.Gui) error {
				if c.eng.Update() {
					c.log.Debug("step", zap.Uint64("generation", c.eng.Generation()))
				}
				return c.render(g)
			})
		}
	}
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	n := c.eng.N()

	if v, err := g.SetView(viewField, 0, 0, n+1, n+1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Life"
		v.Frame = true
	}
	if v, err := g.SetView(viewStatus, n+2, 0, n+2+statusWidth, 7); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}
	helpY := max(n+2, 8)
	if helpY >= maxY || maxX < 1 {
		return c.render(g)
	}
	if v, err := g.SetView(viewHelp, -1, helpY, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.Wrap = true
		_, _ = fmt.Fprintln(v, helpLine(c.keys))
	}
	return c.render(g)
}

func (c *Console) render(g *gocui.Gui) error {
	if v, err := g.View(viewField); err == nil {
		v.Clear()
		_, _ = fmt.Fprint(v, fieldText(c.eng.RenderView(), c.liveFiller, c.deadFiller))
	}
	if v, err := g.View(viewStatus); err == nil {
		v.Clear()
		for _, line := range statusLines(c.eng) {
			_, _ = fmt.Fprintln(v, line)
		}
	}
	return nil
}

// fieldText renders the playable cells of v, one character per cell.
func fieldText(v core.View, live, dead string) string {
	var b bytes.Buffer
	for j := 0; j < v.N; j++ {
		if j != 0 {
			b.WriteByte('\n')
		}
		for i := 0; i < v.N; i++ {
			if v.Playable(i, j) {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
	}
	return b.String()
}

type statusSource interface {
	ui.Controls
	StatusLabel() string
	Generation() uint64
	Population() int
}

func statusLines(s statusSource) []string {
	mode := aurora.Colorize(s.StatusLabel(), aurora.BlueFg).String()
	if s.Playing() {
		mode = aurora.Colorize(s.StatusLabel(), aurora.GreenFg).String()
	}
	return []string{
		prop("Mode", mode),
		prop("Generation", fmt.Sprint(s.Generation())),
		prop("Population", fmt.Sprint(s.Population())),
		" " + ui.FormatInterval(s),
	}
}

func prop(name, value string) string {
	return " " + aurora.Colorize(name, aurora.GreenFg).String() + ": " + value
}

func helpLine(keys []keyBinding) string {
	var b bytes.Buffer
	b.WriteString("KEYS: ")
	for i, k := range keys {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func (c *Console) cmdQuit(_ *gocui.View) error { return gocui.ErrQuit }

func (c *Console) cmdPlay(_ *gocui.View) error {
	c.eng.Play()
	return nil
}

func (c *Console) cmdPause(_ *gocui.View) error {
	c.eng.Pause()
	return nil
}

func (c *Console) cmdToggle(_ *gocui.View) error {
	c.eng.TogglePlaying()
	return nil
}

func (c *Console) cmdStep(_ *gocui.View) error {
	c.eng.Step()
	return c.render(c.g)
}

func (c *Console) cmdClear(_ *gocui.View) error {
	c.eng.Clear()
	return c.render(c.g)
}

func (c *Console) cmdRandom(_ *gocui.View) error {
	c.eng.Randomize(c.opts.Seed, c.opts.Density)
	c.opts.Seed++
	return c.render(c.g)
}

func (c *Console) cmdSlower(_ *gocui.View) error {
	ui.Apply(ui.ActionIntervalUp, c.eng)
	return c.render(c.g)
}

func (c *Console) cmdFaster(_ *gocui.View) error {
	ui.Apply(ui.ActionIntervalDown, c.eng)
	return c.render(c.g)
}

// cmdClick toggles the cell under the cursor. gocui moves the cursor of the
// clicked view to the pointer before calling the handler, so the cursor is
// the pointer position relative to the first playable cell.
func (c *Console) cmdClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	if c.eng.OnPointerClick(float64(cx+ox), float64(cy+oy), 1, 0, 0) {
		c.log.Debug("cell toggled", zap.Int("x", cx+ox), zap.Int("y", cy+oy))
	}
	return c.render(c.g)
}
