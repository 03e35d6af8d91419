// Package engine composes the grid, rule, input mapper and scheduler into the
// per-frame contract a host loop drives.
package engine

import (
	"time"

	"go.uber.org/zap"

	"lifegrid/internal/core"
	"lifegrid/internal/input"
	"lifegrid/internal/rules"
)

// Options configures a new Engine.
type Options struct {
	// N is the playable grid size; the matrix is (N+2)x(N+2).
	N int
	// Interval is the step interval in seconds, clamped to
	// [core.MinInterval, core.MaxInterval].
	Interval     float64
	StartPlaying bool
}

// DefaultOptions matches the classic window: a 32x32 board stepping every
// half second, paused.
func DefaultOptions() Options {
	return Options{N: 32, Interval: core.DefaultInterval}
}

// Engine owns one grid and its scheduler. It is not safe for concurrent use;
// hosts call it from a single loop.
type Engine struct {
	cur   *core.Grid
	nxt   *core.Grid
	sched *core.Scheduler
	clock core.Clock
	log   *zap.Logger

	generation uint64
	population int
}

// New constructs an Engine with an all-dead grid. A zero interval selects
// core.DefaultInterval. A nil clock measures time from construction; a nil
// logger discards output.
func New(opts Options, clock core.Clock, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Interval == 0 {
		opts.Interval = core.DefaultInterval
	}
	if clock == nil {
		clock = core.NewMonotonicClock(time.Time{})
	}
	cur := core.NewGrid(opts.N)
	e := &Engine{
		cur:   cur,
		nxt:   core.NewGrid(cur.N()),
		sched: core.NewScheduler(opts.Interval, clock.Now()),
		clock: clock,
		log:   log,
	}
	if e.sched.Interval() != opts.Interval {
		log.Debug("interval clamped", zap.Float64("requested", opts.Interval), zap.Float64("interval", e.sched.Interval()))
	}
	if opts.StartPlaying {
		e.sched.Play()
	}
	return e
}

// OnPointerClick toggles the playable cell under pixel (px, py). The origin
// is the top-left corner of the first playable cell. It reports whether a
// cell changed.
func (e *Engine) OnPointerClick(px, py, cellSize, originX, originY float64) bool {
	idx, ok := input.Map(px, py, input.Layout{
		N:        e.cur.N(),
		CellSize: cellSize,
		OriginX:  originX,
		OriginY:  originY,
	})
	if !ok {
		return false
	}
	x, y := idx.Matrix()
	e.cur.Toggle(x, y)
	if e.cur.Get(x, y) {
		e.population++
	} else {
		e.population--
	}
	return true
}

// ToggleCell flips playable cell (i, j), ignoring coordinates outside the
// playable region.
func (e *Engine) ToggleCell(i, j int) bool {
	n := e.cur.N()
	if i < 0 || j < 0 || i >= n || j >= n {
		return false
	}
	return e.OnPointerClick(float64(i), float64(j), 1, 0, 0)
}

// Play starts automatic stepping.
func (e *Engine) Play() {
	if !e.sched.Playing() {
		e.log.Debug("play", zap.Uint64("generation", e.generation))
	}
	e.sched.Play()
}

// Pause stops automatic stepping.
func (e *Engine) Pause() {
	if e.sched.Playing() {
		e.log.Debug("pause", zap.Uint64("generation", e.generation))
	}
	e.sched.Pause()
}

// TogglePlaying switches between playing and paused.
func (e *Engine) TogglePlaying() {
	if e.sched.Playing() {
		e.Pause()
		return
	}
	e.Play()
}

// Clear kills every cell and pauses.
func (e *Engine) Clear() {
	e.cur.Clear()
	e.sched.Pause()
	e.generation = 0
	e.population = 0
	e.log.Debug("clear")
}

// SetInterval stores the step interval, clamped to the supported range, and
// returns the stored value.
func (e *Engine) SetInterval(seconds float64) float64 {
	got := e.sched.SetInterval(seconds)
	if got != seconds {
		e.log.Debug("interval clamped", zap.Float64("requested", seconds), zap.Float64("interval", got))
	}
	return got
}

// Advance evaluates the scheduler at now and steps the grid when due. now
// must not decrease between calls. It reports whether a step fired.
func (e *Engine) Advance(now float64) bool {
	if !e.sched.Tick(now) {
		return false
	}
	e.step()
	return true
}

// Update advances using the engine's clock.
func (e *Engine) Update() bool {
	return e.Advance(e.clock.Now())
}

// Step advances one generation regardless of the scheduler.
func (e *Engine) Step() {
	e.step()
}

func (e *Engine) step() {
	e.population = rules.Next(e.nxt, e.cur)
	e.cur, e.nxt = e.nxt, e.cur
	e.generation++
}

// Randomize replaces the grid with a deterministic soup: each playable cell
// is alive with probability density. The border stays dead.
func (e *Engine) Randomize(seed int64, density float64) {
	core.FillPlayable(core.NewRNG(seed), e.cur, density)
	e.generation = 0
	e.population = e.cur.Population()
	e.log.Debug("randomize", zap.Int64("seed", seed), zap.Float64("density", density), zap.Int("population", e.population))
}

// RenderView exposes read-only grid state for painting. The view reads the
// live buffer and is only meaningful until the next step.
func (e *Engine) RenderView() core.View {
	return core.ViewOf(e.cur)
}

// Grid returns a copy of the current generation.
func (e *Engine) Grid() *core.Grid { return e.cur.Clone() }

// N returns the playable grid size.
func (e *Engine) N() int { return e.cur.N() }

// Playing reports whether automatic stepping is enabled.
func (e *Engine) Playing() bool { return e.sched.Playing() }

// Interval returns the step interval in seconds.
func (e *Engine) Interval() float64 { return e.sched.Interval() }

// LastStep returns the clock reading at the most recent scheduled step.
func (e *Engine) LastStep() float64 { return e.sched.Last() }

// Generation returns the number of steps since construction or the last
// clear.
func (e *Engine) Generation() uint64 { return e.generation }

// Population returns the number of alive cells, border included.
func (e *Engine) Population() int { return e.population }

// StatusLabel names the scheduler state for display.
func (e *Engine) StatusLabel() string {
	if e.sched.Playing() {
		return "Playing"
	}
	return "Paused"
}
