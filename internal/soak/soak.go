// Package soak runs many engines headless against a scripted clock. Each run
// starts from a random soup and stops when the board settles or a generation
// limit is reached.
package soak

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"lifegrid/internal/config"
	"lifegrid/internal/core"
	"lifegrid/internal/engine"
)

// ErrStalled means the scheduler refused to step even though a full interval
// had elapsed on the scripted clock.
var ErrStalled = errors.New("scheduler stalled")

// tickSlack is added to every clock advance so a sum of decimal intervals
// never rounds down below the threshold.
const tickSlack = 1e-9

type Options struct {
	Runs        int
	Generations int
	N           int
	Density     float64
	Seed        int64
	Interval    float64
	Workers     int
}

// FromConfig maps the soak section plus the grid and schedule settings.
func FromConfig(cfg *config.Config) Options {
	return Options{
		Runs:        cfg.Soak.Runs,
		Generations: cfg.Soak.Generations,
		N:           cfg.Grid.Size,
		Density:     cfg.Soak.Density,
		Seed:        cfg.Soak.Seed,
		Interval:    cfg.Schedule.Interval,
		Workers:     cfg.Soak.Workers,
	}
}

// Result describes one finished run.
type Result struct {
	Seed        int64
	Generations uint64
	Population  int
	Settled     bool
	// Period is 1 for a still life and 2 for a blinking board; 0 when the
	// run hit the generation limit first.
	Period int
}

// Run executes opts.Runs independent runs on at most opts.Workers goroutines.
// Results are ordered by run, not by completion. The first error cancels the
// remaining runs.
func Run(ctx context.Context, opts Options, log *zap.Logger) ([]Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Runs <= 0 {
		return nil, nil
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, opts.Runs)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range results {
		seed := opts.Seed + int64(i)
		eg.Go(func() error {
			r, err := runOne(ctx, opts, seed)
			if err != nil {
				return errors.Wrapf(err, "run %d (seed %d)", i, seed)
			}
			results[i] = r
			log.Debug("run finished",
				zap.Int64("seed", r.Seed),
				zap.Uint64("generations", r.Generations),
				zap.Int("population", r.Population),
				zap.Int("period", r.Period),
			)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, opts Options, seed int64) (Result, error) {
	clock := core.NewManualClock(0)
	eng := engine.New(engine.Options{
		N:            opts.N,
		Interval:     opts.Interval,
		StartPlaying: true,
	}, clock, nil)
	eng.Randomize(seed, opts.Density)

	res, err := drive(ctx, eng, clock, uint64(opts.Generations))
	res.Seed = seed
	return res, err
}

// drive plays eng until it settles or reaches limit generations. clock must
// be the engine's clock.
func drive(ctx context.Context, eng *engine.Engine, clock *core.ManualClock, limit uint64) (Result, error) {
	var res Result
	prev1 := eng.Grid()
	var prev2 *core.Grid
	for eng.Generation() < limit {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		clock.Advance(eng.Interval() + tickSlack)
		if !eng.Update() {
			return res, errors.Wrapf(ErrStalled, "at t=%v, generation %d", clock.Now(), eng.Generation())
		}
		cur := eng.Grid()
		switch {
		case cur.Equal(prev1):
			res.Period = 1
		case prev2 != nil && cur.Equal(prev2):
			res.Period = 2
		}
		if res.Period != 0 {
			res.Settled = true
			break
		}
		prev2, prev1 = prev1, cur
	}
	res.Generations = eng.Generation()
	res.Population = eng.Population()
	return res, nil
}

// Summary aggregates a batch.
type Summary struct {
	Runs              int
	StillLifes        int
	Oscillators       int
	Unsettled         int
	Extinct           int
	MeanGenerations   float64
	// StdDevGenerations is the sample standard deviation; zero for fewer
	// than two runs.
	StdDevGenerations float64
	MaxPopulation     int
}

func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results)}
	gens := make([]float64, 0, len(results))
	for _, r := range results {
		gens = append(gens, float64(r.Generations))
		switch r.Period {
		case 1:
			s.StillLifes++
		case 2:
			s.Oscillators++
		default:
			s.Unsettled++
		}
		if r.Population == 0 {
			s.Extinct++
		}
		if r.Population > s.MaxPopulation {
			s.MaxPopulation = r.Population
		}
	}
	switch {
	case s.Runs == 1:
		s.MeanGenerations = gens[0]
	case s.Runs > 1:
		s.MeanGenerations, s.StdDevGenerations = stat.MeanStdDev(gens, nil)
	}
	return s
}
