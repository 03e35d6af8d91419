package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"

	"lifegrid/internal/config"
	"lifegrid/internal/logging"
	"lifegrid/internal/soak"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.Path(os.Args[1:]))
	if err != nil {
		return err
	}

	var (
		configPath string
		verbose    bool
	)
	flaggy.SetName("life-soak")
	flaggy.SetDescription("Run many random Game of Life boards headless and report how they settle")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&configPath, "", "config", "TOML or YAML config file (read before flags)")
	flaggy.Int(&cfg.Soak.Runs, "r", "runs", "Number of boards to run")
	flaggy.Int(&cfg.Soak.Generations, "g", "generations", "Generation limit per board")
	flaggy.Int(&cfg.Grid.Size, "x", "size", "Playable cells per side")
	flaggy.Float64(&cfg.Soak.Density, "d", "density", "Initial alive fraction")
	flaggy.Int64(&cfg.Soak.Seed, "s", "seed", "Seed of the first board; board i uses seed+i")
	flaggy.Float64(&cfg.Schedule.Interval, "i", "interval", "Step interval in seconds of scripted time")
	flaggy.Int(&cfg.Soak.Workers, "w", "workers", "Boards evaluated in parallel")
	flaggy.String(&cfg.Logging.Level, "l", "log-level", "Log level (debug, info, warn, error)")
	flaggy.Bool(&verbose, "v", "verbose", "Print one line per board")
	flaggy.Parse()

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := soak.FromConfig(cfg)
	log.Info("soak started",
		zap.Int("runs", opts.Runs),
		zap.Int("generations", opts.Generations),
		zap.Int("size", opts.N),
		zap.Int("workers", opts.Workers),
	)
	start := time.Now()
	results, err := soak.Run(ctx, opts, log)
	if err != nil {
		return err
	}
	elapsed := time.Since(start).Round(time.Millisecond)

	if verbose {
		for _, r := range results {
			fmt.Println(resultLine(r))
		}
	}
	printSummary(soak.Summarize(results), elapsed)
	return nil
}

func resultLine(r soak.Result) string {
	state := aurora.Yellow("running")
	switch r.Period {
	case 1:
		state = aurora.Green("still")
	case 2:
		state = aurora.Cyan("blinking")
	}
	return fmt.Sprintf("seed %-8d gen %-6d pop %-6d %s", r.Seed, r.Generations, r.Population, state)
}

func printSummary(s soak.Summary, elapsed time.Duration) {
	fmt.Printf("%s %d boards in %v\n", aurora.Bold("Finished"), s.Runs, elapsed)
	fmt.Printf("  %s %d\n", aurora.Green("still lifes:"), s.StillLifes)
	fmt.Printf("  %s %d\n", aurora.Cyan("period 2:   "), s.Oscillators)
	fmt.Printf("  %s %d\n", aurora.Yellow("unsettled:  "), s.Unsettled)
	fmt.Printf("  %s %d\n", aurora.Red("extinct:    "), s.Extinct)
	fmt.Printf("  generations %.1f ± %.1f, max population %d\n", s.MeanGenerations, s.StdDevGenerations, s.MaxPopulation)
}
