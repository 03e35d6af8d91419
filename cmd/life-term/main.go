package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"lifegrid/internal/config"
	"lifegrid/internal/core"
	"lifegrid/internal/engine"
	"lifegrid/internal/logging"
	"lifegrid/internal/term"
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
	cfg.Bind(flag.CommandLine)
	cfg.BindTerminal(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		return err
	}

	// gocui owns stdout, so logs go to a file.
	log, err := logging.NewFile(cfg.Logging, cfg.Terminal.LogFile)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	eng := engine.New(engine.Options{
		N:            cfg.Grid.Size,
		Interval:     cfg.Schedule.Interval,
		StartPlaying: cfg.Schedule.StartPlaying,
	}, core.NewMonotonicClock(time.Now()), log)

	console, err := term.New(eng, term.Options{
		FrameRate: time.Duration(cfg.Terminal.FrameMS) * time.Millisecond,
		Seed:      cfg.Soak.Seed,
		Density:   cfg.Soak.Density,
	}, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info("starting", zap.Int("size", cfg.Grid.Size), zap.Float64("interval", eng.Interval()))
	if err := console.Run(ctx); err != nil {
		return fmt.Errorf("run console: %w", err)
	}
	log.Info("stopped", zap.Uint64("generation", eng.Generation()))
	return nil
}
