//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"lifegrid/internal/app"
	"lifegrid/internal/config"
	"lifegrid/internal/core"
	"lifegrid/internal/engine"
	"lifegrid/internal/logging"
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
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	eng := engine.New(engine.Options{
		N:            cfg.Grid.Size,
		Interval:     cfg.Schedule.Interval,
		StartPlaying: cfg.Schedule.StartPlaying,
	}, core.NewMonotonicClock(time.Now()), log)

	frame := app.NewFrame(cfg.Grid.Size, cfg.Grid.CellSize, cfg.Window)
	game := app.New(eng, frame, cfg.Soak.Seed, cfg.Soak.Density, log)

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowSize(frame.Width, frame.Height)

	log.Info("starting",
		zap.Int("size", cfg.Grid.Size),
		zap.Float64("interval", eng.Interval()),
		zap.Bool("playing", eng.Playing()),
	)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	log.Info("stopped", zap.Uint64("generation", eng.Generation()))
	return nil
}
