// Package config loads lifegrid settings from TOML or YAML files and command
// line flags.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"lifegrid/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Grid     GridConfig     `toml:"grid" yaml:"grid"`
	Schedule ScheduleConfig `toml:"schedule" yaml:"schedule"`
	Window   WindowConfig   `toml:"window" yaml:"window"`
	Terminal TerminalConfig `toml:"terminal" yaml:"terminal"`
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
	Soak     SoakConfig     `toml:"soak" yaml:"soak"`
}

type GridConfig struct {
	Size     int `toml:"size" yaml:"size"`           // playable cells per side
	CellSize int `toml:"cell_size" yaml:"cell_size"` // pixels per cell in the window
}

type ScheduleConfig struct {
	Interval     float64 `toml:"interval" yaml:"interval"` // seconds, 0.1-2.0
	StartPlaying bool    `toml:"start_playing" yaml:"start_playing"`
}

type WindowConfig struct {
	Title     string `toml:"title" yaml:"title"`
	Margin    int    `toml:"margin" yaml:"margin"`
	HUDHeight int    `toml:"hud_height" yaml:"hud_height"`
	TPS       int    `toml:"tps" yaml:"tps"`
}

type TerminalConfig struct {
	FrameMS int    `toml:"frame_ms" yaml:"frame_ms"` // redraw period in milliseconds
	LogFile string `toml:"log_file" yaml:"log_file"` // empty discards logs
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
}

type SoakConfig struct {
	Runs        int     `toml:"runs" yaml:"runs"`
	Generations int     `toml:"generations" yaml:"generations"`
	Density     float64 `toml:"density" yaml:"density"`
	Seed        int64   `toml:"seed" yaml:"seed"`
	Workers     int     `toml:"workers" yaml:"workers"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Size:     32,
			CellSize: 20,
		},
		Schedule: ScheduleConfig{
			Interval: core.DefaultInterval,
		},
		Window: WindowConfig{
			Title:     "Conway's Game of Life",
			Margin:    16,
			HUDHeight: 88,
			TPS:       60,
		},
		Terminal: TerminalConfig{
			FrameMS: 50,
			LogFile: "life-term.log",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Soak: SoakConfig{
			Runs:        64,
			Generations: 500,
			Density:     0.3,
			Seed:        1,
			Workers:     4,
		},
	}
}

// Load reads path over the defaults. The format follows the extension:
// .toml, .yaml or .yml. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	default:
		return nil, errors.Wrapf(ErrInvalid, "config %s: unsupported format %q", path, filepath.Ext(path))
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate rejects settings no component can run with. The step interval is
// clamped rather than rejected.
func (c *Config) Validate() error {
	if c.Grid.Size < 1 {
		return errors.Wrapf(ErrInvalid, "grid.size must be positive, got %d", c.Grid.Size)
	}
	if c.Grid.CellSize < 1 {
		return errors.Wrapf(ErrInvalid, "grid.cell_size must be positive, got %d", c.Grid.CellSize)
	}
	if c.Window.TPS < 1 {
		return errors.Wrapf(ErrInvalid, "window.tps must be positive, got %d", c.Window.TPS)
	}
	if c.Window.Margin < 0 || c.Window.HUDHeight < 0 {
		return errors.Wrapf(ErrInvalid, "window margins must not be negative")
	}
	if c.Terminal.FrameMS < 1 {
		return errors.Wrapf(ErrInvalid, "terminal.frame_ms must be positive, got %d", c.Terminal.FrameMS)
	}
	if c.Soak.Density < 0 || c.Soak.Density > 1 {
		return errors.Wrapf(ErrInvalid, "soak.density must be within [0, 1], got %v", c.Soak.Density)
	}
	if c.Soak.Runs < 0 || c.Soak.Generations < 0 {
		return errors.Wrapf(ErrInvalid, "soak counts must not be negative")
	}
	if c.Soak.Workers < 1 {
		c.Soak.Workers = 1
	}
	c.Schedule.Interval = core.ClampInterval(c.Schedule.Interval)
	return nil
}

// Bind attaches the interactive settings to the provided FlagSet so flags
// override file values.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.String("config", "", "TOML or YAML config file (read before flags)")
	fs.IntVar(&c.Grid.Size, "size", c.Grid.Size, "playable cells per side")
	fs.IntVar(&c.Grid.CellSize, "cell", c.Grid.CellSize, "pixels per cell")
	fs.Float64Var(&c.Schedule.Interval, "interval", c.Schedule.Interval, "seconds between generations (0.1-2.0)")
	fs.BoolVar(&c.Schedule.StartPlaying, "play", c.Schedule.StartPlaying, "start playing immediately")
	fs.IntVar(&c.Window.TPS, "tps", c.Window.TPS, "frames per second")
	fs.StringVar(&c.Logging.Level, "log-level", c.Logging.Level, "log level (debug, info, warn, error)")
	fs.StringVar(&c.Logging.Format, "log-format", c.Logging.Format, "log format (console or json)")
}

// BindTerminal adds the terminal host settings on top of Bind.
func (c *Config) BindTerminal(fs *flag.FlagSet) {
	fs.IntVar(&c.Terminal.FrameMS, "frame-ms", c.Terminal.FrameMS, "redraw period in milliseconds")
	fs.StringVar(&c.Terminal.LogFile, "log-file", c.Terminal.LogFile, "log destination (empty disables logging)")
	fs.Int64Var(&c.Soak.Seed, "seed", c.Soak.Seed, "first seed used by the randomize key")
	fs.Float64Var(&c.Soak.Density, "density", c.Soak.Density, "alive fraction used by the randomize key")
}

// Path extracts -config from args without consuming other flags, falling
// back to the LIFEGRID_CONFIG environment variable.
func Path(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "-config" || arg == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "-config="):
			return strings.TrimPrefix(arg, "-config=")
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return os.Getenv("LIFEGRID_CONFIG")
}
