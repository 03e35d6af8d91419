package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"lifegrid/internal/core"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Size != 32 || cfg.Grid.CellSize != 20 || cfg.Schedule.Interval != core.DefaultInterval {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadTOMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, "life.toml", `
[grid]
size = 16

[schedule]
interval = 0.25
start_playing = true

[logging]
level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Size != 16 || cfg.Schedule.Interval != 0.25 || !cfg.Schedule.StartPlaying {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Grid.CellSize != 20 || cfg.Window.TPS != 60 {
		t.Fatalf("defaults lost for unset keys: %+v", cfg)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Logging.Level)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "life.yaml", `
grid:
  size: 24
  cell_size: 12
soak:
  runs: 8
  density: 0.5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Size != 24 || cfg.Grid.CellSize != 12 || cfg.Soak.Runs != 8 || cfg.Soak.Density != 0.5 {
		t.Fatalf("yaml values not applied: %+v", cfg)
	}
}

func TestLoadClampsInterval(t *testing.T) {
	path := writeFile(t, "life.toml", "[schedule]\ninterval = 5.0\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Schedule.Interval != core.MaxInterval {
		t.Fatalf("expected interval clamped to %v, got %v", core.MaxInterval, cfg.Schedule.Interval)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"size.toml":    "[grid]\nsize = 0\n",
		"cell.toml":    "[grid]\ncell_size = -3\n",
		"density.yaml": "soak:\n  density: 1.5\n",
		"config.ini":   "size=3\n",
	}
	for name, body := range cases {
		_, err := Load(writeFile(t, name, body))
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", name, err)
		}
	}
}

func TestLoadReportsParseErrors(t *testing.T) {
	_, err := Load(writeFile(t, "broken.toml", "[grid\nsize = "))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrInvalid) {
		t.Fatal("parse errors are not validation errors")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestBindOverridesValues(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-config", "x.toml", "-size", "8", "-interval", "1.5", "-play"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Grid.Size != 8 || cfg.Schedule.Interval != 1.5 || !cfg.Schedule.StartPlaying {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestBindTerminal(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("life-term", flag.ContinueOnError)
	cfg.Bind(fs)
	cfg.BindTerminal(fs)
	if err := fs.Parse([]string{"-frame-ms", "20", "-log-file", "", "-seed", "9"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Terminal.FrameMS != 20 || cfg.Terminal.LogFile != "" || cfg.Soak.Seed != 9 {
		t.Fatalf("terminal flags not applied: %+v", cfg.Terminal)
	}
	cfg.Terminal.FrameMS = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for zero frame period, got %v", err)
	}
}

func TestPath(t *testing.T) {
	t.Setenv("LIFEGRID_CONFIG", "env.toml")
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"-size", "3", "-config", "a.toml"}, "a.toml"},
		{[]string{"--config=b.yaml"}, "b.yaml"},
		{[]string{"-config=c.toml", "-play"}, "c.toml"},
		{[]string{"-play"}, "env.toml"},
	}
	for _, c := range cases {
		if got := Path(c.args); got != c.want {
			t.Errorf("Path(%v) = %q, want %q", c.args, got, c.want)
		}
	}
}

func TestExampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "life.example.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("example config drifted from defaults:\n%+v\n%+v", cfg, Default())
	}
}
