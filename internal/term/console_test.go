package term

import (
	"strings"
	"testing"

	"lifegrid/internal/core"
	"lifegrid/internal/engine"
)

func TestFieldTextSkipsBorder(t *testing.T) {
	g := core.NewGrid(3)
	g.Set(0, 0, true) // border, never shown
	g.Set(1, 1, true)
	g.Set(3, 2, true)
	got := fieldText(core.ViewOf(g), "#", ".")
	want := "#..\n..#\n..."
	if got != want {
		t.Fatalf("field mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestFieldTextMatchesClickMapping(t *testing.T) {
	e := engine.New(engine.Options{N: 4}, core.NewManualClock(0), nil)
	// Column 2 of row 1 in the terminal view is character offset (2, 1).
	if !e.OnPointerClick(2, 1, 1, 0, 0) {
		t.Fatal("click inside the field was rejected")
	}
	rows := strings.Split(fieldText(e.RenderView(), "#", "."), "\n")
	if len(rows) != 4 || rows[1] != "..#." {
		t.Fatalf("unexpected rows %q", rows)
	}
	if e.OnPointerClick(4, 0, 1, 0, 0) {
		t.Fatal("click past the last column must be ignored")
	}
}

func TestStatusLines(t *testing.T) {
	e := engine.New(engine.Options{N: 4}, core.NewManualClock(0), nil)
	e.ToggleCell(0, 0)
	lines := statusLines(e)
	if len(lines) != 4 {
		t.Fatalf("expected 4 status lines, got %d", len(lines))
	}
	for i, want := range []string{"Paused", "Generation", "Population", "Interval: 0.5 s"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d %q does not mention %q", i, lines[i], want)
		}
	}
	if !strings.HasSuffix(lines[2], "1") {
		t.Errorf("population line %q should end with 1", lines[2])
	}
	e.Play()
	if !strings.Contains(statusLines(e)[0], "Playing") {
		t.Error("status should switch to Playing")
	}
}

func TestHelpLineListsEveryKey(t *testing.T) {
	keys := []keyBinding{
		{key: 'q', name: "Q", descr: "Exit"},
		{key: 'n', name: "N", descr: "Step"},
	}
	got := helpLine(keys)
	for _, want := range []string{"Q", "Exit", "N", "Step"} {
		if !strings.Contains(got, want) {
			t.Errorf("help %q does not mention %q", got, want)
		}
	}
}
