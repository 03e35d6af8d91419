package core

import (
	"slices"
	"testing"
)

func TestNewGridAllocatesBorderedMatrix(t *testing.T) {
	g := NewGrid(16)
	if g.N() != 16 || g.Side() != 18 {
		t.Fatalf("expected n=16 side=18, got n=%d side=%d", g.N(), g.Side())
	}
	if len(g.Cells()) != 18*18 {
		t.Fatalf("expected %d cells, got %d", 18*18, len(g.Cells()))
	}
	if g.Population() != 0 {
		t.Fatalf("new grid should be all dead, population=%d", g.Population())
	}
}

func TestNewGridCoercesNonPositiveSize(t *testing.T) {
	g := NewGrid(0)
	if g.N() != 1 || g.Side() != 3 {
		t.Fatalf("expected n=1 side=3, got n=%d side=%d", g.N(), g.Side())
	}
}

func TestToggleTwiceRestoresCell(t *testing.T) {
	g := NewGrid(4)
	g.Set(1, 1, true)
	before := slices.Clone(g.Cells())

	g.Toggle(2, 3)
	if !g.Get(2, 3) {
		t.Fatal("first toggle should make the cell alive")
	}
	g.Toggle(2, 3)

	if !slices.Equal(before, g.Cells()) {
		t.Fatal("double toggle must restore the original matrix")
	}
}

func TestToggleOutOfRangeIsNoop(t *testing.T) {
	g := NewGrid(4)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {6, 0}, {0, 6}, {100, 100}} {
		g.Toggle(p[0], p[1])
	}
	if g.Population() != 0 {
		t.Fatalf("out-of-range toggles changed the grid, population=%d", g.Population())
	}

	g.Toggle(5, 5)
	if !g.Get(5, 5) {
		t.Fatal("the last border cell is inside the matrix and must toggle")
	}
}

func TestGetOutOfRangePanics(t *testing.T) {
	g := NewGrid(2)
	defer func() {
		if recover() == nil {
			t.Fatal("expected Get outside the matrix to panic")
		}
	}()
	g.Get(4, 0)
}

func TestClearKeepsDimensions(t *testing.T) {
	g := NewGrid(5)
	g.Toggle(0, 0)
	g.Toggle(3, 3)
	g.Toggle(6, 6)

	g.Clear()

	if g.N() != 5 || g.Side() != 7 {
		t.Fatalf("clear changed dimensions: n=%d side=%d", g.N(), g.Side())
	}
	for y := 0; y < g.Side(); y++ {
		for x := 0; x < g.Side(); x++ {
			if g.Get(x, y) {
				t.Fatalf("cell (%d,%d) alive after clear", x, y)
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(3)
	g.Set(2, 2, true)

	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone should equal the source")
	}
	c.Toggle(1, 1)
	if g.Get(1, 1) {
		t.Fatal("mutating the clone leaked into the source")
	}
	if c.Equal(g) {
		t.Fatal("grids differ after toggle but Equal reported true")
	}
}

func TestCopyFromAdoptsDimensions(t *testing.T) {
	src := NewGrid(6)
	src.Set(4, 2, true)
	dst := NewGrid(2)

	dst.CopyFrom(src)

	if dst.N() != 6 || !dst.Get(4, 2) {
		t.Fatalf("copy failed: n=%d alive=%v", dst.N(), dst.Get(4, 2))
	}
}

func TestResizeReallocates(t *testing.T) {
	g := NewGrid(3)
	g.Set(1, 1, true)

	g.Resize(8)

	if g.N() != 8 || g.Side() != 10 || len(g.Cells()) != 100 {
		t.Fatalf("unexpected dimensions after resize: n=%d side=%d len=%d", g.N(), g.Side(), len(g.Cells()))
	}
	if g.Population() != 0 {
		t.Fatal("resized grid should be all dead")
	}
}

func TestViewPlayableOffsetsByBorder(t *testing.T) {
	g := NewGrid(4)
	g.Set(1, 1, true)
	v := ViewOf(g)

	if v.N != 4 || v.Border != 1 {
		t.Fatalf("unexpected view shape n=%d border=%d", v.N, v.Border)
	}
	if !v.Playable(0, 0) {
		t.Fatal("playable (0,0) should read matrix (1,1)")
	}
	if v.Playable(1, 1) {
		t.Fatal("playable (1,1) should be dead")
	}
}

func TestFillPlayableLeavesBorderDead(t *testing.T) {
	g := NewGrid(10)
	FillPlayable(NewRNG(7), g, 1)

	side := g.Side()
	for i := 0; i < side; i++ {
		if g.Get(i, 0) || g.Get(i, side-1) || g.Get(0, i) || g.Get(side-1, i) {
			t.Fatalf("border cell on ring index %d is alive", i)
		}
	}
	if g.Population() != 100 {
		t.Fatalf("density 1 should fill all playable cells, got %d", g.Population())
	}
}

func TestFillPlayableDeterministic(t *testing.T) {
	a := NewGrid(12)
	b := NewGrid(12)
	FillPlayable(NewRNG(99), a, 0.3)
	FillPlayable(NewRNG(99), b, 0.3)
	if !a.Equal(b) {
		t.Fatal("same seed must produce the same soup")
	}
}
