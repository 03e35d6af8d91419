package input

import (
	"math"
	"testing"
)

func TestMapFirstCellSpan(t *testing.T) {
	l := Layout{N: 16, CellSize: 20}
	for py := 0; py < 20; py++ {
		for px := 0; px < 20; px++ {
			idx, ok := Map(float64(px), float64(py), l)
			if !ok || idx != (Index{}) {
				t.Fatalf("pixel (%d,%d) mapped to %+v ok=%v, expected (0,0)", px, py, idx, ok)
			}
		}
	}
}

func TestMapRejectsOutsidePlayable(t *testing.T) {
	l := Layout{N: 16, CellSize: 20}
	cases := [][2]float64{
		{320, 0},
		{0, 320},
		{-0.5, 10},
		{10, -1},
		{1000, 1000},
		{math.NaN(), 0},
	}
	for _, c := range cases {
		if idx, ok := Map(c[0], c[1], l); ok {
			t.Errorf("pixel (%v,%v) mapped to %+v, expected rejection", c[0], c[1], idx)
		}
	}
}

func TestMapLastCell(t *testing.T) {
	l := Layout{N: 16, CellSize: 20}
	idx, ok := Map(319.9, 300, l)
	if !ok || idx.X != 15 || idx.Y != 15 {
		t.Fatalf("expected (15,15), got %+v ok=%v", idx, ok)
	}
}

func TestMapHonoursOrigin(t *testing.T) {
	l := Layout{N: 4, CellSize: 10, OriginX: 30, OriginY: 50}
	if _, ok := Map(29, 55, l); ok {
		t.Fatal("pixel left of the origin must be rejected")
	}
	idx, ok := Map(45, 79, l)
	if !ok || idx.X != 1 || idx.Y != 2 {
		t.Fatalf("expected (1,2), got %+v ok=%v", idx, ok)
	}
}

func TestMapRejectsDegenerateLayout(t *testing.T) {
	if _, ok := Map(1, 1, Layout{N: 4, CellSize: 0}); ok {
		t.Fatal("zero cell size must reject")
	}
	if _, ok := Map(1, 1, Layout{N: 0, CellSize: 5}); ok {
		t.Fatal("empty grid must reject")
	}
}

func TestIndexMatrixAppliesBorderOffset(t *testing.T) {
	x, y := Index{X: 0, Y: 15}.Matrix()
	if x != 1 || y != 16 {
		t.Fatalf("expected matrix (1,16), got (%d,%d)", x, y)
	}
}

func TestCellOriginRoundTrips(t *testing.T) {
	l := Layout{N: 8, CellSize: 12, OriginX: 5, OriginY: 7}
	for j := 0; j < l.N; j++ {
		for i := 0; i < l.N; i++ {
			x, y := l.CellOrigin(i, j)
			idx, ok := Map(x+l.CellSize/2, y+l.CellSize/2, l)
			if !ok || idx.X != i || idx.Y != j {
				t.Fatalf("centre of cell (%d,%d) mapped to %+v ok=%v", i, j, idx, ok)
			}
		}
	}
	if l.Extent() != 96 {
		t.Fatalf("expected extent 96, got %v", l.Extent())
	}
}
