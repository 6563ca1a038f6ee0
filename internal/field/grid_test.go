package field

import (
	"math"
	"math/rand"
	"sort"
	"testing"
)

func TestGridDims(t *testing.T) {
	tests := []struct {
		name       string
		w, h, gap  float64
		cols, rows int
	}{
		{"exact multiple", 700, 350, 35, 22, 12},
		{"partial cell", 701, 351, 35, 23, 13},
		{"zero size", 0, 0, 35, 2, 2},
		{"negative size", -10, -5, 35, 2, 2},
		{"min gap", 800, 600, MinGap, 802, 602},
		{"tiny gap clamps", 800, 600, 0.001, MaxGridLines, MaxGridLines},
		{"vanishing gap clamps", 800, 600, 1e-300, MaxGridLines, MaxGridLines},
		{"zero gap clamps", 800, 600, 0, MaxGridLines, MaxGridLines},
		{"nan size", math.NaN(), 600, 35, 2, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := GridDims(tt.w, tt.h, tt.gap)
			if cols != tt.cols || rows != tt.rows {
				t.Errorf("GridDims(%v, %v, %v) = %d, %d, want %d, %d", tt.w, tt.h, tt.gap, cols, rows, tt.cols, tt.rows)
			}
		})
	}
}

func TestGenerateGridCount(t *testing.T) {
	cfg := DefaultConfig()
	dots := GenerateGrid(800, 600, cfg, rand.New(rand.NewSource(1)), nil)
	cols, rows := GridDims(800, 600, cfg.Gap)
	if want := (cols + 1) * (rows + 1); len(dots) != want {
		t.Fatalf("len(dots) = %d, want %d", len(dots), want)
	}
	for i, d := range dots {
		if d.Pos != d.Base {
			t.Errorf("dot %d: Pos %v != Base %v", i, d.Pos, d.Base)
		}
		if d.Vel != (Vec{}) {
			t.Errorf("dot %d: Vel = %v, want zero", i, d.Vel)
		}
		if d.Phase < 0 || d.Phase >= 2*math.Pi {
			t.Errorf("dot %d: Phase = %v, want [0, 2π)", i, d.Phase)
		}
		if d.Speed < cfg.SpeedMin || d.Speed > cfg.SpeedMax {
			t.Errorf("dot %d: Speed = %v, want [%v, %v]", i, d.Speed, cfg.SpeedMin, cfg.SpeedMax)
		}
	}
}

func TestGenerateGridCoverage(t *testing.T) {
	sizes := []struct{ w, h, gap float64 }{
		{800, 600, 35},
		{1, 1, 35},
		{123.4, 987.6, 17},
		{1920, 1080, 50},
		{35, 35, 35},
	}
	for _, sz := range sizes {
		cfg := DefaultConfig()
		cfg.Gap = sz.gap
		dots := GenerateGrid(sz.w, sz.h, cfg, rand.New(rand.NewSource(2)), nil)

		rows := make(map[float64][]float64)
		for _, d := range dots {
			rows[d.Base.Y] = append(rows[d.Base.Y], d.Base.X)
		}
		ys := make([]float64, 0, len(rows))
		for y := range rows {
			ys = append(ys, y)
		}
		sort.Float64s(ys)

		if ys[0] > 0 || ys[len(ys)-1] < sz.h {
			t.Errorf("%vx%v gap %v: rows span [%v, %v], want to cover [0, %v]", sz.w, sz.h, sz.gap, ys[0], ys[len(ys)-1], sz.h)
		}
		for i := 1; i < len(ys); i++ {
			if gap := ys[i] - ys[i-1]; gap > sz.gap+1e-9 {
				t.Errorf("%vx%v: row gap %v exceeds %v", sz.w, sz.h, gap, sz.gap)
			}
		}
		for y, xs := range rows {
			sort.Float64s(xs)
			if xs[0] > 0 || xs[len(xs)-1] < sz.w {
				t.Errorf("%vx%v: row y=%v spans [%v, %v], want to cover [0, %v]", sz.w, sz.h, y, xs[0], xs[len(xs)-1], sz.w)
			}
			for i := 1; i < len(xs); i++ {
				if gap := xs[i] - xs[i-1]; gap > sz.gap+1e-9 {
					t.Errorf("%vx%v: row y=%v column gap %v exceeds %v", sz.w, sz.h, y, gap, sz.gap)
				}
			}
		}
	}
}

func TestGridPointStagger(t *testing.T) {
	for _, gap := range []float64{35, 10, 7.5} {
		for i := -1; i < 5; i++ {
			for j := -1; j < 5; j++ {
				a := GridPoint(i, j, gap)
				b := GridPoint(i, j+1, gap)
				if diff := math.Abs(a.X - b.X); diff != gap/2 {
					t.Errorf("GridPoint(%d, %d|%d, %v) x diff = %v, want %v", i, j, j+1, gap, diff, gap/2)
				}
				if b.Y-a.Y != gap {
					t.Errorf("GridPoint(%d, %d|%d, %v) y diff = %v, want %v", i, j, j+1, gap, b.Y-a.Y, gap)
				}
			}
		}
	}
}

func TestGenerateGridDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	a := GenerateGrid(300, 200, cfg, rand.New(rand.NewSource(42)), nil)
	b := GenerateGrid(300, 200, cfg, rand.New(rand.NewSource(42)), nil)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("dot %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateGridPhaseField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PhaseNoise = 0.01
	field := NewPhaseField(7, cfg.PhaseNoise)
	dots := GenerateGrid(400, 300, cfg, rand.New(rand.NewSource(3)), field)
	for i, d := range dots {
		if want := field.Phase(d.Base); d.Phase != want {
			t.Errorf("dot %d: Phase = %v, want %v from noise", i, d.Phase, want)
		}
	}
}
