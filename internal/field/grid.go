package field

import (
	"math"
	"math/rand"
)

// MaxGridLines caps the columns or rows of one grid
const MaxGridLines = 1 << 14

// GridDims returns the column and row counts for a w×h container.
// Two extra columns and rows, plus the -1 start index, keep the staggered
// grid covering the whole surface. Each count is clamped to MaxGridLines.
func GridDims(w, h, gap float64) (cols, rows int) {
	return gridLines(w, gap), gridLines(h, gap)
}

func gridLines(extent, gap float64) int {
	n := math.Ceil(extent / gap)
	if math.IsNaN(n) || n < 0 {
		n = 0
	}
	return int(math.Min(n, MaxGridLines-2)) + 2
}

// GridPoint returns the rest position of grid cell (i, j). Odd rows are
// shifted right by half a cell.
func GridPoint(i, j int, gap float64) Vec {
	x := float64(i) * gap
	if j%2 != 0 {
		x += gap * 0.5
	}
	return Vec{x, float64(j) * gap}
}

// GenerateGrid builds a fresh particle set for a w×h container.
// phases may be nil, in which case phases are uniform in [0, 2π).
func GenerateGrid(w, h float64, cfg Config, rng *rand.Rand, phases *PhaseField) []Particle {
	cols, rows := GridDims(w, h, cfg.Gap)
	dots := make([]Particle, 0, (cols+1)*(rows+1))
	for i := -1; i < cols; i++ {
		for j := -1; j < rows; j++ {
			pt := GridPoint(i, j, cfg.Gap)
			phase := rng.Float64() * 2 * math.Pi
			if phases != nil {
				phase = phases.Phase(pt)
			}
			dots = append(dots, Particle{
				Base:  pt,
				Pos:   pt,
				Phase: phase,
				Speed: cfg.SpeedMin + rng.Float64()*(cfg.SpeedMax-cfg.SpeedMin),
			})
		}
	}
	return dots
}
