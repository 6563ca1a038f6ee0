package field

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Perlin parameters
const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
)

// PhaseField samples pulse phases from 2D Perlin noise so that neighbouring
// dots pulse nearly in step and the field shows travelling waves.
type PhaseField struct {
	noise *perlin.Perlin
	scale float64
}

// NewPhaseField creates a phase field. scale converts logical pixels to
// noise space; smaller values give broader waves.
func NewPhaseField(seed int64, scale float64) *PhaseField {
	return &PhaseField{
		noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed),
		scale: scale,
	}
}

// Phase returns a phase in [0, 2π) for a rest position
func (f *PhaseField) Phase(at Vec) float64 {
	n := f.noise.Noise2D(at.X*f.scale, at.Y*f.scale)
	if math.IsNaN(n) {
		return 0
	}
	// n is roughly in [-1, 1]; wrap one full turn over that range
	p := math.Mod((n+1)*2*math.Pi, 2*math.Pi)
	if p < 0 {
		p += 2 * math.Pi
	}
	return p
}
