package field

import (
	"image/color"
	"math"
	"time"
)

// Pulse constants
const (
	MinIntensity  = 0.05
	GlowThreshold = 0.8 // Intensities above this glow
	GlowBlur      = 10.0
	DimFactor     = 0.3 // Opacity multiplier below the threshold
)

// PulseTime converts elapsed time to the scaled pulse clock
func PulseTime(elapsed time.Duration, speedScale float64) float64 {
	return elapsed.Seconds() * speedScale
}

// Intensity returns the pulse brightness in [0.05, 1) for a dot at time t.
// The triangle wave has period 2/speed; squaring it keeps most of the
// cycle dim with short bright peaks.
func Intensity(t, speed, phase float64) float64 {
	mod := math.Mod(t*speed+phase, 2)
	if mod < 0 {
		mod += 2
	}
	lin := mod
	if mod >= 1 {
		lin = 2 - mod
	}
	return MinIntensity + (1-MinIntensity)*lin*lin
}

// DotStyle describes how one dot is filled
type DotStyle struct {
	Fill  color.NRGBA
	Blur  float64 // Glow radius in logical pixels, 0 for none
	Alpha float64 // Global alpha multiplier
}

// Glowing reports whether the style carries a glow
func (s DotStyle) Glowing() bool { return s.Blur > 0 }

// styleFor picks the fill for an intensity
func styleFor(intensity, opacity float64, pal palette) DotStyle {
	if intensity > GlowThreshold {
		return DotStyle{
			Fill:  pal.glow,
			Blur:  GlowBlur * (intensity - GlowThreshold) * 5,
			Alpha: opacity,
		}
	}
	return DotStyle{Fill: pal.base, Alpha: opacity * DimFactor}
}

// StyleFor picks the fill for an intensity under cfg
func StyleFor(intensity float64, cfg Config) (DotStyle, error) {
	pal, err := cfg.palette()
	if err != nil {
		return DotStyle{}, err
	}
	return styleFor(intensity, cfg.Opacity, pal), nil
}
