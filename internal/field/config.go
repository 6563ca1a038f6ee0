package field

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Default field options
const (
	DefaultGap           = 35.0
	DefaultRadius        = 1.0
	DefaultColor         = "rgba(255, 255, 255, 0.05)"
	DefaultGlowColor     = "rgba(59, 130, 246, 0.4)"
	DefaultOpacity       = 1.0
	DefaultSpeedMin      = 0.5
	DefaultSpeedMax      = 1.5
	DefaultSpeedScale    = 0.3
	DefaultRepelRadius   = 150.0
	DefaultRepelStrength = 0.5

	MinGap = 1.0 // Smallest grid spacing in logical pixels
)

// Config holds the renderer options. It is immutable for a renderer's lifetime.
type Config struct {
	Gap           float64 `yaml:"gap"`
	Radius        float64 `yaml:"radius"`
	Color         string  `yaml:"color"`
	GlowColor     string  `yaml:"glowColor"`
	Opacity       float64 `yaml:"opacity"`
	SpeedMin      float64 `yaml:"speedMin"`
	SpeedMax      float64 `yaml:"speedMax"`
	SpeedScale    float64 `yaml:"speedScale"`
	RepelRadius   float64 `yaml:"repelRadius"`
	RepelStrength float64 `yaml:"repelStrength"`

	// PhaseNoise > 0 draws phases from a Perlin field sampled at
	// Base*PhaseNoise instead of uniformly at random.
	PhaseNoise float64 `yaml:"phaseNoise,omitempty"`
}

// DefaultConfig returns the stock options
func DefaultConfig() Config {
	return Config{
		Gap:           DefaultGap,
		Radius:        DefaultRadius,
		Color:         DefaultColor,
		GlowColor:     DefaultGlowColor,
		Opacity:       DefaultOpacity,
		SpeedMin:      DefaultSpeedMin,
		SpeedMax:      DefaultSpeedMax,
		SpeedScale:    DefaultSpeedScale,
		RepelRadius:   DefaultRepelRadius,
		RepelStrength: DefaultRepelStrength,
	}
}

// Validate reports every invalid option at once
func (c Config) Validate() error {
	var errs []error
	numbers := []struct {
		name string
		v    float64
	}{
		{"gap", c.Gap},
		{"radius", c.Radius},
		{"opacity", c.Opacity},
		{"speedMin", c.SpeedMin},
		{"speedMax", c.SpeedMax},
		{"speedScale", c.SpeedScale},
		{"repelRadius", c.RepelRadius},
		{"repelStrength", c.RepelStrength},
		{"phaseNoise", c.PhaseNoise},
	}
	for _, n := range numbers {
		if math.IsNaN(n.v) || math.IsInf(n.v, 0) {
			errs = append(errs, fmt.Errorf("%s must be finite, got %v", n.name, n.v))
		}
	}
	if c.Gap < MinGap {
		errs = append(errs, fmt.Errorf("gap must be at least %v, got %v", MinGap, c.Gap))
	}
	if c.Radius < 0 {
		errs = append(errs, fmt.Errorf("radius must not be negative, got %v", c.Radius))
	}
	if c.Opacity < 0 {
		errs = append(errs, fmt.Errorf("opacity must not be negative, got %v", c.Opacity))
	}
	if c.SpeedMin > c.SpeedMax {
		errs = append(errs, fmt.Errorf("speedMin %v exceeds speedMax %v", c.SpeedMin, c.SpeedMax))
	}
	if c.RepelRadius < 0 {
		errs = append(errs, fmt.Errorf("repelRadius must not be negative, got %v", c.RepelRadius))
	}
	if c.PhaseNoise < 0 {
		errs = append(errs, fmt.Errorf("phaseNoise must not be negative, got %v", c.PhaseNoise))
	}
	if _, err := ParseColor(c.Color); err != nil {
		errs = append(errs, fmt.Errorf("color: %w", err))
	}
	if _, err := ParseColor(c.GlowColor); err != nil {
		errs = append(errs, fmt.Errorf("glowColor: %w", err))
	}
	return errors.Join(errs...)
}

// palette is the parsed form of the two configured colours
type palette struct {
	base color.NRGBA
	glow color.NRGBA
}

func (c Config) palette() (palette, error) {
	base, err := ParseColor(c.Color)
	if err != nil {
		return palette{}, fmt.Errorf("color: %w", err)
	}
	glow, err := ParseColor(c.GlowColor)
	if err != nil {
		return palette{}, fmt.Errorf("glowColor: %w", err)
	}
	return palette{base: base, glow: glow}, nil
}

// ParseColor accepts CSS-style colours: #rgb, #rrggbb, #rrggbbaa,
// rgb(r, g, b) and rgba(r, g, b, a) with a in [0,1].
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgba("):len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgb("):len(s)-1], 3)
	}
	return color.NRGBA{}, fmt.Errorf("unsupported colour %q", s)
}

func parseHex(s string) (color.NRGBA, error) {
	alpha := uint8(255)
	switch len(s) {
	case 4: // #rgb
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	case 9: // #rrggbbaa
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("bad alpha in %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad hex colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

func parseFunc(args string, n int) (color.NRGBA, error) {
	parts := strings.Split(args, ",")
	if len(parts) != n {
		return color.NRGBA{}, fmt.Errorf("want %d components, got %d", n, len(parts))
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("component %d: %w", i, err)
		}
		ch[i] = uint8(math.Round(clamp(v, 0, 255)))
	}
	alpha := uint8(255)
	if n == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("alpha: %w", err)
		}
		alpha = uint8(math.Round(clamp(a, 0, 1) * 255))
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
