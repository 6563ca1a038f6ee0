package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/dotted-glow-go/internal/field"
)

// Glow sprite size in pixels
const glowSpriteSize = 64

// Canvas is the offscreen backing store the field draws into.
// It implements field.Surface.
type Canvas struct {
	image *ebiten.Image
	scale float64
	glow  *ebiten.Image
}

// NewCanvas creates a canvas; its image is allocated on the first Resize
func NewCanvas() *Canvas {
	return &Canvas{scale: 1, glow: newGlowSprite(glowSpriteSize)}
}

// Image returns the backing image, nil before the first Resize
func (c *Canvas) Image() *ebiten.Image { return c.image }

// Resize reallocates the backing image at physical resolution
func (c *Canvas) Resize(w, h, dpr float64) {
	pw, ph := field.PhysicalSize(w, h, dpr)
	c.scale = dpr
	if c.image != nil {
		if b := c.image.Bounds(); b.Dx() == pw && b.Dy() == ph {
			return
		}
		c.image.Deallocate()
	}
	c.image = ebiten.NewImage(pw, ph)
}

// Clear makes every pixel transparent
func (c *Canvas) Clear() {
	if c.image != nil {
		c.image.Clear()
	}
}

// FillCircle draws a dot in logical coordinates, with an additive glow
// when the style asks for one.
func (c *Canvas) FillCircle(at field.Vec, radius float64, style field.DotStyle) {
	if c.image == nil {
		return
	}
	x, y := at.X*c.scale, at.Y*c.scale

	if style.Glowing() {
		// The sprite falls off to nothing at its edge, so size it to radius+blur
		extent := (radius + style.Blur) * c.scale
		k := 2 * extent / glowSpriteSize
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(k, k)
		op.GeoM.Translate(x-extent, y-extent)
		op.ColorScale.ScaleWithColor(style.Fill)
		op.ColorScale.ScaleAlpha(float32(style.Alpha))
		op.Blend = ebiten.BlendLighter
		op.Filter = ebiten.FilterLinear
		c.image.DrawImage(c.glow, op)
	}

	fill := style.Fill
	fill.A = uint8(math.Round(float64(fill.A) * math.Min(1, style.Alpha)))
	vector.DrawFilledCircle(c.image, float32(x), float32(y), float32(radius*c.scale), fill, true)
}

// newGlowSprite builds a white radial falloff used to fake a blurred shadow
func newGlowSprite(size int) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			dx := (float64(px) + 0.5 - half) / half
			dy := (float64(py) + 0.5 - half) / half
			d2 := dx*dx + dy*dy
			if d2 >= 1 {
				continue
			}
			// Gaussian-ish, faded to zero at the rim
			a := math.Exp(-4*d2) * (1 - d2)
			v := uint8(math.Round(a * 255))
			img.SetRGBA(px, py, color.RGBA{v, v, v, v})
		}
	}
	return ebiten.NewImageFromImage(img)
}
