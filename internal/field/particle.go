package field

import "math"

// Vec is a point or displacement in logical pixels
type Vec struct {
	X, Y float64
}

// Add returns v+o
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

// Scale returns v*k
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

// Len returns the Euclidean norm
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Offscreen is the pointer position used when no pointer is over the surface.
// It lies further than any sane repel radius from every particle.
var Offscreen = Vec{-1000, -1000}

// Particle struct: one dot of the background grid
type Particle struct {
	Base  Vec     // Rest position, never changes after generation
	Pos   Vec     // Rendered position
	Vel   Vec     // Velocity in pixels per frame
	Phase float64 // Pulse offset in [0, 2π)
	Speed float64 // Pulse rate in [SpeedMin, SpeedMax]
}
