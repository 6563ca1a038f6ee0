package field

import (
	"math"
	"time"
)

// FrameID identifies a scheduled frame callback
type FrameID uint64

// Host is the environment a renderer is mounted into: a container with a
// size and pointer events, and a display-refresh scheduler. All callbacks
// are invoked on the host's single event goroutine.
type Host interface {
	// Size returns the container size in logical pixels
	Size() (w, h float64)
	// DeviceScale returns the physical-to-logical pixel ratio
	DeviceScale() float64

	OnPointerMove(fn func(at Vec)) (detach func())
	OnPointerLeave(fn func()) (detach func())
	OnResize(fn func(w, h float64)) (detach func())

	// RequestFrame runs fn once at the next display refresh with the time
	// elapsed since the host started.
	RequestFrame(fn func(now time.Duration)) FrameID
	// CancelFrame drops a pending request. Unknown or already fired ids are ignored.
	CancelFrame(id FrameID)
}

// Surface is a 2D drawing target sized to the container
type Surface interface {
	// Resize sets the backing store to PhysicalSize(w, h, dpr) and the
	// drawing scale to dpr, so callers keep drawing in logical pixels.
	Resize(w, h, dpr float64)
	// Clear fills the surface with transparent pixels
	Clear()
	// FillCircle draws a filled dot
	FillCircle(center Vec, radius float64, style DotStyle)
}

// PhysicalSize returns the backing-store size for a logical size, at least 1×1
func PhysicalSize(w, h, dpr float64) (int, int) {
	pw := int(math.Floor(w * dpr))
	ph := int(math.Floor(h * dpr))
	return max(1, pw), max(1, ph)
}

// ClampScale keeps a device pixel ratio at 1 or above
func ClampScale(dpr float64) float64 {
	if math.IsNaN(dpr) || dpr < 1 {
		return 1
	}
	return dpr
}
