package field

import (
	"fmt"
	"log"
	"math/rand"
	"time"
)

// Options tunes a renderer beyond its Config
type Options struct {
	Rand    *rand.Rand // Source for phases and speeds; seeded from the clock when nil
	Verbose bool       // Log grid regeneration
}

// frameState is everything the frame loop mutates. It is owned by the
// Renderer and only touched on the host's event goroutine.
type frameState struct {
	dots    []Particle
	pointer Vec
	width   float64
	height  float64
	dpr     float64
	stopped bool
	pending FrameID
	queued  bool
	frames  uint64
}

// Renderer animates a dotted glow field on a Surface
type Renderer struct {
	cfg     Config
	pal     palette
	rng     *rand.Rand
	phases  *PhaseField
	verbose bool

	host    Host
	surface Surface
	detach  []func()
	mounted bool

	st frameState
}

// NewRenderer creates a renderer for cfg. The renderer is inert until mounted.
func NewRenderer(cfg Config, opts Options) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid field config: %w", err)
	}
	pal, err := cfg.palette()
	if err != nil {
		return nil, err
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	r := &Renderer{
		cfg:     cfg,
		pal:     pal,
		rng:     rng,
		verbose: opts.Verbose,
		st:      frameState{pointer: Offscreen, dpr: 1},
	}
	if cfg.PhaseNoise > 0 {
		r.phases = NewPhaseField(rng.Int63(), cfg.PhaseNoise)
	}
	return r, nil
}

// Config returns the options the renderer was built with
func (r *Renderer) Config() Config { return r.cfg }

// Mount attaches the renderer to host and starts the frame loop.
// A nil host or surface leaves the renderer inert and returns false.
func (r *Renderer) Mount(host Host, surface Surface) bool {
	if host == nil || surface == nil {
		log.Printf("[Renderer] No drawing surface, field disabled")
		return false
	}
	if r.mounted || r.st.stopped {
		return false
	}
	r.host = host
	r.surface = surface
	r.mounted = true

	r.detach = append(r.detach,
		host.OnPointerMove(r.handlePointerMove),
		host.OnPointerLeave(r.handlePointerLeave),
		host.OnResize(r.handleResize),
	)

	w, h := host.Size()
	r.resize(w, h)
	r.schedule()

	if r.verbose {
		log.Printf("[Renderer] Mounted %.0fx%.0f @%.2fx with %d dots", r.st.width, r.st.height, r.st.dpr, len(r.st.dots))
	}
	return true
}

// Unmount stops the frame loop and detaches every listener.
// Calling it more than once is safe.
func (r *Renderer) Unmount() {
	if r.st.stopped {
		return
	}
	r.st.stopped = true
	if r.st.queued && r.host != nil {
		r.host.CancelFrame(r.st.pending)
	}
	r.st.queued = false
	for _, fn := range r.detach {
		if fn != nil {
			fn()
		}
	}
	r.detach = nil
	r.st.dots = nil
	r.mounted = false
	if r.verbose {
		log.Printf("[Renderer] Unmounted after %d frames", r.st.frames)
	}
}

// Stopped reports whether Unmount has run
func (r *Renderer) Stopped() bool { return r.st.stopped }

// Particles exposes the current particle set. Callers must not keep it
// across a resize, which replaces the slice.
func (r *Renderer) Particles() []Particle { return r.st.dots }

// Pointer returns the last known pointer position, or Offscreen
func (r *Renderer) Pointer() Vec { return r.st.pointer }

// Frames returns the number of frames drawn
func (r *Renderer) Frames() uint64 { return r.st.frames }

// Size returns the logical surface size and device scale
func (r *Renderer) Size() (w, h, dpr float64) { return r.st.width, r.st.height, r.st.dpr }

func (r *Renderer) handlePointerMove(at Vec) {
	if r.st.stopped {
		return
	}
	r.st.pointer = at
}

func (r *Renderer) handlePointerLeave() {
	r.st.pointer = Offscreen
}

func (r *Renderer) handleResize(w, h float64) {
	if r.st.stopped {
		return
	}
	dpr := ClampScale(r.host.DeviceScale())
	if w == r.st.width && h == r.st.height && dpr == r.st.dpr && r.st.dots != nil {
		return
	}
	r.resize(w, h)
}

// resize rebuilds the backing surface and the whole particle set
func (r *Renderer) resize(w, h float64) {
	dpr := ClampScale(r.host.DeviceScale())
	r.st.width, r.st.height, r.st.dpr = w, h, dpr
	r.surface.Resize(w, h, dpr)
	r.st.dots = GenerateGrid(w, h, r.cfg, r.rng, r.phases)
	if r.verbose {
		pw, ph := PhysicalSize(w, h, dpr)
		log.Printf("[Renderer] Regenerated %d dots for %.0fx%.0f (%dx%d px)", len(r.st.dots), w, h, pw, ph)
	}
}

func (r *Renderer) schedule() {
	r.st.pending = r.host.RequestFrame(r.frame)
	r.st.queued = true
}

// frame draws one tick and asks for the next
func (r *Renderer) frame(now time.Duration) {
	r.st.queued = false
	if r.st.stopped {
		return
	}
	r.surface.Clear()

	t := PulseTime(now, r.cfg.SpeedScale)
	pointer := r.st.pointer
	for i := range r.st.dots {
		d := &r.st.dots[i]
		Step(d, pointer, r.cfg)
		r.surface.FillCircle(d.Pos, r.cfg.Radius, styleFor(Intensity(t, d.Speed, d.Phase), r.cfg.Opacity, r.pal))
	}
	r.st.frames++

	r.schedule()
}
