package main

import (
	"image/color"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/dotted-glow-go/internal/field"
	"github.com/olivierh59500/dotted-glow-go/internal/settings"
)

// Page background behind the transparent canvas
var background = color.RGBA{5, 5, 10, 255}

// Game struct: the desktop host. It is the renderer's container and
// display-refresh scheduler, and implements both field.Host and ebiten.Game.
type Game struct {
	field.Events

	Renderer *field.Renderer
	Canvas   *Canvas
	surface  field.Surface // Where renderers mount, normally Canvas
	Config   field.Config
	Presets  *settings.Store
	Preset   string
	Verbose  bool

	Width, Height float64 // Container size in logical pixels
	Scale         float64 // Device scale used by the last layout
	sizeDirty     bool

	Cursor       field.Vec
	CursorInside bool

	start time.Time
	rng   *rand.Rand
	quit  bool
}

// NewGame creates the host and mounts a renderer for cfg
func NewGame(width, height float64, cfg field.Config, seed int64, presets *settings.Store, preset string, verbose bool) (*Game, error) {
	canvas := NewCanvas()
	g := &Game{
		Canvas:  canvas,
		surface: canvas,
		Config:  cfg,
		Presets: presets,
		Preset:  preset,
		Verbose: verbose,
		Width:   width,
		Height:  height,
		Scale:   deviceScale(),
		start:   time.Now(),
		rng:     rand.New(rand.NewSource(seed)),
	}
	if err := g.remount(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

// Size reports the container size in logical pixels
func (g *Game) Size() (float64, float64) { return g.Width, g.Height }

// DeviceScale reports the physical pixels per logical pixel
func (g *Game) DeviceScale() float64 { return g.Scale }

// remount replaces the renderer. Options are fixed for a renderer's
// lifetime, so any change means a fresh one.
func (g *Game) remount(cfg field.Config) error {
	r, err := field.NewRenderer(cfg, field.Options{
		Rand:    rand.New(rand.NewSource(g.rng.Int63())),
		Verbose: g.Verbose,
	})
	if err != nil {
		return err
	}
	if g.Renderer != nil {
		g.Renderer.Unmount()
	}
	g.Config = cfg
	g.Renderer = r
	r.Mount(g, g.surface)
	if g.CursorInside {
		g.PointerMove(g.Cursor)
	}
	return nil
}

// Update is called once per display refresh by Ebitengine
func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	// Handle input
	g.handleInput()
	if g.teardown(ebiten.IsWindowBeingClosed()) {
		return ebiten.Termination
	}

	if g.sizeDirty {
		g.sizeDirty = false
		g.Resize(g.Width, g.Height)
	}
	g.trackCursor()

	g.Fire(time.Since(g.start))
	return nil
}

// teardown unmounts the renderer when a quit key was pressed or the
// window is closing, and reports whether the game should stop.
func (g *Game) teardown(closing bool) bool {
	if !g.quit && !closing {
		return false
	}
	g.quit = true
	g.Renderer.Unmount()
	return true
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if img := g.Canvas.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
}

// Layout sizes the screen in physical pixels so the canvas stays sharp on
// high-density displays. Size changes reach the renderer on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := deviceScale()
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != g.Width || h != g.Height || scale != g.Scale {
		g.Width, g.Height, g.Scale = w, h, scale
		g.sizeDirty = true
	}
	return field.PhysicalSize(w, h, scale)
}

// trackCursor turns cursor polling into move and leave events
func (g *Game) trackCursor() {
	cx, cy := ebiten.CursorPosition()
	at := screenToLogical(cx, cy, g.Scale)
	inside := ebiten.IsFocused() && insideContainer(at, g.Width, g.Height)

	switch cursorEvent(g.CursorInside, g.Cursor, at, inside) {
	case cursorMove:
		g.PointerMove(at)
	case cursorLeave:
		g.PointerLeave()
	}
	g.Cursor, g.CursorInside = at, inside
}

// cursorChange is the event one cursor sample produces
type cursorChange int

const (
	cursorNone cursorChange = iota
	cursorMove
	cursorLeave
)

// cursorEvent compares a cursor sample with the previous one
func cursorEvent(wasInside bool, prev, at field.Vec, inside bool) cursorChange {
	switch {
	case inside && (!wasInside || at != prev):
		return cursorMove
	case !inside && wasInside:
		return cursorLeave
	}
	return cursorNone
}

// handleInput processes keyboard input
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.quit = true
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		// New phases and speeds, same options
		if err := g.remount(g.Config); err != nil {
			log.Printf("[Game] Reseed failed: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.savePreset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.loadPreset()
	}
}

// savePreset stores the active options
func (g *Game) savePreset() {
	if g.Presets == nil {
		return
	}
	if err := g.Presets.Save(g.Preset, g.Config); err != nil {
		log.Printf("[Game] Warning: %v", err)
	}
}

// loadPreset swaps in the stored options
func (g *Game) loadPreset() {
	if g.Presets == nil {
		return
	}
	cfg, ok, err := g.Presets.Load(g.Preset)
	if err != nil {
		log.Printf("[Game] Warning: %v", err)
		return
	}
	if !ok {
		log.Printf("[Game] No preset %q", g.Preset)
		return
	}
	if err := g.remount(cfg); err != nil {
		log.Printf("[Game] Warning: preset %q: %v", g.Preset, err)
	}
}

// deviceScale reads the scale of the window's monitor, 1 when unknown
func deviceScale() float64 {
	m := ebiten.Monitor()
	if m == nil {
		return 1
	}
	return field.ClampScale(m.DeviceScaleFactor())
}

// screenToLogical converts a cursor position in screen pixels to logical pixels
func screenToLogical(x, y int, scale float64) field.Vec {
	return field.Vec{X: float64(x) / scale, Y: float64(y) / scale}
}

// insideContainer reports whether a logical point lies on the surface
func insideContainer(at field.Vec, w, h float64) bool {
	if math.IsNaN(at.X) || math.IsNaN(at.Y) {
		return false
	}
	return at.X >= 0 && at.Y >= 0 && at.X < w && at.Y < h
}
