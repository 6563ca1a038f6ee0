package main

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/dotted-glow-go/internal/field"
)

// Logical pixels covered by one terminal cell
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

// Glyphs for dim and glowing dots
const (
	dimGlyph  = '·'
	glowGlyph = '•'
)

// cell is the strongest dot that landed in a terminal cell this frame
type cell struct {
	set   bool
	alpha float64
	glow  bool
	fill  colorful.Color
}

// CellSurface rasterises dots into terminal cells. It implements field.Surface.
type CellSurface struct {
	cols, rows int
	cells      []cell
	bg         colorful.Color
}

// NewCellSurface creates an empty surface over a background colour
func NewCellSurface(bg colorful.Color) *CellSurface {
	return &CellSurface{bg: bg}
}

// Resize sets the grid to cover w×h logical pixels. Terminal cells have no
// device scale, so dpr is ignored.
func (s *CellSurface) Resize(w, h, dpr float64) {
	s.cols = max(1, int(math.Ceil(w/cellWidth)))
	s.rows = max(1, int(math.Ceil(h/cellHeight)))
	s.cells = make([]cell, s.cols*s.rows)
}

// Clear empties every cell
func (s *CellSurface) Clear() {
	clear(s.cells)
}

// FillCircle marks the cell under the dot centre. A cell keeps its
// brightest dot.
func (s *CellSurface) FillCircle(at field.Vec, radius float64, style field.DotStyle) {
	cx := int(math.Floor(at.X / cellWidth))
	cy := int(math.Floor(at.Y / cellHeight))
	if cx < 0 || cy < 0 || cx >= s.cols || cy >= s.rows {
		return
	}
	alpha := float64(style.Fill.A) / 255 * math.Min(1, style.Alpha)
	c := &s.cells[cy*s.cols+cx]
	if c.set && c.alpha >= alpha {
		return
	}
	*c = cell{
		set:   true,
		alpha: alpha,
		glow:  style.Glowing(),
		fill:  colorful.Color{R: float64(style.Fill.R) / 255, G: float64(style.Fill.G) / 255, B: float64(style.Fill.B) / 255},
	}
}

// Size returns the grid size in cells
func (s *CellSurface) Size() (cols, rows int) { return s.cols, s.rows }

// Flush writes the cells to screen
func (s *CellSurface) Flush(screen tcell.Screen) {
	bg := s.tcellColor(s.bg)
	blank := tcell.StyleDefault.Background(bg)
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			c := s.cells[y*s.cols+x]
			if !c.set {
				screen.SetContent(x, y, ' ', nil, blank)
				continue
			}
			glyph := dimGlyph
			if c.glow {
				glyph = glowGlyph
			}
			screen.SetContent(x, y, glyph, nil, blank.Foreground(s.tcellColor(s.shade(c))))
		}
	}
	screen.Show()
}

// shade blends a dot over the background. Terminals cannot show the
// faint alphas a canvas can, so coverage is lifted with a square root.
func (s *CellSurface) shade(c cell) colorful.Color {
	return s.bg.BlendRgb(c.fill, math.Sqrt(c.alpha)).Clamped()
}

func (s *CellSurface) tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
