// Command dotfield-term renders the dotted glow field in a terminal.
//
// Usage:
//
//	go run ./cmd/dotfield-term [flags]
//
// Flags:
//
//	-config <file>   YAML file with field options
//	-seed <n>        Random seed (0 = time based)
//	-verbose         Log grid regeneration to stderr
//
// Move the mouse over the terminal to push the dots around.
// Esc, q or Ctrl-C quits.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/dotted-glow-go/internal/field"
	"github.com/olivierh59500/dotted-glow-go/internal/settings"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var (
	configFlag  = flag.String("config", "", "YAML file with field options")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 = time based)")
	verboseFlag = flag.Bool("verbose", false, "Log grid regeneration to stderr")
)

// TermHost is the terminal container and frame scheduler. It implements field.Host.
type TermHost struct {
	field.Events
	cols, rows int
}

// Size reports the terminal size in logical pixels
func (h *TermHost) Size() (float64, float64) {
	return float64(h.cols) * cellWidth, float64(h.rows) * cellHeight
}

// DeviceScale is always 1 for terminal cells
func (h *TermHost) DeviceScale() float64 { return 1 }

// handleEvent feeds one terminal event to the host. It returns false on quit.
func (h *TermHost) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		h.cols, h.rows = ev.Size()
		h.Resize(h.Size())
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.PointerMove(cellCenter(x, y))
	case *tcell.EventFocus:
		if !ev.Focused {
			h.PointerLeave()
		}
	}
	return true
}

// cellCenter returns the logical position of the middle of a cell
func cellCenter(x, y int) field.Vec {
	return field.Vec{X: (float64(x) + 0.5) * cellWidth, Y: (float64(y) + 0.5) * cellHeight}
}

func run(screen tcell.Screen, r *field.Renderer) {
	host := &TermHost{}
	host.cols, host.rows = screen.Size()
	surface := NewCellSurface(colorful.Color{R: 0.02, G: 0.02, B: 0.04})
	if !r.Mount(host, surface) {
		return
	}
	defer r.Unmount()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	start := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !host.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			if host.Fire(time.Since(start)) > 0 {
				surface.Flush(screen)
			}
		}
	}
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		// The screen owns the terminal; stray log lines would tear it
		log.SetOutput(io.Discard)
	}

	cfg, err := settings.LoadFile(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r, err := field.NewRenderer(cfg, field.Options{
		Rand:    rand.New(rand.NewSource(seed)),
		Verbose: *verboseFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create renderer: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	defer screen.Fini()

	run(screen, r)
}
