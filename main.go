package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/dotted-glow-go/internal/settings"
)

var (
	configFlag  = flag.String("config", "", "YAML file with field options")
	presetFlag  = flag.String("preset", "default", "Preset name used by the S and L keys")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 = time based)")
	widthFlag   = flag.Int("width", 1024, "Window width")
	heightFlag  = flag.Int("height", 640, "Window height")
	verboseFlag = flag.Bool("verbose", false, "Log grid regeneration")
)

func main() {
	flag.Parse()

	cfg, err := settings.LoadFile(*configFlag)
	if err != nil {
		log.Fatal(err)
	}
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Initialize the field host
	game, err := NewGame(float64(*widthFlag), float64(*heightFlag), cfg, seed,
		settings.OpenStore("dotted-glow"), *presetFlag, *verboseFlag)
	if err != nil {
		log.Fatal(err)
	}

	// Set up Ebitengine game
	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("Dotted Glow")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS) // One Update per display refresh
	ebiten.SetWindowClosingHandled(true) // Update unmounts before exiting

	// Run the game loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
