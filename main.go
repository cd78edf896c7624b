package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/particle-canvas/internal/config"
	"github.com/iburimskiy/particle-canvas/internal/host"
)

const (
	windowWidth  = 1280
	windowHeight = 800
)

func main() {
	var (
		effect  = flag.String("effect", "", "animation to run: dots or pixels (overrides the config file)")
		cfgPath = flag.String("config", "", "TOML config file")
		seed    = flag.Uint64("seed", 0, "random seed, 0 seeds from the clock")
		width   = flag.Int("width", windowWidth, "initial window width")
		height  = flag.Int("height", windowHeight, "initial window height")
	)
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}
	if *effect != "" {
		cfg.Effect = *effect
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	cfg = config.Normalize(cfg)

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Particle Canvas - Move the pointer, wheel scrolls, O: open config, F3: stats, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := host.NewGame(cfg)
	err := ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
