package main

import (
	"flag"
	"fmt"
	"os"
	"raycaster/internal/config"
	"raycaster/internal/game"
	"raycaster/internal/logging"
	"raycaster/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
)

var configPath = flag.String("config", "config.yaml", "path to the YAML configuration")

func main() {
	flag.Parse()

	cfg, err := config.LoadConfigOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logging.Setup(os.Stderr, cfg.Logging.Level)

	s, err := scene.Load(cfg)
	if err != nil {
		log.Error("startup failed", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(game.NewGame(s)); err != nil {
		log.Error("game exited", "error", err)
		os.Exit(1)
	}
}
