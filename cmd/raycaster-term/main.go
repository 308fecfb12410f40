// Command raycaster-term renders the ray-cast view in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"raycaster/internal/config"
	"raycaster/internal/logging"
	"raycaster/internal/scene"
	"raycaster/internal/terminal"

	"github.com/gdamore/tcell/v2"
)

var (
	configPath = flag.String("config", "config.yaml", "path to the YAML configuration")
	logPath    = flag.String("log", "", "write logs to this file (the terminal is busy drawing)")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "raycaster-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfigOrDefault(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logging.Setup(logOut, cfg.Logging.Level)

	s, err := scene.Load(cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := terminal.NewApp(screen, s.Compositor, s.StartPose(), s.Speeds())
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
