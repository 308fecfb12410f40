// Command raycaster-snapshot renders one frame without a window and saves it as PNG.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"raycaster/internal/config"
	"raycaster/internal/logging"
	"raycaster/internal/scene"
	"strconv"
)

var (
	configPath = flag.String("config", "config.yaml", "path to the YAML configuration")
	outPath    = flag.String("out", "frame.png", "output PNG file")
	pose       = poseFlags{}
)

// poseFlags overrides parts of the configured start pose; unset fields keep it.
type poseFlags struct {
	x, y, angle *float64
}

func floatFlag(dst **float64, name, usage string) {
	flag.Func(name, usage, func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	})
}

func init() {
	floatFlag(&pose.x, "x", "viewer x in map cells")
	floatFlag(&pose.y, "y", "viewer y in map cells")
	floatFlag(&pose.angle, "angle", "viewer heading in degrees")
}

func main() {
	flag.Parse()
	if abs, err := filepath.Abs(*outPath); err == nil {
		*outPath = abs
	}
	ensureRuntimeCWD()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "raycaster-snapshot: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if pose.x != nil {
		cfg.Viewer.StartX = *pose.x
	}
	if pose.y != nil {
		cfg.Viewer.StartY = *pose.y
	}
	if pose.angle != nil {
		cfg.Viewer.StartAngle = *pose.angle
	}
	log := logging.Setup(os.Stderr, cfg.Logging.Level)

	s, err := scene.Load(cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(*outPath)
	if err != nil {
		return err
	}
	stats, err := s.Snapshot(f, s.StartPose())
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	log.Info("snapshot written", "path", *outPath, "rays", stats.Rays, "hits", stats.Hits)
	return nil
}

// loadConfig insists on a config named with -config; the default path may
// be absent and then the built-in configuration is used.
func loadConfig() (*config.Config, error) {
	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	if explicit {
		return config.MustLoadConfig(*configPath), nil
	}
	return config.LoadConfigOrDefault(*configPath)
}

// ensureRuntimeCWD moves to the executable's directory when config.yaml is
// not in the working directory, so relative asset paths still resolve.
func ensureRuntimeCWD() {
	if _, err := os.Stat(*configPath); err == nil || filepath.IsAbs(*configPath) {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	_ = os.Chdir(filepath.Dir(exe))
}
