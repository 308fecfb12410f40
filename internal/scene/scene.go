// Package scene assembles everything a frontend needs from a Config: the
// map, the texture atlas and a validated compositor.
package scene

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"raycaster/internal/canvas"
	"raycaster/internal/config"
	"raycaster/internal/control"
	"raycaster/internal/logging"
	"raycaster/internal/raycast"
	"raycaster/internal/render"
	"raycaster/internal/texture"
	"raycaster/internal/world"
)

// Scene is a loaded, ready-to-render world.
type Scene struct {
	Config     *config.Config
	Tiles      *world.TileMap
	Atlas      *texture.Atlas
	Compositor *render.Compositor
}

// Load reads the configured map and atlas and builds the compositor. A
// missing map or atlas file falls back to the built-in map or placeholder
// textures; every other problem is returned.
func Load(cfg *config.Config) (*Scene, error) {
	tiles, err := loadTiles(cfg.World.MapFile)
	if err != nil {
		return nil, err
	}
	atlas, err := texture.LoadOrPlaceholder(cfg.Textures.AtlasFile, cfg.Textures.TextureCount, cfg.Textures.PlaceholderSize)
	if err != nil {
		return nil, fmt.Errorf("load atlas: %w", err)
	}
	fc, err := render.NewCompositor(cfg.RenderConfig(tiles.Width(), tiles.Height()), tiles, atlas)
	if err != nil {
		return nil, fmt.Errorf("build renderer: %w", err)
	}
	return &Scene{Config: cfg, Tiles: tiles, Atlas: atlas, Compositor: fc}, nil
}

func loadTiles(path string) (*world.TileMap, error) {
	if path == "" {
		return world.DefaultTileMap(), nil
	}
	tiles, err := world.LoadTileMap(path)
	if errors.Is(err, os.ErrNotExist) {
		logging.Logger().Warn("map file not found, using built-in map", "path", path)
		return world.DefaultTileMap(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load map: %w", err)
	}
	return tiles, nil
}

// StartPose returns the configured initial viewer pose.
func (s *Scene) StartPose() raycast.Pose {
	return raycast.Pose{
		X:     s.Config.Viewer.StartX,
		Y:     s.Config.Viewer.StartY,
		Angle: s.Config.GetStartAngle(),
	}.Normalized()
}

// Speeds returns the configured per-tick movement steps.
func (s *Scene) Speeds() control.Speeds {
	return control.Speeds{
		Move:   s.Config.GetMoveSpeed(),
		Rotate: s.Config.GetRotSpeed(),
	}
}

// Snapshot renders a single frame for pose and writes it to w as PNG.
func (s *Scene) Snapshot(w io.Writer, pose raycast.Pose) (render.FrameStats, error) {
	rc := s.Compositor.Config()
	c := canvas.New(rc.CanvasWidth, rc.CanvasHeight)
	stats := s.Compositor.Render(c, pose)
	if err := png.Encode(w, c); err != nil {
		return stats, fmt.Errorf("encode snapshot: %w", err)
	}
	return stats, nil
}
