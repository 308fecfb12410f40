package config

import (
	"fmt"
	"math"
	"raycaster/internal/canvas"
)

// RenderConfig is everything the ray caster and compositor need for one
// session. The core reads every size and tuning value from here.
type RenderConfig struct {
	CanvasWidth  int
	CanvasHeight int

	MapWidth   int
	MapHeight  int
	CellWidth  int // overview pixels per map cell
	CellHeight int

	FOV      float64 // radians
	RayCount int
	MaxRange float64 // map cells
	Step     float64 // map cells

	VerticalOffset int // pixels added to the strip's vertical centre
	ViewX          int // canvas column of ray 0
	MarkerSize     int
	DrawRays       bool

	SkyColor      canvas.Color
	FloorColor    canvas.Color
	MapEmptyColor canvas.Color
	MapWallColor  canvas.Color
	MarkerColor   canvas.Color
	RayColor      canvas.Color
}

// DefaultRenderConfig returns the built-in parameters for a 16x16 map.
func DefaultRenderConfig() RenderConfig {
	return Default().RenderConfig(16, 16)
}

// Validate rejects parameters the core cannot render with.
func (rc RenderConfig) Validate() error {
	switch {
	case rc.CanvasWidth <= 0 || rc.CanvasHeight <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidConfig, rc.CanvasWidth, rc.CanvasHeight)
	case rc.MapWidth <= 0 || rc.MapHeight <= 0:
		return fmt.Errorf("%w: map %dx%d", ErrInvalidConfig, rc.MapWidth, rc.MapHeight)
	case rc.CellWidth < 0 || rc.CellHeight < 0:
		return fmt.Errorf("%w: cell size %dx%d", ErrInvalidConfig, rc.CellWidth, rc.CellHeight)
	case !(rc.FOV > 0 && rc.FOV < math.Pi):
		return fmt.Errorf("%w: field of view %.4f rad must be in (0, π)", ErrInvalidConfig, rc.FOV)
	case rc.RayCount < 1:
		return fmt.Errorf("%w: ray count %d", ErrInvalidConfig, rc.RayCount)
	case !(rc.Step > 0):
		return fmt.Errorf("%w: step size %v", ErrInvalidConfig, rc.Step)
	case !(rc.MaxRange > rc.Step):
		return fmt.Errorf("%w: max range %v must exceed step %v", ErrInvalidConfig, rc.MaxRange, rc.Step)
	}
	return nil
}
