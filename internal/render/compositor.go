// Package render composes a frame: the map overview on one side of the
// canvas and the ray-cast first-person view on the other.
package render

import (
	"fmt"
	"math"
	"raycaster/internal/canvas"
	"raycaster/internal/config"
	"raycaster/internal/logging"
	"raycaster/internal/raycast"
	"raycaster/internal/texture"
	"raycaster/internal/world"
)

// overviewBackground fills the overview strip outside the map cells.
const overviewBackground = canvas.Black

// FrameStats summarises one rendered frame.
type FrameStats struct {
	Rays int
	Hits int
}

// Compositor draws complete frames. It keeps no state between frames; the
// pose and canvas are supplied on every call.
type Compositor struct {
	cfg     config.RenderConfig
	tiles   *world.TileMap
	caster  *raycast.Caster
	columns *ColumnRenderer
}

// NewCompositor checks the configuration and the map against the atlas.
// Any failure here is a load-time error and the frame loop must not start.
func NewCompositor(cfg config.RenderConfig, tiles *world.TileMap, atlas *texture.Atlas) (*Compositor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tiles.Width() != cfg.MapWidth || tiles.Height() != cfg.MapHeight {
		return nil, fmt.Errorf("%w: map is %dx%d, configured for %dx%d",
			config.ErrInvalidConfig, tiles.Width(), tiles.Height(), cfg.MapWidth, cfg.MapHeight)
	}
	if err := tiles.ValidateTextures(atlas.Count()); err != nil {
		return nil, err
	}
	return &Compositor{
		cfg:     cfg,
		tiles:   tiles,
		caster:  raycast.NewCaster(cfg, tiles, atlas.Size()),
		columns: NewColumnRenderer(cfg, atlas),
	}, nil
}

// Config returns the render configuration in use.
func (fc *Compositor) Config() config.RenderConfig {
	return fc.cfg
}

// SetDrawRays turns the overview ray trace on or off for later frames.
func (fc *Compositor) SetDrawRays(on bool) {
	fc.cfg.DrawRays = on
}

// Render draws one frame for pose into c. Every pixel of c is rewritten.
func (fc *Compositor) Render(c *canvas.Canvas, pose raycast.Pose) FrameStats {
	fc.clearOverview(c)
	fc.clearView(c)
	fc.drawOverview(c)
	fc.drawMarker(c, pose)

	stats := FrameStats{Rays: fc.caster.RayCount()}
	for i, ray := range fc.caster.Cast(pose) {
		if fc.cfg.DrawRays {
			fc.drawTrace(c, pose, ray)
		}
		if !ray.OK {
			continue
		}
		if err := fc.columns.DrawColumn(c, ray.Hit); err != nil {
			logging.Logger().Debug("column skipped", "ray", i, "error", err)
			continue
		}
		stats.Hits++
	}
	return stats
}

// clearOverview blanks the strip left of the 3D view, including any margin
// the map cells do not cover.
func (fc *Compositor) clearOverview(c *canvas.Canvas) {
	c.FillRect(0, 0, fc.cfg.ViewX, c.Height(), overviewBackground)
}

// clearView paints the 3D view region with sky above the horizon and floor below.
func (fc *Compositor) clearView(c *canvas.Canvas) {
	w := c.Width() - fc.cfg.ViewX
	horizon := fc.columns.Horizon()
	fc.fillViewRows(c, w, 0, horizon, fc.cfg.SkyColor)
	fc.fillViewRows(c, w, horizon, c.Height()-horizon, fc.cfg.FloorColor)
}

func (fc *Compositor) fillViewRows(c *canvas.Canvas, w, y, h int, col canvas.Color) {
	if y < 0 {
		h += y
		y = 0
	}
	c.FillRect(fc.cfg.ViewX, y, w, h, col)
}

// drawOverview draws every map cell as a CellWidth x CellHeight block.
func (fc *Compositor) drawOverview(c *canvas.Canvas) {
	cw, ch := fc.cfg.CellWidth, fc.cfg.CellHeight
	if cw <= 0 || ch <= 0 {
		return
	}
	for row := 0; row < fc.tiles.Height(); row++ {
		for col := 0; col < fc.tiles.Width(); col++ {
			color := fc.cfg.MapEmptyColor
			if fc.tiles.IsWall(col, row) {
				color = fc.cfg.MapWallColor
			}
			c.FillRect(col*cw, row*ch, cw, ch, color)
		}
	}
}

func (fc *Compositor) drawMarker(c *canvas.Canvas, pose raycast.Pose) {
	x, y := fc.toOverview(pose.X, pose.Y)
	c.FillRect(x, y, fc.cfg.MarkerSize, fc.cfg.MarkerSize, fc.cfg.MarkerColor)
}

// drawTrace dots the ray's path on the overview, one dot per march step.
func (fc *Compositor) drawTrace(c *canvas.Canvas, pose raycast.Pose, ray raycast.Ray) {
	length := math.Hypot(ray.EndX-pose.X, ray.EndY-pose.Y)
	dx, dy := math.Cos(ray.Angle), math.Sin(ray.Angle)
	for t := fc.cfg.Step; t < length; t += fc.cfg.Step {
		x, y := fc.toOverview(pose.X+t*dx, pose.Y+t*dy)
		c.SetPixel(x, y, fc.cfg.RayColor)
	}
}

func (fc *Compositor) toOverview(wx, wy float64) (int, int) {
	return int(math.Floor(wx * float64(fc.cfg.CellWidth))), int(math.Floor(wy * float64(fc.cfg.CellHeight)))
}
