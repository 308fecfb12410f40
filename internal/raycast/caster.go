// Package raycast marches one ray per screen column through a tile map and
// reports the first wall each ray meets.
package raycast

import (
	"math"
	"raycaster/internal/config"
	"raycaster/internal/mathutil"
	"raycaster/internal/world"
)

// HitRecord is the wall a single column's ray ran into.
type HitRecord struct {
	Column   int     // ray index, also the column within the 3D view
	Distance float64 // perpendicular distance, always > 0
	Texture  int     // atlas texture of the wall cell
	TexX     float64 // texture column in [0, textureSize-1]
	CellX    int     // map cell that was hit
	CellY    int
}

// Ray is the outcome of one column's march. EndX/EndY is where marching
// stopped: the hit position, the map edge or the range limit.
type Ray struct {
	Angle      float64
	Hit        HitRecord
	OK         bool
	EndX, EndY float64
}

// Caster casts rays against one map for one texture size.
type Caster struct {
	cfg         config.RenderConfig
	tiles       *world.TileMap
	textureSize int
}

// NewCaster creates a caster. textureSize scales the texture coordinate of hits.
func NewCaster(cfg config.RenderConfig, tiles *world.TileMap, textureSize int) *Caster {
	return &Caster{
		cfg:         cfg,
		tiles:       tiles,
		textureSize: mathutil.IntMax(textureSize, 1),
	}
}

// RayCount returns the number of rays per frame.
func (c *Caster) RayCount() int {
	return c.cfg.RayCount
}

// RayAngle returns the absolute angle of ray i: the rays span the field of
// view evenly, the first on the left edge and the last on the right.
func (c *Caster) RayAngle(pose Pose, i int) float64 {
	n := c.cfg.RayCount
	if n <= 1 {
		return pose.Angle
	}
	return pose.Angle - c.cfg.FOV/2 + float64(i)*(c.cfg.FOV/float64(n-1))
}

// CastRay marches ray i from the viewer. ok is false when the ray leaves
// the map or runs out of range without touching a wall.
func (c *Caster) CastRay(pose Pose, i int) (HitRecord, bool) {
	r := c.march(pose, i)
	return r.Hit, r.OK
}

// Cast marches every ray of the frame.
func (c *Caster) Cast(pose Pose) []Ray {
	rays := make([]Ray, c.cfg.RayCount)
	for i := range rays {
		rays[i] = c.march(pose, i)
	}
	return rays
}

func (c *Caster) march(pose Pose, i int) Ray {
	angle := c.RayAngle(pose, i)
	dx, dy := math.Cos(angle), math.Sin(angle)
	ray := Ray{Angle: angle, EndX: pose.X, EndY: pose.Y}

	// Testing starts one step out so a viewer standing on a wall boundary
	// never hits its own cell at distance zero.
	for k := 1; ; k++ {
		t := float64(k) * c.cfg.Step
		if t >= c.cfg.MaxRange {
			return ray
		}
		wx, wy := pose.X+t*dx, pose.Y+t*dy
		if wx < 0 || wy < 0 {
			return ray
		}
		col, row := int(math.Floor(wx)), int(math.Floor(wy))
		cell, err := c.tiles.CellAt(col, row)
		if err != nil {
			// left the grid
			return ray
		}
		ray.EndX, ray.EndY = wx, wy
		if !cell.Solid {
			continue
		}

		dist := t * math.Cos(angle-pose.Angle)
		if dist <= 0 {
			return ray
		}
		ray.Hit = HitRecord{
			Column:   i,
			Distance: dist,
			Texture:  cell.Texture,
			TexX:     c.textureCoord(wx, wy),
			CellX:    col,
			CellY:    row,
		}
		ray.OK = true
		return ray
	}
}

// textureCoord takes the hit's offset from the nearest grid line on each
// axis, keeps the larger magnitude and scales it to texels.
func (c *Caster) textureCoord(wx, wy float64) float64 {
	hitX := wx - math.Floor(wx+0.5)
	hitY := wy - math.Floor(wy+0.5)
	offset := math.Abs(hitX)
	if math.Abs(hitY) > offset {
		offset = math.Abs(hitY)
	}
	return mathutil.FloatClamp(math.Floor(offset*float64(c.textureSize)), 0, float64(c.textureSize-1))
}
