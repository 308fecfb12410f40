package raycast

import (
	"math"
	"raycaster/internal/mathutil"
)

// Pose is the viewer's position in map-cell units and heading in radians.
// The caller owns it and passes it by value into every frame.
type Pose struct {
	X, Y  float64
	Angle float64
}

// Normalized returns the pose with its heading wrapped into [0, 2π).
func (p Pose) Normalized() Pose {
	p.Angle = mathutil.NormalizeAngle(p.Angle)
	return p
}

// Rotate returns the pose turned by delta radians.
func (p Pose) Rotate(delta float64) Pose {
	p.Angle += delta
	return p.Normalized()
}

// Translate returns the pose moved by (dx, dy) map cells.
func (p Pose) Translate(dx, dy float64) Pose {
	p.X += dx
	p.Y += dy
	return p
}

// Forward returns the unit vector of the heading.
func (p Pose) Forward() (float64, float64) {
	return math.Cos(p.Angle), math.Sin(p.Angle)
}

// Right returns the unit vector a quarter turn clockwise of the heading.
func (p Pose) Right() (float64, float64) {
	return math.Cos(p.Angle + math.Pi/2), math.Sin(p.Angle + math.Pi/2)
}
