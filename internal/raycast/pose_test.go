package raycast

import (
	"math"
	"testing"
)

func TestPoseRotateNormalizes(t *testing.T) {
	p := Pose{Angle: 2*math.Pi - 0.01}.Rotate(0.05)
	if math.Abs(p.Angle-0.04) > 1e-9 {
		t.Errorf("angle = %v, want 0.04", p.Angle)
	}
	p = Pose{Angle: 0.01}.Rotate(-0.05)
	if p.Angle < 0 || p.Angle >= 2*math.Pi {
		t.Errorf("angle %v outside [0, 2π)", p.Angle)
	}
}

func TestPoseDirections(t *testing.T) {
	p := Pose{Angle: math.Pi / 2}
	fx, fy := p.Forward()
	if math.Abs(fx) > 1e-9 || math.Abs(fy-1) > 1e-9 {
		t.Errorf("forward = (%v, %v)", fx, fy)
	}
	rx, ry := p.Right()
	if math.Abs(rx+1) > 1e-9 || math.Abs(ry) > 1e-9 {
		t.Errorf("right = (%v, %v)", rx, ry)
	}
	moved := p.Translate(0.5, -0.25)
	if moved.X != 0.5 || moved.Y != -0.25 || moved.Angle != p.Angle {
		t.Errorf("translate = %+v", moved)
	}
}
