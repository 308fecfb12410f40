package control

import (
	"math"
	"raycaster/internal/raycast"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestApply(t *testing.T) {
	s := Speeds{Move: 0.05, Rotate: 0.05}
	start := raycast.Pose{X: 3.5, Y: 2.3, Angle: math.Pi}

	tests := []struct {
		name string
		in   Intent
		want raycast.Pose
	}{
		{"idle", Intent{}, start},
		{"north", Intent{North: true}, raycast.Pose{X: 3.5, Y: 2.25, Angle: math.Pi}},
		{"south", Intent{South: true}, raycast.Pose{X: 3.5, Y: 2.35, Angle: math.Pi}},
		{"west", Intent{West: true}, raycast.Pose{X: 3.45, Y: 2.3, Angle: math.Pi}},
		{"east", Intent{East: true}, raycast.Pose{X: 3.55, Y: 2.3, Angle: math.Pi}},
		{"forward faces west", Intent{Forward: true}, raycast.Pose{X: 3.45, Y: 2.3, Angle: math.Pi}},
		{"backward", Intent{Backward: true}, raycast.Pose{X: 3.55, Y: 2.3, Angle: math.Pi}},
		{"turn right", Intent{TurnRight: true}, raycast.Pose{X: 3.5, Y: 2.3, Angle: math.Pi + 0.05}},
		{"turn left", Intent{TurnLeft: true}, raycast.Pose{X: 3.5, Y: 2.3, Angle: math.Pi - 0.05}},
		{"opposites cancel", Intent{North: true, South: true, TurnLeft: true, TurnRight: true}, start},
	}
	for _, tt := range tests {
		got := Apply(start, tt.in, s)
		if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) || !near(got.Angle, tt.want.Angle) {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestApplyWrapsHeading(t *testing.T) {
	p := Apply(raycast.Pose{Angle: 2*math.Pi - 0.01}, Intent{TurnRight: true}, Speeds{Rotate: 0.05})
	if !near(p.Angle, 0.04) {
		t.Errorf("angle = %v, want 0.04", p.Angle)
	}
	p = Apply(raycast.Pose{Angle: 0.01}, Intent{TurnLeft: true}, Speeds{Rotate: 0.05})
	if !near(p.Angle, 2*math.Pi-0.04) {
		t.Errorf("angle = %v, want 2π-0.04", p.Angle)
	}
}

func TestApplyIgnoresWalls(t *testing.T) {
	p := Apply(raycast.Pose{X: 0.02, Y: 0.02}, Intent{North: true, West: true}, Speeds{Move: 0.05})
	if !near(p.X, -0.03) || !near(p.Y, -0.03) {
		t.Errorf("got %+v, want the viewer off the map", p)
	}
}

func TestIntentAny(t *testing.T) {
	if (Intent{}).Any() {
		t.Error("empty intent reports movement")
	}
	if !(Intent{TurnRight: true}).Any() {
		t.Error("turn not reported")
	}
}
