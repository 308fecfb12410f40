// Package control maps frontend key state onto viewer movement. Both the
// window and the terminal frontend feed it.
package control

import (
	"raycaster/internal/raycast"
)

// Intent is the set of movement commands active during one tick.
type Intent struct {
	// map-axis moves: north is -Y, east is +X
	North, South, West, East bool

	Forward, Backward   bool // along the heading
	TurnLeft, TurnRight bool
}

// Any reports whether the intent moves or turns the viewer at all.
func (in Intent) Any() bool {
	return in.North || in.South || in.West || in.East ||
		in.Forward || in.Backward || in.TurnLeft || in.TurnRight
}

// Speeds are per-tick step sizes.
type Speeds struct {
	Move   float64 // map cells
	Rotate float64 // radians
}

// Apply returns p advanced by one tick of in. There is no collision: the
// viewer can walk through walls and off the map.
func Apply(p raycast.Pose, in Intent, s Speeds) raycast.Pose {
	if in.TurnLeft {
		p = p.Rotate(-s.Rotate)
	}
	if in.TurnRight {
		p = p.Rotate(s.Rotate)
	}

	var dx, dy float64
	if in.North {
		dy -= s.Move
	}
	if in.South {
		dy += s.Move
	}
	if in.West {
		dx -= s.Move
	}
	if in.East {
		dx += s.Move
	}

	fx, fy := p.Forward()
	if in.Forward {
		dx += fx * s.Move
		dy += fy * s.Move
	}
	if in.Backward {
		dx -= fx * s.Move
		dy -= fy * s.Move
	}
	return p.Translate(dx, dy)
}
