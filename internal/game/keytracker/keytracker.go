// Package keytracker turns per-frame key state into press edges.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PressedFunc reports whether key is held during the current frame.
type PressedFunc func(key ebiten.Key) bool

// Tracker samples a fixed set of keys once per frame.
type Tracker struct {
	pressed PressedFunc
	keys    []ebiten.Key
	held    map[ebiten.Key]bool
	just    map[ebiten.Key]bool
}

// New tracks keys through pressed; nil means ebiten.IsKeyPressed.
func New(pressed PressedFunc, keys ...ebiten.Key) *Tracker {
	if pressed == nil {
		pressed = ebiten.IsKeyPressed
	}
	return &Tracker{
		pressed: pressed,
		keys:    keys,
		held:    make(map[ebiten.Key]bool, len(keys)),
		just:    make(map[ebiten.Key]bool, len(keys)),
	}
}

// Update samples every tracked key. Call exactly once per tick.
func (t *Tracker) Update() {
	for _, k := range t.keys {
		now := t.pressed(k)
		t.just[k] = now && !t.held[k]
		t.held[k] = now
	}
}

// IsKeyJustPressed reports whether key went down during the last Update.
func (t *Tracker) IsKeyJustPressed(key ebiten.Key) bool {
	return t.just[key]
}

// IsKeyHeld reports whether key was down at the last Update.
func (t *Tracker) IsKeyHeld(key ebiten.Key) bool {
	return t.held[key]
}
