package game

import (
	"raycaster/internal/control"
	"raycaster/internal/game/keytracker"

	"github.com/hajimehoshi/ebiten/v2"
)

var trackedKeys = []ebiten.Key{
	ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
	ebiten.KeyUp, ebiten.KeyDown, ebiten.KeyLeft, ebiten.KeyRight,
	ebiten.KeyQ, ebiten.KeyE, ebiten.KeyZ,
	ebiten.KeyEscape, ebiten.KeyF1, ebiten.KeyF2,
}

// InputHandler turns keyboard state into movement intents and toggles.
type InputHandler struct {
	keys *keytracker.Tracker
}

// NewInputHandler reads keys through pressed; nil means the ebiten keyboard.
func NewInputHandler(pressed keytracker.PressedFunc) *InputHandler {
	return &InputHandler{keys: keytracker.New(pressed, trackedKeys...)}
}

// Update samples the keyboard. Call once per tick before the queries below.
func (ih *InputHandler) Update() {
	ih.keys.Update()
}

// Intent returns the movement held this tick.
func (ih *InputHandler) Intent() control.Intent {
	return IntentFromKeys(ih.keys.IsKeyHeld)
}

// QuitRequested reports an Escape press.
func (ih *InputHandler) QuitRequested() bool {
	return ih.keys.IsKeyJustPressed(ebiten.KeyEscape)
}

// HUDToggled reports an F1 press.
func (ih *InputHandler) HUDToggled() bool {
	return ih.keys.IsKeyJustPressed(ebiten.KeyF1)
}

// RaysToggled reports an F2 press.
func (ih *InputHandler) RaysToggled() bool {
	return ih.keys.IsKeyJustPressed(ebiten.KeyF2)
}

// IntentFromKeys maps held keys to movement: W/A/S/D step along the map
// axes, arrows up/down walk along the heading, Q/left turn left and
// E/right/Z turn right.
func IntentFromKeys(held func(ebiten.Key) bool) control.Intent {
	return control.Intent{
		North:     held(ebiten.KeyW),
		South:     held(ebiten.KeyS),
		West:      held(ebiten.KeyA),
		East:      held(ebiten.KeyD),
		Forward:   held(ebiten.KeyUp),
		Backward:  held(ebiten.KeyDown),
		TurnLeft:  held(ebiten.KeyQ) || held(ebiten.KeyLeft),
		TurnRight: held(ebiten.KeyE) || held(ebiten.KeyRight) || held(ebiten.KeyZ),
	}
}
