package terminal

import (
	"raycaster/internal/control"

	"github.com/gdamore/tcell/v2"
)

// Command is a non-movement action requested from the keyboard.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandToggleRays
)

// TranslateKey maps one key event to a movement step or a command.
// Terminals report presses, not held keys, so every event is one tick.
func TranslateKey(ev *tcell.EventKey) (control.Intent, Command) {
	var in control.Intent
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return in, CommandQuit
	case tcell.KeyUp:
		in.Forward = true
	case tcell.KeyDown:
		in.Backward = true
	case tcell.KeyLeft:
		in.TurnLeft = true
	case tcell.KeyRight:
		in.TurnRight = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			in.North = true
		case 's', 'S':
			in.South = true
		case 'a', 'A':
			in.West = true
		case 'd', 'D':
			in.East = true
		case 'q', 'Q':
			in.TurnLeft = true
		case 'e', 'E', 'z', 'Z':
			in.TurnRight = true
		case 'r', 'R':
			return in, CommandToggleRays
		case 'x', 'X':
			return in, CommandQuit
		}
	}
	return in, CommandNone
}
