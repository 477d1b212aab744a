package game

import "github.com/gdamore/tcell/v2"

// Action represents a viewer-requested camera action.
type Action uint8

const (
	ActionNone Action = iota
	ActionForward
	ActionBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionTurnLeft
	ActionTurnRight
	ActionToggleMap
	ActionReload
	ActionQuit
)

// keyToAction maps a tcell key event to a viewer action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionForward
	case tcell.KeyDown:
		return ActionBack
	case tcell.KeyRight:
		return ActionTurnRight
	case tcell.KeyLeft:
		return ActionTurnLeft
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'w', 'W', 'k', 'K':
		return ActionForward
	case 's', 'S', 'j', 'J':
		return ActionBack
	case 'a', 'A':
		return ActionStrafeLeft
	case 'd', 'D':
		return ActionStrafeRight
	case 'q', 'Q', 'h', 'H':
		return ActionTurnLeft
	case 'e', 'E', 'l', 'L':
		return ActionTurnRight
	case 'm', 'M':
		return ActionToggleMap
	case 'r', 'R':
		return ActionReload
	case 'x', 'X':
		return ActionQuit
	}
	return ActionNone
}

// actionToMotion converts a movement action to (forward, strafe) steps and a
// turn in units of the configured step sizes.
func actionToMotion(a Action) (forward, strafe, turn float64) {
	switch a {
	case ActionForward:
		return 1, 0, 0
	case ActionBack:
		return -1, 0, 0
	case ActionStrafeLeft:
		return 0, -1, 0
	case ActionStrafeRight:
		return 0, 1, 0
	case ActionTurnLeft:
		return 0, 0, -1
	case ActionTurnRight:
		return 0, 0, 1
	}
	return 0, 0, 0
}
