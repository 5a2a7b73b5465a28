package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions so the session logic never sees
// raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - impulse while playing, start/confirm elsewhere
	ActionPause          // P - pause/unpause while playing
	ActionRestart        // R - back to menu after game over
	ActionBack           // B, Escape - leave the game
	ActionQuit           // Q, Ctrl+C - exit entirely
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
