package core

// Intent is the held movement state for one step.
// The four directions are independent; opposing intents cancel out.
type Intent struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Any reports whether any movement intent is held.
func (in Intent) Any() bool {
	return in.Forward || in.Backward || in.Left || in.Right
}

// Action represents a discrete request applied to the arena between steps,
// abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionFire             // Space, F - spawn a bullet at the muzzle
	ActionTurnLeft         // Q - yaw -step
	ActionTurnRight        // E - yaw +step
	ActionMagnet           // M - toggle coin magnet
	ActionCheat            // C - toggle contact-damage immunity
	ActionPause            // P - pause/unpause
	ActionRestart          // R - full game reset
	ActionQuit             // Esc, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFire:
		return "Fire"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionMagnet:
		return "Magnet"
	case ActionCheat:
		return "Cheat"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
