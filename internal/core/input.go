package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone         Action = iota
	ActionLeft                // Left arrow, H, A - nudge paddle left
	ActionRight               // Right arrow, L, D - nudge paddle right
	ActionToggleGame          // Enter, Space - start a new game or stop the current one
	ActionToggleVisual        // V - toggle visually impaired mode
	ActionToggleAudio         // M - toggle audio accessibility
	ActionHelp                // ? - show full key help
	ActionQuit                // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionToggleGame:
		return "ToggleGame"
	case ActionToggleVisual:
		return "ToggleVisual"
	case ActionToggleAudio:
		return "ToggleAudio"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
