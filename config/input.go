package config

// ActionID represents a logical scene action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionPause
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

func (a ActionID) String() string {
	switch a {
	case ActionMoveLeft:
		return "move_left"
	case ActionMoveRight:
		return "move_right"
	case ActionMoveUp:
		return "move_up"
	case ActionMoveDown:
		return "move_down"
	case ActionPause:
		return "pause"
	case ActionToggleDebug:
		return "toggle_debug"
	default:
		return "none"
	}
}
