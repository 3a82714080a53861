package components

import (
	cfg "github.com/automoto/tilescene/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Action returns the full ActionState for an action ID.
func (d *InputData) Action(id cfg.ActionID) ActionState {
	curr := d.Current[id]
	prev := d.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Advance swaps buffers: current becomes previous, then current is cleared.
func (d *InputData) Advance() {
	d.Previous = d.Current
	d.Current = [cfg.ActionCount]bool{}
}

var Input = donburi.NewComponentType[InputData]()
