package systems

import (
	"github.com/automoto/tilescene/components"
	cfg "github.com/automoto/tilescene/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Keyboard bindings per action
var keyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	cfg.ActionMoveRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	cfg.ActionMoveUp:      {ebiten.KeyArrowUp, ebiten.KeyW},
	cfg.ActionMoveDown:    {ebiten.KeyArrowDown, ebiten.KeyS},
	cfg.ActionPause:       {ebiten.KeyEscape, ebiten.KeyP},
	cfg.ActionToggleDebug: {ebiten.KeyF3},
}

// UpdateInput polls the keyboard and updates the Input component.
// Must run BEFORE every system that reads input.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Advance()

	for actionID, keys := range keyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}
