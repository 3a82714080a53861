package systems

import (
	"github.com/automoto/tilescene/components"
	cfg "github.com/automoto/tilescene/config"
	"github.com/automoto/tilescene/scene"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// ticker is implemented by characters with per-frame timers.
type ticker interface {
	Tick()
}

// UpdateHero moves the hero from input, clamped against static geometry,
// then applies contact damage from dynamic actors.
// Must run AFTER UpdateActors so damage sees this frame's actor positions.
func UpdateHero(sc *scene.Scene) ecs.System {
	return func(ecs *ecs.ECS) {
		hero := sc.Hero()
		if hero == nil {
			return
		}
		if t, ok := hero.(ticker); ok {
			t.Tick()
		}
		if cur, _ := hero.Health(); cur <= 0 {
			return
		}

		dx, dy := heroDirection(getOrCreateInput(ecs))
		speed := hero.Speed()
		sc.MoveCharacter(hero, dx*speed, dy*speed)

		if sc.ApplyContactDamage(hero, cfg.Patrol.Damage) {
			cur, maxHP := hero.Health()
			log.Info("Hero hit", "health", cur, "max", maxHP)
			if cur == 0 {
				log.Info("Hero down")
			}
		}
	}
}

// heroDirection returns the unit direction held on each axis. Opposite
// keys cancel.
func heroDirection(input *components.InputData) (dx, dy float64) {
	if input.Action(cfg.ActionMoveLeft).Pressed {
		dx--
	}
	if input.Action(cfg.ActionMoveRight).Pressed {
		dx++
	}
	if input.Action(cfg.ActionMoveUp).Pressed {
		dy--
	}
	if input.Action(cfg.ActionMoveDown).Pressed {
		dy++
	}
	return dx, dy
}
