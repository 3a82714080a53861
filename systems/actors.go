package systems

import (
	cfg "github.com/automoto/tilescene/config"
	"github.com/automoto/tilescene/scene"
	"github.com/yohamta/donburi/ecs"
)

// updater is implemented by dynamic actors that drive their own motion.
type updater interface {
	Update(dt float32)
}

// UpdateActors advances every self-driven dynamic actor by one tick.
func UpdateActors(sc *scene.Scene) ecs.System {
	return func(ecs *ecs.ECS) {
		dt := 1 / float32(cfg.C.TPS)
		for _, a := range sc.Dynamics() {
			if u, ok := a.(updater); ok {
				u.Update(dt)
			}
		}
	}
}
