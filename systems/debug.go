package systems

import (
	"image/color"

	cfg "github.com/automoto/tilescene/config"
	"github.com/automoto/tilescene/scene"
	"github.com/automoto/tilescene/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every hit-box in the scene when enabled.
func DrawDebug(sc *scene.Scene) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		if !cfg.Debug.ShowHitBoxes {
			return
		}

		for _, o := range sc.Statics() {
			for _, e := range o.HitBoxes() {
				drawOutline(screen, e, cfg.Debug.HitBoxColor)
			}
		}
		for _, a := range sc.Dynamics() {
			pos := a.Position()
			for _, hb := range a.HitBoxes() {
				drawOutline(screen, hb.At(pos), cfg.Patrol.Color)
			}
		}
		if hero := sc.Hero(); hero != nil {
			pos := hero.Position()
			for _, hb := range hero.HitBoxes() {
				drawOutline(screen, hb.At(pos), cfg.White)
			}
		}
	}
}

func drawOutline(screen *ebiten.Image, e gamemath.Edges, c color.Color) {
	x, y := float32(e.Left), float32(e.Top)
	w, h := float32(e.Right-e.Left), float32(e.Bottom-e.Top)
	if w <= 0 || h <= 0 {
		return
	}

	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
