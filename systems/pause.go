package systems

import (
	"image/color"

	cfg "github.com/automoto/tilescene/config"
	"github.com/automoto/tilescene/fonts"
	"github.com/automoto/tilescene/scene"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var pauseOverlay = color.RGBA{0, 0, 0, 160}

// UpdatePause toggles the scene's paused flag and the hit-box overlay.
// This system should run AFTER UpdateInput but BEFORE gameplay systems.
func UpdatePause(sc *scene.Scene) ecs.System {
	return func(ecs *ecs.ECS) {
		input := getOrCreateInput(ecs)

		if input.Action(cfg.ActionPause).JustPressed {
			if sc.Paused() {
				sc.Start()
			} else {
				sc.Pause()
			}
			log.Debug("Pause toggled", "paused", sc.Paused())
		}

		if input.Action(cfg.ActionToggleDebug).JustPressed {
			cfg.Debug.ShowHitBoxes = !cfg.Debug.ShowHitBoxes
		}
	}
}

// WithGameplayChecks wraps a system to skip execution while the scene is
// paused.
func WithGameplayChecks(sc *scene.Scene, system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if sc.Paused() {
			return
		}
		system(e)
	}
}

// DrawPause dims the screen while the scene is paused.
func DrawPause(sc *scene.Scene) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		if !sc.Paused() {
			return
		}

		width := float32(screen.Bounds().Dx())
		height := float32(screen.Bounds().Dy())
		vector.FillRect(screen, 0, 0, width, height, pauseOverlay, false)

		const label = "PAUSED"
		face := fonts.Large.Get()
		w := font.MeasureString(face, label).Ceil()
		text.Draw(screen, label, face, (int(width)-w)/2, int(height)/2, cfg.HUD.TextColor)
	}
}
