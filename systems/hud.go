package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/tilescene/config"
	"github.com/automoto/tilescene/fonts"
	"github.com/automoto/tilescene/scene"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 100
	hudBarHeight = 8
)

// DrawHUD renders the hero's health bar and readout in the top-left corner.
func DrawHUD(sc *scene.Scene) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		hero := sc.Hero()
		if hero == nil {
			return
		}
		cur, maxHP := hero.Health()
		margin := float32(cfg.HUD.Margin)

		// Background (dark gray)
		vector.FillRect(screen,
			margin, margin,
			hudBarWidth, hudBarHeight,
			color.RGBA{40, 40, 40, 255}, false)

		// Current HP (green)
		ratio := float32(0)
		if maxHP > 0 {
			ratio = float32(cur) / float32(maxHP)
		}
		vector.FillRect(screen,
			margin, margin,
			hudBarWidth*ratio, hudBarHeight,
			color.RGBA{40, 220, 40, 255}, false)

		face := fonts.Regular.Get()
		label := fmt.Sprintf("HP %d/%d", cur, maxHP)
		x := int(margin) + hudBarWidth + 6
		y := int(margin) + face.Metrics().Ascent.Ceil()
		text.Draw(screen, label, face, x, y, cfg.HUD.TextColor)
	}
}
