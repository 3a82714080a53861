package systems

import (
	"image"
	"image/color"

	cfg "github.com/automoto/tilescene/config"
	"github.com/automoto/tilescene/interactive"
	"github.com/automoto/tilescene/scene"
	"github.com/automoto/tilescene/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	// GPU copies of renderables that hand back a plain image.Image
	imageCache = map[image.Image]*ebiten.Image{}
)

// DrawScene renders the background, static objects, dynamic actors, the
// hero and the foreground, in that order.
func DrawScene(sc *scene.Scene) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		drawLayer(screen, sc.Background())

		for _, o := range sc.Statics() {
			drawRenderable(screen, o.Renderable(), o.Position(), cfg.Slate)
		}
		for _, a := range sc.Dynamics() {
			drawRenderable(screen, a, a.Position(), cfg.Patrol.Color)
		}
		if hero := sc.Hero(); hero != nil {
			drawRenderable(screen, hero, hero.Position(), cfg.Hero.Color)
		}

		drawLayer(screen, sc.Foreground())
	}
}

func drawLayer(screen *ebiten.Image, layer scene.Layer) {
	if layer == nil {
		return
	}
	img := toEbiten(layer.Render())
	if img == nil {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	screen.DrawImage(img, drawOp)
}

// drawRenderable draws r at pos, or a flat rectangle in fallback when r
// has no image.
func drawRenderable(screen *ebiten.Image, r interactive.Renderable, pos gamemath.Point, fallback color.Color) {
	img := toEbiten(r.Render())
	if img == nil {
		vector.FillRect(screen,
			float32(pos.X), float32(pos.Y),
			float32(r.Width()), float32(r.Height()),
			fallback, false)
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(pos.X, pos.Y)
	screen.DrawImage(img, drawOp)
}

func toEbiten(img image.Image) *ebiten.Image {
	switch v := img.(type) {
	case nil:
		return nil
	case *ebiten.Image:
		return v
	}

	if cached, ok := imageCache[img]; ok {
		return cached
	}
	e := ebiten.NewImageFromImage(img)
	imageCache[img] = e
	return e
}
