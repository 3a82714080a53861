// Package interactive wraps renderable game objects with a world position so
// the scene can run collision queries against them.
package interactive

import (
	"image"

	"github.com/automoto/tilescene/shared/gamemath"
)

// Renderable is what the scene needs from a drawable game object. Render
// returns an *ebiten.Image at runtime; image.Image keeps this package free
// of the graphics driver.
type Renderable interface {
	Width() float64
	Height() float64
	HitBoxes() []gamemath.HitBox
	Render() image.Image
}

// Placeholder is implemented by renderables that may stand in for an empty
// tile. Virtual placeholders never collide and are skipped at scene build.
type Placeholder interface {
	IsVirtual() bool
}

// IsVirtual reports whether r is a virtual placeholder.
func IsVirtual(r Renderable) bool {
	p, ok := r.(Placeholder)
	return ok && p.IsVirtual()
}

// Actor is a renderable that owns its world position: the hero and every
// dynamic damage source.
type Actor interface {
	Renderable
	Position() gamemath.Point
}

// Character is the capability set required of a scene's hero.
type Character interface {
	Actor
	SetPosition(x, y float64)
	Speed() float64
	// Hit applies damage and reports whether it landed.
	Hit(damage int) bool
	Health() (current, max int)
}
