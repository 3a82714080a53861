// Package character provides the scene's concrete renderables: plain tile
// sprites, the hero, and patrolling damage sources.
package character

import (
	"image"
	"slices"

	"github.com/automoto/tilescene/interactive"
	"github.com/automoto/tilescene/shared/gamemath"
)

var _ interactive.Renderable = (*Sprite)(nil)

// Sprite is a fixed-size renderable with zero or more hit-boxes.
type Sprite struct {
	img      image.Image
	w, h     float64
	hitBoxes []gamemath.HitBox
	virtual  bool
}

// NewSprite creates a sprite. With no hit-boxes given, the whole w x h
// area collides.
func NewSprite(img image.Image, w, h float64, hitBoxes ...gamemath.HitBox) *Sprite {
	if len(hitBoxes) == 0 {
		hitBoxes = []gamemath.HitBox{gamemath.HitBoxOf(w, h)}
	}
	return &Sprite{img: img, w: w, h: h, hitBoxes: hitBoxes}
}

// NewDecoration creates a sprite that never collides.
func NewDecoration(img image.Image, w, h float64) *Sprite {
	return &Sprite{img: img, w: w, h: h}
}

// NewVirtualSprite creates an empty-tile placeholder.
func NewVirtualSprite(w, h float64) *Sprite {
	return &Sprite{w: w, h: h, virtual: true}
}

func (s *Sprite) Width() float64 {
	return s.w
}

func (s *Sprite) Height() float64 {
	return s.h
}

func (s *Sprite) HitBoxes() []gamemath.HitBox {
	return slices.Clone(s.hitBoxes)
}

func (s *Sprite) Render() image.Image {
	return s.img
}

func (s *Sprite) IsVirtual() bool {
	return s.virtual
}
