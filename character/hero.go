package character

import (
	"image"

	cfg "github.com/automoto/tilescene/config"
	"github.com/automoto/tilescene/interactive"
	"github.com/automoto/tilescene/shared/gamemath"
)

var _ interactive.Character = (*Hero)(nil)

// Hero is the player-controlled character. Taking a hit grants a short
// window of invulnerability.
type Hero struct {
	*Sprite
	position gamemath.Point

	speed        float64
	health       int
	maxHealth    int
	invulnFrames int
	invuln       int // frames remaining
}

// NewHero places a hero at (x, y) using cfg.Hero for its stats.
func NewHero(sprite *Sprite, x, y float64) *Hero {
	return &Hero{
		Sprite:       sprite,
		position:     gamemath.Pt(x, y),
		speed:        cfg.Hero.Speed,
		health:       cfg.Hero.Health,
		maxHealth:    cfg.Hero.Health,
		invulnFrames: cfg.Hero.InvulnFrames,
	}
}

// NewHeroSprite sizes the hero sprite from cfg.Hero with the body hit-box
// inset from the sprite edges.
func NewHeroSprite(img image.Image) *Sprite {
	w, h := cfg.Hero.Width, cfg.Hero.Height
	ix, iy := cfg.Hero.HitBoxInsetX, cfg.Hero.HitBoxInsetY
	return NewSprite(img, w, h, gamemath.NewHitBox(ix, iy, w-ix, h-iy))
}

func (h *Hero) Position() gamemath.Point {
	return h.position
}

func (h *Hero) SetPosition(x, y float64) {
	h.position.Set(x, y)
}

func (h *Hero) Speed() float64 {
	return h.speed
}

// Hit applies damage unless the hero is invulnerable or already down.
func (h *Hero) Hit(damage int) bool {
	if h.invuln > 0 || h.health <= 0 {
		return false
	}
	h.health = max(0, h.health-damage)
	h.invuln = h.invulnFrames
	return true
}

func (h *Hero) Health() (current, max int) {
	return h.health, h.maxHealth
}

func (h *Hero) Alive() bool {
	return h.health > 0
}

func (h *Hero) Invulnerable() bool {
	return h.invuln > 0
}

// Tick advances per-frame timers.
func (h *Hero) Tick() {
	if h.invuln > 0 {
		h.invuln--
	}
}
