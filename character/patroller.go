package character

import (
	cfg "github.com/automoto/tilescene/config"
	"github.com/automoto/tilescene/interactive"
	"github.com/automoto/tilescene/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var _ interactive.Actor = (*Patroller)(nil)

// Patroller is a dynamic damage source that travels back and forth between
// two points. Its position is driven by a looping tween sequence.
type Patroller struct {
	*Sprite
	from, to gamemath.Point
	position gamemath.Point
	seq      *gween.Sequence
}

// NewPatroller creates a patroller at from. Each leg takes legSeconds.
func NewPatroller(sprite *Sprite, from, to gamemath.Point, legSeconds float32) *Patroller {
	return &Patroller{
		Sprite:   sprite,
		from:     from,
		to:       to,
		position: from,
		seq: gween.NewSequence(
			gween.New(0, 1, legSeconds, ease.InOutQuad),
			gween.New(1, 0, legSeconds, ease.InOutQuad),
		),
	}
}

// NewHorizontalPatroller creates a square patroller sized and paced from
// cfg.Patrol, heading right from (x, y).
func NewHorizontalPatroller(sprite *Sprite, x, y float64) *Patroller {
	from := gamemath.Pt(x, y)
	to := gamemath.Pt(x+cfg.Patrol.Distance, y)
	return NewPatroller(sprite, from, to, cfg.Patrol.Duration)
}

func (p *Patroller) Position() gamemath.Point {
	return p.position
}

// Update advances the patrol by dt seconds.
func (p *Patroller) Update(dt float32) {
	t, _, done := p.seq.Update(dt)
	if done {
		p.seq.Reset()
	}

	k := float64(t)
	p.position = gamemath.Pt(
		p.from.X+(p.to.X-p.from.X)*k,
		p.from.Y+(p.to.Y-p.from.Y)*k,
	)
}
