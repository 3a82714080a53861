package scene

import (
	"github.com/automoto/tilescene/components"
	cfg "github.com/automoto/tilescene/config"
	"github.com/automoto/tilescene/interactive"
	"github.com/automoto/tilescene/shared/gamemath"
	"github.com/automoto/tilescene/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// CheckBeyondPosition reports whether a w x h box at (x, y) stays inside the
// canvas. The left edge must be strictly positive, the top edge may touch
// zero, and both trailing edges must end before the canvas does.
func (s *Scene) CheckBeyondPosition(x, y, w, h float64) bool {
	if x <= 0 {
		return false
	}
	if x+w >= float64(s.width) {
		return false
	}
	if y < 0 {
		return false
	}
	return y+h < float64(s.height)
}

// CheckMoveCollisions reports how far a mover with hitBox at position may
// travel in each direction, given that it proposes to move by
// (xOffset, yOffset). Only static objects the proposed box intersects
// constrain the result; each object contributes through its first
// intersecting hit-box only. Callers clamp their move to the result.
func (s *Scene) CheckMoveCollisions(position gamemath.Point, hitBox gamemath.HitBox, xOffset, yOffset float64) gamemath.Distance {
	a := hitBox.At(position)
	newA := a.Shift(xOffset, yOffset)

	canMove := gamemath.NewDistance()
	tags.Static.Each(s.world, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		for _, b := range obj.HitBoxes() {
			if gamemath.Classify(newA, b).Intersects() {
				canMove.Tighten(a, b)
				break
			}
		}
	})

	return canMove
}

// CheckDamageCollisions reports whether hitBox at position overlaps any
// hit-box of any dynamic actor. Touching edges do not count.
func (s *Scene) CheckDamageCollisions(position gamemath.Point, hitBox gamemath.HitBox) bool {
	a := hitBox.At(position)

	hit := false
	tags.Dynamic.Each(s.world, func(e *donburi.Entry) {
		if hit {
			return
		}
		actor := components.Actor.Get(e)
		pos := actor.Position()
		for _, hb := range actor.HitBoxes() {
			if gamemath.Overlaps(a, hb.At(pos)) {
				hit = true
				return
			}
		}
	})

	return hit
}

// MoveCharacter moves c by up to (dx, dy), one axis at a time so a mover
// pressed against a wall can still slide along it. Each axis is clamped
// against static geometry across all of c's hit-boxes and dropped when it
// would leave the canvas. It returns the delta actually applied.
func (s *Scene) MoveCharacter(c interactive.Character, dx, dy float64) (float64, float64) {
	pos := c.Position()
	w, h := c.Width(), c.Height()

	if dx != 0 {
		room := s.roomFor(c, pos, dx, 0)
		dx = gamemath.ClampOffset(dx, room.Left, room.Right)
		if dx != 0 && !s.CheckBeyondPosition(pos.X+dx, pos.Y, w, h) {
			dx = 0
		}
	}

	if dy != 0 {
		moved := gamemath.Pt(pos.X+dx, pos.Y)
		room := s.roomFor(c, moved, 0, dy)
		dy = gamemath.ClampOffset(dy, room.Up, room.Down)
		if dy != 0 && !s.CheckBeyondPosition(moved.X, moved.Y+dy, w, h) {
			dy = 0
		}
	}

	if cfg.Debug.LogClamps {
		log.Debug("Hero move", "from", pos, "dx", dx, "dy", dy)
	}

	if dx != 0 || dy != 0 {
		c.SetPosition(pos.X+dx, pos.Y+dy)
	}
	return dx, dy
}

func (s *Scene) roomFor(a interactive.Actor, pos gamemath.Point, dx, dy float64) gamemath.Distance {
	room := gamemath.NewDistance()
	for _, hb := range a.HitBoxes() {
		room = room.Min(s.CheckMoveCollisions(pos, hb, dx, dy))
	}
	return room
}

// ApplyContactDamage hits c when any of its hit-boxes overlaps a dynamic
// actor. It reports whether damage landed.
func (s *Scene) ApplyContactDamage(c interactive.Character, damage int) bool {
	pos := c.Position()
	for _, hb := range c.HitBoxes() {
		if s.CheckDamageCollisions(pos, hb) {
			return c.Hit(damage)
		}
	}
	return false
}
