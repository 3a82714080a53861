package interactive

import (
	"slices"

	"github.com/automoto/tilescene/shared/gamemath"
)

// Object is a static scene member: a renderable placed at a world position,
// optionally tagged with the grid tiles it occupies.
type Object struct {
	renderable Renderable
	coordTiles []gamemath.Point
	position   gamemath.Point
}

type Option func(*Object)

// WithCoordTiles records the grid tiles the object occupies.
func WithCoordTiles(tiles ...gamemath.Point) Option {
	return func(o *Object) {
		o.coordTiles = append(o.coordTiles, tiles...)
	}
}

func WithPosition(x, y float64) Option {
	return func(o *Object) {
		o.position.Set(x, y)
	}
}

func NewObject(r Renderable, opts ...Option) *Object {
	o := &Object{renderable: r}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Object) Renderable() Renderable {
	return o.renderable
}

func (o *Object) Position() gamemath.Point {
	return o.position
}

func (o *Object) SetPosition(x, y float64) {
	o.position.Set(x, y)
}

// CoordTiles returns a copy of the occupied grid tiles.
func (o *Object) CoordTiles() []gamemath.Point {
	return slices.Clone(o.coordTiles)
}

func (o *Object) BoundingRect() gamemath.Rect {
	return gamemath.Rect{
		X: o.position.X,
		Y: o.position.Y,
		W: o.renderable.Width(),
		H: o.renderable.Height(),
	}
}

func (o *Object) BoundingEdges() gamemath.Edges {
	return o.BoundingRect().Edges()
}

// HitBoxes returns the object's hit-boxes placed in world space.
func (o *Object) HitBoxes() []gamemath.Edges {
	boxes := o.renderable.HitBoxes()
	edges := make([]gamemath.Edges, len(boxes))
	for i, hb := range boxes {
		edges[i] = hb.At(o.position)
	}
	return edges
}

// CheckTile reports whether the object occupies the given grid tile.
func (o *Object) CheckTile(coord gamemath.Point) bool {
	return slices.ContainsFunc(o.coordTiles, coord.Equal)
}

// DistanceTo reports how far a mover at current may travel before touching
// this object, given that it proposes to move to proposed. Every hit-box the
// proposed box intersects narrows the result. ok is false when none does.
func (o *Object) DistanceTo(current, proposed gamemath.Edges) (d gamemath.Distance, ok bool) {
	d = gamemath.NewDistance()

	for _, hb := range o.HitBoxes() {
		if !gamemath.Classify(proposed, hb).Intersects() {
			continue
		}
		ok = true
		d.Tighten(current, hb)
	}

	return d, ok
}
