package interactive

import (
	"image"
	"testing"

	"github.com/automoto/tilescene/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

type block struct {
	w, h    float64
	boxes   []gamemath.HitBox
	virtual bool
}

func (b block) Width() float64 {
	return b.w
}

func (b block) Height() float64 {
	return b.h
}

func (b block) HitBoxes() []gamemath.HitBox {
	return b.boxes
}

func (b block) Render() image.Image {
	return nil
}

func (b block) IsVirtual() bool {
	return b.virtual
}

func square(size float64) block {
	return block{w: size, h: size, boxes: []gamemath.HitBox{gamemath.HitBoxOf(size, size)}}
}

func TestObjectGeometry(t *testing.T) {
	o := NewObject(block{
		w: 16, h: 16,
		boxes: []gamemath.HitBox{gamemath.NewHitBox(2, 4, 14, 16)},
	}, WithPosition(32, 48))

	assert.Equal(t, gamemath.Rect{X: 32, Y: 48, W: 16, H: 16}, o.BoundingRect())
	assert.Equal(t, gamemath.Edges{Left: 32, Top: 48, Right: 48, Bottom: 64}, o.BoundingEdges())
	assert.Equal(t, []gamemath.Edges{{Left: 34, Top: 52, Right: 46, Bottom: 64}}, o.HitBoxes())

	o.SetPosition(0, 0)
	assert.Equal(t, gamemath.Pt(0, 0), o.Position())
	assert.Equal(t, []gamemath.Edges{{Left: 2, Top: 4, Right: 14, Bottom: 16}}, o.HitBoxes())
}

func TestCheckTile(t *testing.T) {
	o := NewObject(square(16), WithCoordTiles(gamemath.Pt(1, 2), gamemath.Pt(2, 2)))

	assert.True(t, o.CheckTile(gamemath.Pt(1, 2)))
	assert.True(t, o.CheckTile(gamemath.Pt(2, 2)))
	assert.False(t, o.CheckTile(gamemath.Pt(2, 1)))
	assert.False(t, NewObject(square(16)).CheckTile(gamemath.Pt(0, 0)))

	tiles := o.CoordTiles()
	tiles[0] = gamemath.Pt(9, 9)
	assert.True(t, o.CheckTile(gamemath.Pt(1, 2)), "CoordTiles must not alias")
}

func TestIsVirtual(t *testing.T) {
	assert.True(t, IsVirtual(block{virtual: true}))
	assert.False(t, IsVirtual(block{}))
}

func TestDistanceToNoIntersection(t *testing.T) {
	o := NewObject(square(4), WithPosition(30, 10))
	current := gamemath.HitBoxOf(4, 4).At(gamemath.Pt(10, 10))

	d, ok := o.DistanceTo(current, current.Shift(5, 0))
	assert.False(t, ok)
	assert.True(t, d.IsUnbounded())
}

func TestDistanceToAdjacent(t *testing.T) {
	o := NewObject(square(4), WithPosition(15, 10))
	current := gamemath.HitBoxOf(4, 4).At(gamemath.Pt(10, 10))

	d, ok := o.DistanceTo(current, current.Shift(5, 0))
	assert.True(t, ok)
	assert.Equal(t, 0.0, d.Right)
	assert.Equal(t, gamemath.Unbounded, d.Left)
	assert.Equal(t, 0.0, d.Up)
	assert.Equal(t, 0.0, d.Down)
}

func TestDistanceToAccumulatesAllHitBoxes(t *testing.T) {
	// Two stacked boxes; the far one is listed first.
	o := NewObject(block{
		w: 20, h: 8,
		boxes: []gamemath.HitBox{
			gamemath.NewHitBox(10, 0, 20, 4),
			gamemath.NewHitBox(4, 0, 20, 4),
		},
	}, WithPosition(20, 10))
	current := gamemath.HitBoxOf(4, 4).At(gamemath.Pt(10, 10))

	d, ok := o.DistanceTo(current, current.Shift(20, 0))
	assert.True(t, ok)
	// Nearest box starts at x=24: 24 - 14 - 1.
	assert.Equal(t, 9.0, d.Right)
}
