package scene

import (
	"image"
	"testing"

	"github.com/automoto/tilescene/character"
	"github.com/automoto/tilescene/interactive"
	"github.com/automoto/tilescene/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type mob struct {
	*character.Sprite
	pos gamemath.Point
}

func (m *mob) Position() gamemath.Point {
	return m.pos
}

func newMob(x, y float64, hitBoxes ...gamemath.HitBox) *mob {
	return &mob{Sprite: character.NewSprite(nil, 16, 16, hitBoxes...), pos: gamemath.Pt(x, y)}
}

func newScene() *Scene {
	return New(donburi.NewWorld(), 500, 500)
}

func staticAt(x, y float64, hitBoxes ...gamemath.HitBox) *interactive.Object {
	return interactive.NewObject(character.NewSprite(nil, 16, 16, hitBoxes...), interactive.WithPosition(x, y))
}

func TestNewSceneStartsPaused(t *testing.T) {
	s := newScene()
	assert.True(t, s.Paused())

	s.Start()
	assert.False(t, s.Paused())

	s.Pause()
	assert.True(t, s.Paused())
}

func TestAddObjectsSkipsVirtualTiles(t *testing.T) {
	s := newScene()

	n := s.AddObjects(map[string]interactive.Renderable{
		"1|2": character.NewSprite(nil, 16, 16),
		"3|4": character.NewVirtualSprite(16, 16),
	})

	assert.Equal(t, 1, n)
	statics := s.Statics()
	require.Len(t, statics, 1)
	assert.Equal(t, gamemath.Pt(32, 16), statics[0].Position())
	assert.Equal(t, []gamemath.Point{gamemath.Pt(2, 1)}, statics[0].CoordTiles())
}

func TestAddObjectsSkipsBadKeysAndNil(t *testing.T) {
	s := newScene()

	n := s.AddObjects(map[string]interactive.Renderable{
		"row|col": character.NewSprite(nil, 16, 16),
		"7":       character.NewSprite(nil, 16, 16),
		"0|1":     nil,
		"0|0":     character.NewSprite(nil, 16, 16),
	})

	assert.Equal(t, 1, n)
	assert.Len(t, s.Statics(), 1)
}

func TestAddObjectsRowMajorOrder(t *testing.T) {
	s := newScene()

	s.AddObjects(map[string]interactive.Renderable{
		"2|0": character.NewSprite(nil, 16, 16),
		"0|3": character.NewSprite(nil, 16, 16),
		"0|1": character.NewSprite(nil, 16, 16),
		"1|0": character.NewSprite(nil, 16, 16),
	})

	var got []gamemath.Point
	for _, o := range s.Statics() {
		got = append(got, o.Position())
	}
	assert.Equal(t, []gamemath.Point{
		gamemath.Pt(16, 0),
		gamemath.Pt(48, 0),
		gamemath.Pt(0, 16),
		gamemath.Pt(0, 32),
	}, got)
}

func TestAddObjectsFootprint(t *testing.T) {
	s := newScene()
	s.AddObjects(map[string]interactive.Renderable{
		"0|0": character.NewSprite(nil, 32, 16),
	})

	o := s.Statics()[0]
	assert.Equal(t, []gamemath.Point{gamemath.Pt(0, 0), gamemath.Pt(1, 0)}, o.CoordTiles())

	assert.Equal(t, []*interactive.Object{o}, s.ObjectsAtTile(gamemath.Pt(1, 0)))
	assert.Equal(t, []*interactive.Object{o}, s.ObjectsAtTile(gamemath.Pt(0, 0)))
	assert.Empty(t, s.ObjectsAtTile(gamemath.Pt(2, 0)))
	assert.Empty(t, s.ObjectsAtTile(gamemath.Pt(-1, 99)))
}

func TestAddHero(t *testing.T) {
	s := newScene()
	assert.Nil(t, s.Hero())

	for _, bad := range []any{nil, character.NewSprite(nil, 16, 16), newMob(0, 0)} {
		err := s.AddHero(bad)
		assert.ErrorIs(t, err, ErrInvalidHero)
	}
	assert.Nil(t, s.Hero())

	first := character.NewHero(character.NewHeroSprite(nil), 0, 0)
	second := character.NewHero(character.NewHeroSprite(nil), 10, 10)
	require.NoError(t, s.AddHero(first))
	require.NoError(t, s.AddHero(second))

	assert.Same(t, second, s.Hero())
}

func TestAddObjectKinds(t *testing.T) {
	s := newScene()
	obj := staticAt(0, 0)
	m := newMob(0, 0)

	assert.ErrorIs(t, s.AddObject(obj, Dynamic), ErrInvalidObject)
	assert.ErrorIs(t, s.AddObject(m, Static), ErrInvalidObject)
	assert.ErrorIs(t, s.AddObject(nil, Static), ErrInvalidObject)

	require.NoError(t, s.AddObject(obj, Static))
	require.NoError(t, s.AddObject(m, Dynamic))
	require.NoError(t, s.AddObject(staticAt(20, 0), Kind(7)))

	assert.Len(t, s.Statics(), 2)
	assert.Len(t, s.Dynamics(), 1)
}

func TestRemoveObject(t *testing.T) {
	s := newScene()
	s.AddObjects(map[string]interactive.Renderable{"0|0": character.NewSprite(nil, 16, 16)})
	o := s.Statics()[0]
	m := newMob(0, 0)
	require.NoError(t, s.AddDynamic(m))

	assert.True(t, s.RemoveObject(o))
	assert.Empty(t, s.Statics())
	assert.Empty(t, s.ObjectsAtTile(gamemath.Pt(0, 0)))

	assert.True(t, s.RemoveObject(m))
	assert.Empty(t, s.Dynamics())

	assert.False(t, s.RemoveObject(o))
	assert.False(t, s.RemoveObject("not a member"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "static", Static.String())
	assert.Equal(t, "dynamic", Dynamic.String())
	assert.Equal(t, "Kind(5)", Kind(5).String())
}

// slab is a value-receiver actor; its slice field makes it non-comparable.
type slab struct {
	boxes []gamemath.HitBox
}

func (s slab) Width() float64 {
	return 16
}

func (s slab) Height() float64 {
	return 16
}

func (s slab) HitBoxes() []gamemath.HitBox {
	return s.boxes
}

func (s slab) Render() image.Image {
	return nil
}

func (s slab) Position() gamemath.Point {
	return gamemath.Pt(0, 0)
}

func TestAddDynamicRejectsNonComparableActor(t *testing.T) {
	s := newScene()
	a := slab{boxes: []gamemath.HitBox{box4}}

	assert.ErrorIs(t, s.AddDynamic(a), ErrInvalidObject)
	assert.ErrorIs(t, s.AddObject(a, Dynamic), ErrInvalidObject)
	assert.Empty(t, s.Dynamics())

	assert.NotPanics(t, func() {
		assert.False(t, s.RemoveObject(a))
	})
}

func TestRemoveObjectSkipsOtherActorTypes(t *testing.T) {
	s := newScene()
	require.NoError(t, s.AddDynamic(newMob(0, 0)))
	require.NoError(t, s.AddDynamic(character.NewPatroller(character.NewSprite(nil, 8, 8), gamemath.Pt(0, 0), gamemath.Pt(8, 0), 1)))

	assert.NotPanics(t, func() {
		assert.False(t, s.RemoveObject(slab{}))
	})
	assert.Len(t, s.Dynamics(), 2)
}

func TestAddDynamicRejectsTypedNil(t *testing.T) {
	s := newScene()

	assert.ErrorIs(t, s.AddDynamic((*mob)(nil)), ErrInvalidObject)
	assert.ErrorIs(t, s.AddObject((*mob)(nil), Dynamic), ErrInvalidObject)
	assert.Empty(t, s.Dynamics())
}

func TestAddHeroRejectsTypedNil(t *testing.T) {
	s := newScene()

	err := s.AddHero((*character.Hero)(nil))
	assert.ErrorIs(t, err, ErrInvalidHero)
	assert.Nil(t, s.Hero())
}

func TestStaticsAfterRemoval(t *testing.T) {
	s := newScene()
	a, b, c := staticAt(0, 0), staticAt(20, 0), staticAt(40, 0)
	for _, o := range []*interactive.Object{a, b, c} {
		require.NoError(t, s.AddObject(o, Static))
	}

	require.True(t, s.RemoveObject(a))

	assert.ElementsMatch(t, []*interactive.Object{b, c}, s.Statics())
}
