package leveldata

import (
	"image"
	"os"
	"testing"

	"github.com/automoto/tilescene/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestLevel(t *testing.T) *Level {
	t.Helper()
	level, err := Load(os.DirFS("testdata"), "level.tmx")
	require.NoError(t, err)
	return level
}

func TestLoadMissingSource(t *testing.T) {
	_, err := Load(os.DirFS("testdata"), "")
	assert.ErrorIs(t, err, ErrMissingSource)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(os.DirFS("testdata"), "nope.tmx")
	assert.Error(t, err)
}

func TestLoadDimensions(t *testing.T) {
	level := loadTestLevel(t)

	assert.Equal(t, 4, level.Width)
	assert.Equal(t, 3, level.Height)
	w, h := level.PixelSize()
	assert.Equal(t, 64, w)
	assert.Equal(t, 48, h)
}

func TestLoadTiles(t *testing.T) {
	level := loadTestLevel(t)

	require.Len(t, level.Tiles, 8)
	assert.NotContains(t, level.Tiles, "0|1")

	corner := level.Tiles["0|3"]
	assert.Equal(t, gamemath.Pt(3, 0), corner.Coord)
	assert.Nil(t, corner.HitBoxes)
	assert.False(t, corner.Virtual)
	assert.Equal(t, image.Rect(0, 0, 16, 16), corner.Rect)

	assert.True(t, level.Tiles["1|1"].Virtual)

	half := level.Tiles["1|2"]
	assert.Equal(t, []gamemath.HitBox{gamemath.NewHitBox(0, 8, 16, 16)}, half.HitBoxes)
	assert.Equal(t, image.Rect(0, 16, 16, 32), half.Rect)
}

func TestLoadSpawns(t *testing.T) {
	level := loadTestLevel(t)

	require.Len(t, level.Spawns, 2)

	hero, ok := level.Spawn(SpawnHero)
	require.True(t, ok)
	assert.Equal(t, 20.0, hero.X)
	assert.Equal(t, 2.0, hero.Y)

	patrols := level.SpawnsOf(SpawnPatrol)
	require.Len(t, patrols, 1)
	assert.Equal(t, 24.0, patrols[0].Distance)
	assert.False(t, patrols[0].Vertical)

	_, ok = level.Spawn("boss")
	assert.False(t, ok)
}

func TestSelectRegion(t *testing.T) {
	level := loadTestLevel(t)

	got := SelectRegion(level.Tiles, gamemath.Pt(2, 2), gamemath.Pt(1, 1))

	require.Len(t, got, 4)
	for key, tile := range got {
		assert.Equal(t, key, tile.Coord.Key())
	}
	assert.True(t, got["0|0"].Virtual)
	assert.Equal(t, []gamemath.HitBox{gamemath.NewHitBox(0, 8, 16, 16)}, got["0|1"].HitBoxes)
	assert.Contains(t, got, "1|0")
	assert.Contains(t, got, "1|1")

	assert.Equal(t, gamemath.Pt(2, 1), level.Tiles["1|2"].Coord, "source is untouched")
}

func TestSelectRegionEmpty(t *testing.T) {
	level := loadTestLevel(t)
	assert.Empty(t, SelectRegion(level.Tiles, gamemath.Pt(10, 10), gamemath.Pt(12, 12)))
}
