// Package leveldata parses TMX levels into "row|col" keyed tile data for
// scene population. It has no dependencies on ebitengine, donburi or
// resolv, pure data only.
package leveldata

import (
	"image"

	"github.com/automoto/tilescene/shared/gamemath"
)

// Layer and object group names recognised in TMX files.
const (
	SolidLayer      = "solid"
	BackgroundLayer = "background"
	ForegroundLayer = "foreground"
	SpawnGroup      = "Spawns"
)

// Spawn kinds, taken from an object's class (or legacy type attribute).
const (
	SpawnHero   = "hero"
	SpawnPatrol = "patrol"
)

// Level holds everything the scene needs from a TMX level file.
type Level struct {
	Path       string
	Width      int // in tiles
	Height     int
	TileWidth  int
	TileHeight int

	Tiles  map[string]Tile // solid layer, keyed "row|col"
	Spawns []SpawnPoint
}

// PixelSize returns the level's size in pixels.
func (l *Level) PixelSize() (int, int) {
	return l.Width * l.TileWidth, l.Height * l.TileHeight
}

// Tile is one occupied cell of the solid layer.
type Tile struct {
	Coord gamemath.Point // column, row

	// Tileset image and the tile's rectangle within it. Source is empty
	// for image-less tilesets.
	Source string
	Rect   image.Rectangle

	// HitBoxes come from the tile's collision objects in the tileset.
	// Nil means the whole tile collides.
	HitBoxes []gamemath.HitBox
	Virtual  bool
}

// SpawnPoint is a placed actor.
type SpawnPoint struct {
	Kind string
	X, Y float64

	// Patrol extent in pixels. Zero means the configured default.
	Distance float64
	Vertical bool
}
