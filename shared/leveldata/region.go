package leveldata

import (
	"math"

	"github.com/automoto/tilescene/shared/gamemath"
)

// SelectRegion returns the tiles inside the grid rectangle spanned by from
// and to (either corner order, both inclusive), re-keyed so the rectangle's
// top-left tile becomes "0|0".
func SelectRegion(tiles map[string]Tile, from, to gamemath.Point) map[string]Tile {
	minX, maxX := math.Min(from.X, to.X), math.Max(from.X, to.X)
	minY, maxY := math.Min(from.Y, to.Y), math.Max(from.Y, to.Y)

	out := make(map[string]Tile)
	for _, t := range tiles {
		c := t.Coord
		if c.X < minX || c.X > maxX || c.Y < minY || c.Y > maxY {
			continue
		}
		t.Coord = gamemath.Pt(c.X-minX, c.Y-minY)
		t.HitBoxes = append([]gamemath.HitBox(nil), t.HitBoxes...)
		out[t.Coord.Key()] = t
	}
	return out
}
