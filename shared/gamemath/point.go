// Package gamemath holds the scene's plane geometry: points, hit-boxes,
// bounding edges and the relative-position classifier used by collision
// queries. It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

import (
	"fmt"
	"strconv"
	"strings"
)

// tileKeySep separates the row and column of a tile key ("row|col").
const tileKeySep = "|"

// Point is a 2D coordinate. Treat it as a value; Set is the only mutator.
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// ParseTileKey parses a "row|col" tile key. The first token is the row (Y),
// the second the column (X).
func ParseTileKey(key string) (Point, error) {
	row, col, ok := strings.Cut(key, tileKeySep)
	if !ok {
		return Point{}, fmt.Errorf("tile key %q: missing %q separator", key, tileKeySep)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(row), 64)
	if err != nil {
		return Point{}, fmt.Errorf("tile key %q: row: %w", key, err)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(col), 64)
	if err != nil {
		return Point{}, fmt.Errorf("tile key %q: col: %w", key, err)
	}
	return Point{X: x, Y: y}, nil
}

// Key formats p as a "row|col" tile key.
func (p Point) Key() string {
	return strconv.FormatFloat(p.Y, 'f', -1, 64) + tileKeySep + strconv.FormatFloat(p.X, 'f', -1, 64)
}

// Equal reports exact equality on both axes.
func (p Point) Equal(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

func (p *Point) Set(x, y float64) {
	p.X = x
	p.Y = y
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

func (p Point) XY() (float64, float64) {
	return p.X, p.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
