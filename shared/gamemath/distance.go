package gamemath

import "math"

// Unbounded marks a direction with no obstacle in reach. It is the largest
// float64 that still holds an exact integer.
const Unbounded = float64(1<<53 - 1)

// Distance is how far a mover may travel in each direction before touching
// the nearest obstacle found so far.
type Distance struct {
	Left, Right, Up, Down float64
}

func NewDistance() Distance {
	return Distance{Left: Unbounded, Right: Unbounded, Up: Unbounded, Down: Unbounded}
}

// Tighten narrows d for an obstacle the proposed move would intersect.
// mover is the pre-move box; the side it was approaching from picks the
// bound. A mover already overlapping on an axis may not move along it.
// The -1 keeps the mover one unit clear of the obstacle.
func (d *Distance) Tighten(mover, obstacle Edges) {
	rel := Classify(mover, obstacle)

	switch rel.X {
	case LeftOf:
		d.Left = math.Min(d.Left, mover.Left-obstacle.Right-1)
	case RightOf:
		d.Right = math.Min(d.Right, obstacle.Left-mover.Right-1)
	default:
		d.Left, d.Right = 0, 0
	}

	switch rel.Y {
	case Above:
		d.Up = math.Min(d.Up, mover.Top-obstacle.Bottom-1)
	case Below:
		d.Down = math.Min(d.Down, obstacle.Top-mover.Bottom-1)
	default:
		d.Up, d.Down = 0, 0
	}
}

// Min combines two results, keeping the tighter bound per direction.
func (d Distance) Min(o Distance) Distance {
	return Distance{
		Left:  math.Min(d.Left, o.Left),
		Right: math.Min(d.Right, o.Right),
		Up:    math.Min(d.Up, o.Up),
		Down:  math.Min(d.Down, o.Down),
	}
}

// IsUnbounded reports whether no direction was constrained.
func (d Distance) IsUnbounded() bool {
	return d == NewDistance()
}
