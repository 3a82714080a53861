package gamemath

// AxisX is where b lies horizontally relative to a.
type AxisX int

const (
	MiddleX AxisX = iota
	LeftOf
	RightOf
)

func (x AxisX) String() string {
	switch x {
	case LeftOf:
		return "LEFT_OF"
	case RightOf:
		return "RIGHT_OF"
	default:
		return "MIDDLE"
	}
}

// AxisY is where b lies vertically relative to a.
type AxisY int

const (
	MiddleY AxisY = iota
	Above
	Below
)

func (y AxisY) String() string {
	switch y {
	case Above:
		return "ABOVE"
	case Below:
		return "BELOW"
	default:
		return "MIDDLE"
	}
}

// RelativePosition places b on a 3x3 grid around a:
//
//	1 2 3    1 ABOVE+LEFT_OF   2 ABOVE+MIDDLE   3 ABOVE+RIGHT_OF
//	4 5 6    4 MIDDLE+LEFT_OF  5 MIDDLE+MIDDLE  6 MIDDLE+RIGHT_OF
//	7 8 9    7 BELOW+LEFT_OF   8 BELOW+MIDDLE   9 BELOW+RIGHT_OF
type RelativePosition struct {
	X AxisX
	Y AxisY
}

// Intersects reports the centre cell: the boxes overlap on both axes.
func (r RelativePosition) Intersects() bool {
	return r.X == MiddleX && r.Y == MiddleY
}

// Classify reports where b lies relative to a. The comparisons are strict,
// so touching edges classify as Middle and count as overlap.
func Classify(a, b Edges) RelativePosition {
	var res RelativePosition

	switch {
	case b.Bottom < a.Top:
		res.Y = Above
	case b.Top > a.Bottom:
		res.Y = Below
	default:
		res.Y = MiddleY
	}

	switch {
	case b.Right < a.Left:
		res.X = LeftOf
	case b.Left > a.Right:
		res.X = RightOf
	default:
		res.X = MiddleX
	}

	return res
}
