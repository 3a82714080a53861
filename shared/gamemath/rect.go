package gamemath

// HitBox is a collidable region given as offsets from its owner's origin.
// From <= To componentwise is expected but not enforced.
type HitBox struct {
	From, To Point
}

func NewHitBox(fromX, fromY, toX, toY float64) HitBox {
	return HitBox{From: Pt(fromX, fromY), To: Pt(toX, toY)}
}

// HitBoxOf returns a hit-box covering a w x h sprite from its origin.
func HitBoxOf(w, h float64) HitBox {
	return NewHitBox(0, 0, w, h)
}

func (h HitBox) Width() float64 {
	return h.To.X - h.From.X
}

func (h HitBox) Height() float64 {
	return h.To.Y - h.From.Y
}

// At places the hit-box in world space for an owner at position.
func (h HitBox) At(position Point) Edges {
	return Edges{
		Left:   position.X + h.From.X,
		Top:    position.Y + h.From.Y,
		Right:  position.X + h.To.X,
		Bottom: position.Y + h.To.Y,
	}
}

// Edges is an axis-aligned box in world coordinates.
type Edges struct {
	Left, Top, Right, Bottom float64
}

// Shift returns e translated by (dx, dy).
func (e Edges) Shift(dx, dy float64) Edges {
	return Edges{
		Left:   e.Left + dx,
		Top:    e.Top + dy,
		Right:  e.Right + dx,
		Bottom: e.Bottom + dy,
	}
}

// Rect is a position plus size, the shape renderers work with.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Edges() Edges {
	return Edges{Left: r.X, Top: r.Y, Right: r.X + r.W, Bottom: r.Y + r.H}
}

// Overlaps is the contact-damage test. Intervals are half-open, so boxes
// that only share an edge do not overlap.
func Overlaps(a, b Edges) bool {
	return b.Left < a.Right && a.Left < b.Right && b.Top < a.Bottom && a.Top < b.Bottom
}
