package gamemath

// ClampOffset limits a signed per-axis move to the room reported for that
// axis: back bounds negative offsets, forward positive ones. Negative room
// is treated as none.
func ClampOffset(offset, back, forward float64) float64 {
	if back < 0 {
		back = 0
	}
	if forward < 0 {
		forward = 0
	}
	if offset > forward {
		return forward
	}
	if offset < -back {
		return -back
	}
	return offset
}

// Clamp applies ClampOffset on both axes.
func (d Distance) Clamp(dx, dy float64) (float64, float64) {
	return ClampOffset(dx, d.Left, d.Right), ClampOffset(dy, d.Up, d.Down)
}
