package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTighten(t *testing.T) {
	mover := Edges{Left: 10, Top: 10, Right: 14, Bottom: 14}

	tests := []struct {
		name     string
		obstacle Edges
		expected Distance
	}{
		{
			name:     "obstacle to the right",
			obstacle: Edges{20, 10, 24, 14},
			expected: Distance{Left: Unbounded, Right: 5, Up: 0, Down: 0},
		},
		{
			name:     "obstacle to the left",
			obstacle: Edges{0, 10, 4, 14},
			expected: Distance{Left: 5, Right: Unbounded, Up: 0, Down: 0},
		},
		{
			name:     "obstacle above",
			obstacle: Edges{10, 0, 14, 7},
			expected: Distance{Left: 0, Right: 0, Up: 2, Down: Unbounded},
		},
		{
			name:     "obstacle below",
			obstacle: Edges{10, 16, 14, 20},
			expected: Distance{Left: 0, Right: 0, Up: Unbounded, Down: 1},
		},
		{
			name:     "diagonal below right",
			obstacle: Edges{18, 18, 22, 22},
			expected: Distance{Left: Unbounded, Right: 3, Up: Unbounded, Down: 3},
		},
		{
			name:     "already overlapping",
			obstacle: Edges{12, 12, 16, 16},
			expected: Distance{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDistance()
			d.Tighten(mover, tc.obstacle)
			assert.Equal(t, tc.expected, d)
		})
	}
}

func TestTightenKeepsMinimum(t *testing.T) {
	mover := Edges{Left: 10, Top: 10, Right: 14, Bottom: 14}

	d := NewDistance()
	d.Tighten(mover, Edges{20, 10, 24, 14})
	d.Tighten(mover, Edges{30, 10, 34, 14})
	assert.Equal(t, 5.0, d.Right)

	d.Tighten(mover, Edges{17, 10, 19, 14})
	assert.Equal(t, 2.0, d.Right)
}

func TestDistanceMin(t *testing.T) {
	a := Distance{Left: 1, Right: Unbounded, Up: 7, Down: 0}
	b := Distance{Left: 3, Right: 2, Up: Unbounded, Down: 4}

	assert.Equal(t, Distance{Left: 1, Right: 2, Up: 7, Down: 0}, a.Min(b))
	assert.True(t, NewDistance().IsUnbounded())
	assert.False(t, a.IsUnbounded())
}

func TestClampOffset(t *testing.T) {
	tests := []struct {
		name                  string
		offset, back, forward float64
		expected              float64
	}{
		{"within room", 3, 10, 10, 3},
		{"forward limited", 8, 10, 5, 5},
		{"backward limited", -8, 2, 10, -2},
		{"no room", 4, 0, 0, 0},
		{"negative room is none", 4, 10, -1, 0},
		{"unbounded", -100, Unbounded, Unbounded, -100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClampOffset(tc.offset, tc.back, tc.forward))
		})
	}
}

func TestDistanceClamp(t *testing.T) {
	d := Distance{Left: 1, Right: 4, Up: Unbounded, Down: 0}

	dx, dy := d.Clamp(6, 3)
	assert.Equal(t, 4.0, dx)
	assert.Equal(t, 0.0, dy)

	dx, dy = d.Clamp(-6, -3)
	assert.Equal(t, -1.0, dx)
	assert.Equal(t, -3.0, dy)
}
