package components

import (
	"testing"

	cfg "github.com/automoto/tilescene/config"
	"github.com/stretchr/testify/assert"
)

func TestInputActionEdges(t *testing.T) {
	var in InputData

	in.Current[cfg.ActionPause] = true
	assert.Equal(t, ActionState{Pressed: true, JustPressed: true}, in.Action(cfg.ActionPause))

	in.Advance()
	assert.Equal(t, ActionState{JustReleased: true}, in.Action(cfg.ActionPause))

	in.Current[cfg.ActionPause] = true
	in.Advance()
	in.Current[cfg.ActionPause] = true
	assert.Equal(t, ActionState{Pressed: true}, in.Action(cfg.ActionPause))
}

func TestInputAdvanceClearsCurrent(t *testing.T) {
	var in InputData
	in.Current[cfg.ActionMoveLeft] = true

	in.Advance()

	assert.True(t, in.Previous[cfg.ActionMoveLeft])
	assert.False(t, in.Current[cfg.ActionMoveLeft])
}
