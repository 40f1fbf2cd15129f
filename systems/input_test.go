package systems

import (
	"testing"

	"github.com/automoto/celestial-survivor/components"
	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/automoto/celestial-survivor/shared/kinematics"
	"github.com/stretchr/testify/assert"
)

func TestGetActionEdges(t *testing.T) {
	var input components.InputData

	input.Current[cfg.ActionJump] = true
	assert.Equal(t, components.ActionState{Pressed: true, JustPressed: true}, GetAction(&input, cfg.ActionJump))

	input.Previous = input.Current
	assert.Equal(t, components.ActionState{Pressed: true}, GetAction(&input, cfg.ActionJump))

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	assert.Equal(t, components.ActionState{JustReleased: true}, GetAction(&input, cfg.ActionJump))
}

func TestIntentFromInput(t *testing.T) {
	var input components.InputData
	assert.Equal(t, kinematics.Intent{}, IntentFromInput(&input))

	input.Current[cfg.ActionMoveLeft] = true
	input.Current[cfg.ActionMoveRight] = true
	input.Current[cfg.ActionJump] = true

	assert.Equal(t, kinematics.Intent{
		MoveLeft:    true,
		MoveRight:   true,
		JumpPressed: true,
		JumpHeld:    true,
	}, IntentFromInput(&input))
}
