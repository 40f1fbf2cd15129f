package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimationAdvancesEverySpeedTicks(t *testing.T) {
	a := NewAnimation(4, 7)

	for i := 0; i < 6; i++ {
		a.Update()
	}
	assert.Equal(t, 0, a.Frame())

	a.Update()
	assert.Equal(t, 1, a.Frame())
}

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(2, 1)

	a.Update()
	assert.Equal(t, 1, a.Frame())
	a.Update()
	assert.Equal(t, 0, a.Frame())
	assert.True(t, a.Looped)
}

func TestAnimationFreezeOnComplete(t *testing.T) {
	a := NewAnimation(3, 1)
	a.FreezeOnComplete = true

	for i := 0; i < 10; i++ {
		a.Update()
	}
	assert.Equal(t, 2, a.Frame())
}

func TestAnimationRestart(t *testing.T) {
	a := NewAnimation(4, 1)
	a.Update()
	a.Update()
	a.Restart()

	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Looped)
}

func TestSingleFrameAnimationNeverMoves(t *testing.T) {
	a := NewAnimation(1, 1)
	for i := 0; i < 5; i++ {
		a.Update()
	}
	assert.Equal(t, 0, a.Frame())
}
