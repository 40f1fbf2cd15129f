package systems

import (
	"testing"

	"github.com/automoto/celestial-survivor/components"
	"github.com/stretchr/testify/assert"
)

func TestHealthBarEasesToTarget(t *testing.T) {
	bar := &components.HealthBarData{Target: 100, Display: 100}

	stepHealthBar(bar, 80, 16)
	assert.Equal(t, 80, bar.Target)
	assert.Less(t, bar.Display, float32(100))
	assert.Greater(t, bar.Display, float32(80))

	for i := 0; i < 100; i++ {
		stepHealthBar(bar, 80, 16)
	}
	assert.Equal(t, float32(80), bar.Display)
	assert.Nil(t, bar.Tween)
}

func TestHealthBarRetargetsMidTween(t *testing.T) {
	bar := &components.HealthBarData{Target: 100, Display: 100}
	stepHealthBar(bar, 80, 16)
	mid := bar.Display

	stepHealthBar(bar, 100, 16)
	assert.Equal(t, 100, bar.Target)
	assert.GreaterOrEqual(t, bar.Display, mid)
}

func TestHealthRatioClamps(t *testing.T) {
	assert.Equal(t, float32(0.5), healthRatio(50, 100))
	assert.Equal(t, float32(0), healthRatio(-20, 100))
	assert.Equal(t, float32(1), healthRatio(150, 100))
	assert.Equal(t, float32(0), healthRatio(50, 0))
}
