package systems

import (
	"github.com/automoto/celestial-survivor/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects counts down the hurt flash.
func UpdateEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
		if flash.Duration == 0 {
			flash.R, flash.G, flash.B = 1, 1, 1
		}
	})
}

// flashAmount returns how strongly to tint the sprite. The flash blinks on
// alternate groups of four ticks.
func flashAmount(flash *components.FlashData) float32 {
	if flash.Duration <= 0 || (flash.Duration/4)%2 == 1 {
		return 0
	}
	return 0.7
}
