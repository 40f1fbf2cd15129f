package systems

import (
	"github.com/automoto/celestial-survivor/components"
	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects animates the ship part hover. Only the drawn position
// moves; the session still collects the part at its resting rectangle.
func UpdateObjects(ecs *ecs.ECS) {
	dt := float32(1000) / float32(cfg.C.TPS)

	components.ShipPart.Each(ecs.World, func(e *donburi.Entry) {
		part := components.ShipPart.Get(e)
		obj := components.Object.Get(e)

		offset, _, _ := components.Tween.Get(e).Update(dt)
		obj.Y = part.BaseY + float64(offset)
		obj.Update()
	})
}
