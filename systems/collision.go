package systems

import (
	"github.com/automoto/celestial-survivor/components"
	"github.com/automoto/celestial-survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// glowStep is how much the ship part glow changes per tick.
const glowStep = 0.05

// UpdateCollisions moves the player's objects in the resolv space and flags
// spikes and ship parts within reach of the proximity sensor. Collision
// response itself is done by the session; this only feeds visuals.
func UpdateCollisions(ecs *ecs.ECS) {
	components.Spike.Each(ecs.World, func(e *donburi.Entry) {
		components.Spike.Get(e).Near = false
	})
	components.ShipPart.Each(ecs.World, func(e *donburi.Entry) {
		components.ShipPart.Get(e).Near = false
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		obj.Update()

		player := components.Player.Get(e)
		sensor := player.Sensor
		if sensor == nil {
			return
		}
		sensor.X = obj.X - (sensor.W-obj.W)/2
		sensor.Y = obj.Y - (sensor.H-obj.H)/2
		sensor.Update()

		check := sensor.Check(0, 0, tags.ResolvSpike, tags.ResolvPart)
		if check == nil {
			return
		}
		for _, o := range check.ObjectsByTags(tags.ResolvSpike) {
			if entry, ok := o.Data.(*donburi.Entry); ok && entry.Valid() {
				components.Spike.Get(entry).Near = true
			}
		}
		for _, o := range check.ObjectsByTags(tags.ResolvPart) {
			if entry, ok := o.Data.(*donburi.Entry); ok && entry.Valid() {
				components.ShipPart.Get(entry).Near = true
			}
		}
	})

	components.ShipPart.Each(ecs.World, func(e *donburi.Entry) {
		part := components.ShipPart.Get(e)
		if part.Near {
			part.Glow = min(part.Glow+glowStep, 1)
		} else {
			part.Glow = max(part.Glow-glowStep, 0)
		}
	})
}
