package factory

import (
	"github.com/automoto/celestial-survivor/archetypes"
	"github.com/automoto/celestial-survivor/components"
	"github.com/automoto/celestial-survivor/shared/kinematics"
	"github.com/automoto/celestial-survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpike(ecs *ecs.ECS, h kinematics.Hazard) *donburi.Entry {
	spike := archetypes.Spike.Spawn(ecs)

	obj := newObject(h.X, h.Y, h.W, h.H, tags.ResolvSpike)
	obj.Data = spike
	components.Object.SetValue(spike, components.ObjectData{Object: obj})
	components.Spike.SetValue(spike, components.SpikeData{Disabled: h.Disabled})
	addToSpace(ecs, obj)

	return spike
}
