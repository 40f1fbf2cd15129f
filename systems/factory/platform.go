package factory

import (
	"github.com/automoto/celestial-survivor/archetypes"
	"github.com/automoto/celestial-survivor/components"
	"github.com/automoto/celestial-survivor/shared/kinematics"
	"github.com/automoto/celestial-survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, r kinematics.Rect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := newObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return platform
}

// CreateFloor creates the ground. It is drawn from its top down to the
// bottom of the viewport whatever the collision rectangle's height.
func CreateFloor(ecs *ecs.ECS, r kinematics.Rect) *donburi.Entry {
	floor := archetypes.Floor.Spawn(ecs)

	obj := newObject(r.X, r.Y, r.W, r.H, tags.ResolvSolid, tags.ResolvFloor)
	obj.Data = floor
	components.Object.SetValue(floor, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return floor
}
