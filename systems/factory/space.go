package factory

import (
	"github.com/automoto/celestial-survivor/archetypes"
	"github.com/automoto/celestial-survivor/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpaceCellSize is the resolv broad-phase cell size in pixels.
const SpaceCellSize = 16

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// ResetSpace replaces the space with an empty one sized to the viewport.
// A resolv space cannot grow, so a resize needs a fresh one.
func ResetSpace(ecs *ecs.ECS, width, height int) *resolv.Space {
	spaceData := resolv.NewSpace(width, height, SpaceCellSize, SpaceCellSize)
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		entry = CreateSpace(ecs, width, height, SpaceCellSize, SpaceCellSize)
	}
	components.Space.Set(entry, spaceData)
	return spaceData
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

func newObject(x, y, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}
