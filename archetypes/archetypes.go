package archetypes

import (
	"github.com/automoto/celestial-survivor/components"
	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/automoto/celestial-survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		tags.LevelEntity,
		components.Object,
	)
	Floor = newArchetype(
		tags.Floor,
		tags.LevelEntity,
		components.Object,
	)
	Spike = newArchetype(
		tags.Spike,
		tags.LevelEntity,
		components.Object,
		components.Spike,
	)
	ShipPart = newArchetype(
		tags.ShipPart,
		tags.LevelEntity,
		components.Object,
		components.ShipPart,
		components.Tween,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
		components.Physics,
		components.State,
		components.Flash,
	)
	Decoration = newArchetype(
		tags.Decoration,
		components.Decoration,
	)
	Space = newArchetype(
		components.Space,
	)
	Session = newArchetype(
		components.Session,
		components.Viewport,
		components.Level,
	)
	HealthBar = newArchetype(
		components.HealthBar,
	)
	Input = newArchetype(
		components.Input,
	)
	Pause = newArchetype(
		components.Pause,
	)
	Death = newArchetype(
		components.Death,
	)
	LevelComplete = newArchetype(
		components.LevelComplete,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
