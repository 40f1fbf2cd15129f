package factory

import (
	"github.com/automoto/celestial-survivor/archetypes"
	"github.com/automoto/celestial-survivor/components"
	"github.com/automoto/celestial-survivor/sim"
	"github.com/automoto/celestial-survivor/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// CreateSession stores the simulation as the scene's singleton together
// with the viewport and level summary derived from it.
func CreateSession(ecs *ecs.ECS, s *sim.Session) *donburi.Entry {
	entry := archetypes.Session.Spawn(ecs)
	w, h := s.Viewport()
	components.Session.SetValue(entry, components.SessionData{Session: s, SyncedGeneration: -1})
	components.Viewport.SetValue(entry, components.ViewportData{Width: int(w), Height: int(h)})
	return entry
}

// BuildLevel replaces every level entity with ones built from the session's
// current geometry and moves the player to the freshly loaded body.
func BuildLevel(ecs *ecs.ECS, entry *donburi.Entry) {
	sess := components.Session.Get(entry)
	lvl := sess.Level()
	w, h := sess.Viewport()

	var stale []donburi.Entity
	donburi.NewQuery(filter.Contains(tags.LevelEntity)).Each(ecs.World, func(e *donburi.Entry) {
		stale = append(stale, e.Entity())
	})
	for _, e := range stale {
		ecs.World.Remove(e)
	}

	ResetSpace(ecs, int(w), int(h))

	floor, platforms := lvl.Geometry.Surfaces()
	if floor != nil {
		CreateFloor(ecs, *floor)
	}
	for _, r := range platforms {
		CreatePlatform(ecs, r)
	}
	for _, hz := range lvl.Geometry.Hazards {
		CreateSpike(ecs, hz)
	}
	if p := lvl.Geometry.Pickup; p != nil {
		CreateShipPart(ecs, *p)
	}

	body := sess.State().Body
	if player, ok := components.Player.First(ecs.World); ok {
		obj := components.Object.Get(player)
		obj.X, obj.Y = body.X, body.Y
		addToSpace(ecs, obj.Object)
		sensor := components.Player.Get(player).Sensor
		sensor.X, sensor.Y = SensorPosition(body)
		addToSpace(ecs, sensor)
	} else {
		CreatePlayer(ecs, body)
	}

	components.Level.SetValue(entry, components.LevelData{
		Index:    sess.LevelIndex(),
		Count:    sess.LevelCount(),
		Name:     lvl.Name,
		FloorTop: lvl.FloorTop,
		Width:    w,
		Height:   h,
	})
	sess.SyncedGeneration = sess.Generation()

	log.Debug().
		Str("level", lvl.Name).
		Int("platforms", len(platforms)).
		Int("spikes", len(lvl.Geometry.Hazards)).
		Int("generation", sess.Generation()).
		Msg("Level entities built")
}
