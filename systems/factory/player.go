package factory

import (
	"github.com/automoto/celestial-survivor/archetypes"
	"github.com/automoto/celestial-survivor/components"
	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/automoto/celestial-survivor/shared/kinematics"
	"github.com/automoto/celestial-survivor/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// sensorMargin is how far around the player nearby spikes and parts are
// noticed.
const sensorMargin = 48

func CreatePlayer(ecs *ecs.ECS, b kinematics.Body) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := newObject(b.X, b.Y, b.W, b.H, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	sensor := newObject(b.X-sensorMargin, b.Y-sensorMargin, b.W+2*sensorMargin, b.H+2*sensorMargin, tags.ResolvSensor)
	sensor.Data = player
	components.Player.SetValue(player, components.PlayerData{
		Facing: cfg.DirectionRight,
		Sensor: sensor,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		OnGround: b.Grounded,
	})

	animData := GenerateAnimations(int(b.W), int(b.H))
	animData.SetAnimation(cfg.Idle)
	components.Animation.Set(player, animData)

	// Flash is permanently attached to avoid archetype thrashing
	components.Flash.SetValue(player, components.FlashData{
		Duration: 0,
		R:        1, G: 1, B: 1,
	})

	addToSpace(ecs, obj)
	addToSpace(ecs, sensor)

	return player
}

// SensorPosition returns where the proximity sensor sits for a body.
func SensorPosition(b kinematics.Body) (float64, float64) {
	return b.X - sensorMargin, b.Y - sensorMargin
}
