package systems

import (
	"math"

	"github.com/automoto/celestial-survivor/components"
	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/automoto/celestial-survivor/shared/kinematics"
	"github.com/automoto/celestial-survivor/sim"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer advances the simulation one tick from the polled input and
// turns the resulting events into sounds, the hurt flash and saved
// progress.
func UpdatePlayer(ecs *ecs.ECS) {
	sessEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	sess := components.Session.Get(sessEntry)
	sess.Events = sess.Events[:0]
	if sess.Phase() != sim.PhasePlaying {
		return
	}

	intent := IntentFromInput(getOrCreateInput(ecs))
	before := sess.State()
	sess.Events = append(sess.Events, sess.Step(intent)...)
	after := sess.State()

	if jumped(before.Body, after.Body) {
		PlaySFX(ecs, cfg.SoundJump)
	}

	playerEntry, hasPlayer := components.Player.First(ecs.World)
	for _, ev := range sess.Events {
		log.Debug().
			Str("event", ev.Kind.String()).
			Int("damage", ev.Damage).
			Int("health", after.Health).
			Uint64("tick", sess.Tick()).
			Msg("Player event")

		switch ev.Kind {
		case kinematics.EventHazardHit:
			PlaySFX(ecs, cfg.SoundHurt)
			if hasPlayer {
				startHurtFlash(playerEntry)
			}
		case kinematics.EventPickupCollected:
			PlaySFX(ecs, cfg.SoundPickup)
			RecordShipParts(ecs, after.ShipParts)
		case kinematics.EventDied:
			PlaySFX(ecs, cfg.SoundDeath)
		}
	}

	if hasPlayer {
		syncPlayer(playerEntry, after.Body, intent)
	}
}

// jumped reports whether the body left the ground moving upward this tick.
func jumped(before, after kinematics.Body) bool {
	return before.Grounded && !after.Grounded && after.VY < 0
}

func startHurtFlash(e *donburi.Entry) {
	flash := components.Flash.Get(e)
	flash.Duration = cfg.HurtFlashTicks
	flash.R, flash.G, flash.B = 1, 0.2, 0.2
}

// syncPlayer copies the resolved body onto the player's ECS components.
func syncPlayer(e *donburi.Entry, b kinematics.Body, in kinematics.Intent) {
	obj := components.Object.Get(e)
	obj.X, obj.Y = b.X, b.Y

	physics := components.Physics.Get(e)
	physics.WasOnGround = physics.OnGround
	physics.SpeedX = b.VX
	physics.SpeedY = b.VY
	physics.OnGround = b.Grounded

	player := components.Player.Get(e)
	if vx := kinematics.HorizontalVelocity(in, 1); vx != 0 {
		player.Facing = math.Copysign(1, vx)
	}
}
