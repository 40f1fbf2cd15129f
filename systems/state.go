package systems

import (
	"github.com/automoto/celestial-survivor/components"
	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/automoto/celestial-survivor/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates derives the player's animation state from the mirrored
// physics and advances the matching animation.
func UpdateStates(ecs *ecs.ECS) {
	phase := sim.PhasePlaying
	if sessEntry, ok := components.Session.First(ecs.World); ok {
		phase = components.Session.Get(sessEntry).Phase()
	}

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		flash := components.Flash.Get(e)
		state := components.State.Get(e)

		next := playerStateFor(phase, physics, flash)
		if next != state.CurrentState {
			state.PreviousState = state.CurrentState
			state.CurrentState = next
			state.StateTimer = 0
		} else {
			state.StateTimer++
		}

		anim := components.Animation.Get(e)
		anim.SetAnimation(state.CurrentState)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}

func playerStateFor(phase sim.Phase, physics *components.PhysicsData, flash *components.FlashData) cfg.StateID {
	switch {
	case phase == sim.PhaseDead:
		return cfg.Dead
	case flash.Duration > 0:
		return cfg.Hurt
	case !physics.OnGround && physics.SpeedY < 0:
		return cfg.Jump
	case !physics.OnGround:
		return cfg.Fall
	case physics.SpeedX != 0:
		return cfg.Walk
	default:
		return cfg.Idle
	}
}
