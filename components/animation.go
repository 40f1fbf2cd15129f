package components

import (
	"github.com/automoto/celestial-survivor/assets/animations"
	"github.com/automoto/celestial-survivor/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	Animations       map[config.StateID]*animations.Animation
	// Frames holds the walk cycle images per facing (-1 left, 1 right).
	Frames map[float64][]*ebiten.Image
}

func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && a.CurrentAnimation != nil {
		return
	}

	anim, ok := a.Animations[state]
	if !ok {
		a.CurrentAnimation = nil
		a.CurrentSheet = state
		return
	}
	a.CurrentAnimation = anim
	a.CurrentSheet = state
	a.CurrentAnimation.Restart()
}

// Image returns the frame to draw for the given facing.
func (a *AnimationData) Image(facing float64) *ebiten.Image {
	frames := a.Frames[facing]
	if len(frames) == 0 {
		return nil
	}
	i := 0
	if a.CurrentAnimation != nil && a.CurrentSheet == config.Walk {
		i = a.CurrentAnimation.Frame() % len(frames)
	}
	return frames[i]
}

var Animation = donburi.NewComponentType[AnimationData]()
