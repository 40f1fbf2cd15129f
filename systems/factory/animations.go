package factory

import (
	"github.com/automoto/celestial-survivor/assets"
	"github.com/automoto/celestial-survivor/assets/animations"
	"github.com/automoto/celestial-survivor/components"
	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenerateAnimations builds the player's animation set from the configured
// definitions and the procedurally drawn walk cycle.
func GenerateAnimations(frameWidth, frameHeight int) *components.AnimationData {
	animData := &components.AnimationData{
		Animations:   make(map[cfg.StateID]*animations.Animation),
		Frames:       make(map[float64][]*ebiten.Image),
		CurrentSheet: cfg.StateNone,
	}

	for state, def := range cfg.PlayerAnimations {
		animData.Animations[state] = animations.NewAnimation(def.Frames, def.Speed)
	}
	for _, facing := range []float64{cfg.DirectionLeft, cfg.DirectionRight} {
		animData.Frames[facing] = assets.PlayerFrames(frameWidth, frameHeight, facing)
	}

	return animData
}
