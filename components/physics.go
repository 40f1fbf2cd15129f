package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData mirrors the resolved body after each tick for systems that
// only read motion (animation, audio, rendering).
type PhysicsData struct {
	SpeedX      float64
	SpeedY      float64
	OnGround    bool
	WasOnGround bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
