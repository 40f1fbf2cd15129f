package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/celestial-survivor/shared/kinematics"
	"github.com/automoto/celestial-survivor/sim"
)

// SessionData holds the simulation for the platformer scene (singleton).
type SessionData struct {
	*sim.Session
	// SyncedGeneration is the level generation the ECS entities were built
	// from.
	SyncedGeneration int
	// Events produced by the last tick.
	Events []kinematics.Event
	// Frames counts scene updates, including paused ones. It drives the
	// decorative animations.
	Frames int
}

var Session = donburi.NewComponentType[SessionData]()

// ViewportData is the current drawable size (singleton).
type ViewportData struct {
	Width, Height int
}

var Viewport = donburi.NewComponentType[ViewportData]()
