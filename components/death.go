package components

import "github.com/yohamta/donburi"

// DeathData tracks the death overlay. Timer counts ticks since the player
// died and drives the overlay fade in.
type DeathData struct {
	Timer int
}

var Death = donburi.NewComponentType[DeathData]()
