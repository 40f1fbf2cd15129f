package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing float64 // cfg.DirectionLeft or cfg.DirectionRight
	// Sensor is a box around the player used to find nearby spikes and
	// ship parts in the resolv space.
	Sensor *resolv.Object
}

var Player = donburi.NewComponentType[PlayerData]()
