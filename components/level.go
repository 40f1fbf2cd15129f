package components

import (
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Index    int
	Count    int
	Name     string
	FloorTop float64
	Width    float64
	Height   float64
}

var Level = donburi.NewComponentType[LevelData]()

// ShipPartData marks the level's pickup. BaseY is the resting position the
// hover animation oscillates around.
type ShipPartData struct {
	BaseY float64
	Near  bool
	Taken bool
	Glow  float64
}

var ShipPart = donburi.NewComponentType[ShipPartData]()

// SpikeData marks a hazard. Near is set while the player is close enough for
// the spikes to flash a warning.
type SpikeData struct {
	Near     bool
	Disabled bool
}

var Spike = donburi.NewComponentType[SpikeData]()
