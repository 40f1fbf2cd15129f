package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores the settings toggled in game and persisted between
// runs (singleton).
type SettingsData struct {
	Debug     bool
	Muted     bool
	SFXVolume float64
	// BestShipParts is the most parts collected in a single run.
	BestShipParts int
	IntroSeen     bool
}

var Settings = donburi.NewComponentType[SettingsData]()
