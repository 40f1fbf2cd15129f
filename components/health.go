package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HealthBarData animates the HUD bar toward the player's health.
type HealthBarData struct {
	Target  int
	Display float32
	Tween   *gween.Tween
}

var HealthBar = donburi.NewComponentType[HealthBarData]()
