package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives looping motion such as the ship part hover.
var Tween = donburi.NewComponentType[gween.Sequence]()
