package components

import "github.com/yohamta/donburi"

// FlashData tracks the hurt flash on the player sprite
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // tint color
}

var Flash = donburi.NewComponentType[FlashData]()

// DecorationKind selects how a background decoration is drawn.
type DecorationKind int

const (
	DecorationStar DecorationKind = iota
	DecorationPlant
)

// DecorationData is a purely visual background element. X and Y are
// fractions of the viewport so decorations follow resizes.
type DecorationData struct {
	Kind  DecorationKind
	X, Y  float64
	Scale float64
	Alpha float64
	Phase float64
}

var Decoration = donburi.NewComponentType[DecorationData]()
