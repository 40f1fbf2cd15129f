package config

type AnimationDef struct {
	Frames int
	// Speed is ticks per frame.
	Speed int
}

// HurtFlashTicks is how long the player blinks after a hazard hit.
const HurtFlashTicks = 30

// PlayerAnimations is the walk cycle from the sprite sheet: four frames at
// 120ms each, the other states hold a single frame.
var PlayerAnimations = map[StateID]AnimationDef{
	Idle: {Frames: 1, Speed: 1},
	Walk: {Frames: 4, Speed: 7},
	Jump: {Frames: 1, Speed: 1},
	Fall: {Frames: 1, Speed: 1},
	Hurt: {Frames: 2, Speed: 4},
	Dead: {Frames: 1, Speed: 1},
}
