package components

import "github.com/yohamta/donburi"

// LevelCompleteData stores the state of the final overlay shown once every
// ship part has been recovered.
type LevelCompleteData struct {
	IsComplete bool
	Timer      int
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
