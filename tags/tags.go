package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Platform   = donburi.NewTag().SetName("Platform")
	Floor      = donburi.NewTag().SetName("Floor")
	Spike      = donburi.NewTag().SetName("Spike")
	ShipPart   = donburi.NewTag().SetName("ShipPart")
	Decoration = donburi.NewTag().SetName("Decoration")
	// LevelEntity marks everything rebuilt when the session loads a level.
	LevelEntity = donburi.NewTag().SetName("LevelEntity")
)

// Resolv tags for the proximity space
const (
	ResolvSolid  = "solid"
	ResolvFloor  = "floor"
	ResolvSpike  = "spike"
	ResolvPart   = "part"
	ResolvPlayer = "Player"
	ResolvSensor = "sensor"
)
