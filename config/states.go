package config

// StateID identifies the player's animation state.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Walk
	Jump
	Fall
	Hurt
	Dead
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walk:
		return "walk"
	case Jump:
		return "jump"
	case Fall:
		return "fall"
	case Hurt:
		return "hurt"
	case Dead:
		return "dead"
	default:
		return "none"
	}
}
