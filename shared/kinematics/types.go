// Package kinematics advances a single player body through one fixed tick of
// movement, gravity and collision against static level geometry.
// Shapes come from resolv but never join a Space, so Resolve stays a pure
// function of its arguments. It does not import ebitengine or the ECS.
package kinematics

// Point is a position in playfield pixels, y grows downward.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Hazard is a damaging rectangle such as a row of spikes.
type Hazard struct {
	Rect
	Disabled bool
}

// FloorMode selects how the level floor is represented.
type FloorMode int

const (
	// FloorNone treats every solid as an ordinary platform.
	FloorNone FloorMode = iota
	// FloorFirstSolid marks Solids[0] as the floor spanning the playfield.
	FloorFirstSolid
	// FloorLine uses Geometry.FloorY as the floor surface.
	FloorLine
)

// Geometry is the static collision description of one level at one viewport
// size. It is never modified by Resolve.
type Geometry struct {
	Width   float64
	Solids  []Rect
	Hazards []Hazard
	Pickup  *Rect
	Floor   FloorMode
	FloorY  float64
}

// floorLineDepth is the height of the rectangle synthesized for FloorLine.
const floorLineDepth = 1

// Surfaces splits the geometry into the floor (if any) and the remaining
// platforms. A floor line is turned into a rectangle so both floor modes go
// through the same collision code.
func (g Geometry) Surfaces() (floor *Rect, platforms []Rect) {
	switch g.Floor {
	case FloorFirstSolid:
		if len(g.Solids) == 0 {
			return nil, nil
		}
		f := g.Solids[0]
		return &f, g.Solids[1:]
	case FloorLine:
		return &Rect{X: 0, Y: g.FloorY, W: g.Width, H: floorLineDepth}, g.Solids
	default:
		return nil, g.Solids
	}
}

// Body is the moving player rectangle.
type Body struct {
	X, Y     float64
	W, H     float64
	VX, VY   float64
	Grounded bool
}

func (b Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Intent is the player's input for a single tick.
type Intent struct {
	MoveLeft    bool
	MoveRight   bool
	JumpPressed bool
	JumpHeld    bool
}

// CeilingPolicy selects how upward motion is stopped by platforms.
type CeilingPolicy int

const (
	// CeilingCrossing stops the body only when its top edge crosses a
	// platform bottom during the tick.
	CeilingCrossing CeilingPolicy = iota
	// CeilingOverlap additionally pushes a rising body out from under any
	// platform it ends up overlapping.
	CeilingOverlap
)

// Tuning holds the per-tick movement constants.
type Tuning struct {
	Speed          float64
	JumpStrength   float64
	Gravity        float64
	JumpCut        bool
	AscentCapSpeed float64
	HazardDamage   int
	Epsilon        float64
	Ceiling        CeilingPolicy
}

// DefaultTuning returns the values the game ships with. Velocities are in
// pixels per tick at 60 ticks per second.
func DefaultTuning() Tuning {
	return Tuning{
		Speed:          4.5,
		JumpStrength:   16.5,
		Gravity:        0.8,
		JumpCut:        true,
		AscentCapSpeed: 4,
		HazardDamage:   20,
		Epsilon:        0.01,
		Ceiling:        CeilingCrossing,
	}
}

// State is everything a tick reads and writes besides geometry and input.
type State struct {
	Body            Body
	Spawn           Point
	Health          int
	MaxHealth       int
	ShipParts       int
	PickupCollected bool
	Dead            bool
}

// NewState places a body of the given size at spawn with full health.
func NewState(spawn Point, w, h float64, maxHealth int) State {
	return State{
		Body:      Body{X: spawn.X, Y: spawn.Y, W: w, H: h},
		Spawn:     spawn,
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
}

// ResetBody puts the body back at spawn with zero velocity.
func (s *State) ResetBody() {
	s.Body = Body{X: s.Spawn.X, Y: s.Spawn.Y, W: s.Body.W, H: s.Body.H}
}

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventHazardHit EventKind = iota
	EventPickupCollected
	EventDied
)

func (k EventKind) String() string {
	switch k {
	case EventHazardHit:
		return "hazard_hit"
	case EventPickupCollected:
		return "pickup_collected"
	case EventDied:
		return "died"
	default:
		return "unknown"
	}
}

// Event is emitted by Resolve. Damage is only set for EventHazardHit.
type Event struct {
	Kind   EventKind
	Damage int
}
