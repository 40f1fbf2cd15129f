// Package leveldata describes levels as viewport-relative tables and turns
// them into collision geometry for a given viewport size.
// It does not import ebitengine or the ECS.
package leveldata

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultFloorHeight is the floor thickness used when a table leaves it out.
const DefaultFloorHeight = 50

// Coord is a single level coordinate. Besides plain numbers it accepts the
// keywords "floor" (anchored to the floor top) and "full" (the viewport
// width). How a plain number is interpreted depends on the field.
type Coord struct {
	Floor bool
	Full  bool
	Value float64
}

// Num returns a plain numeric coordinate.
func Num(v float64) Coord { return Coord{Value: v} }

var (
	OnFloor   = Coord{Floor: true}
	FullWidth = Coord{Full: true}
)

func (c *Coord) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: coordinate must be a scalar", n.Line)
	}
	switch n.Value {
	case "floor":
		*c = OnFloor
		return nil
	case "full":
		*c = FullWidth
		return nil
	}
	v, err := strconv.ParseFloat(n.Value, 64)
	if err != nil {
		return fmt.Errorf("line %d: invalid coordinate %q", n.Line, n.Value)
	}
	*c = Num(v)
	return nil
}

func (c Coord) MarshalYAML() (interface{}, error) {
	switch {
	case c.Floor:
		return "floor", nil
	case c.Full:
		return "full", nil
	default:
		return c.Value, nil
	}
}

// Table is the static description of one level.
//
// Platform y values are offsets from the viewport bottom (negative is up) or
// "floor". Platform widths are pixels or "full". The ship part is centred on
// the platform at PlatformIndex and nudged by its offsets.
type Table struct {
	Name        string     `yaml:"name"`
	FloorHeight float64    `yaml:"floorHeight"`
	Platforms   []Platform `yaml:"platforms"`
	Spikes      []Spike    `yaml:"spikes"`
	ShipPart    *ShipPart  `yaml:"shipPart"`
	Spawn       *Spawn     `yaml:"spawn"`
}

type Platform struct {
	X      float64 `yaml:"x"`
	Y      Coord   `yaml:"y"`
	Width  Coord   `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Spike y is "floor" to rest on the floor top, otherwise an offset from the
// viewport bottom.
type Spike struct {
	X        float64 `yaml:"x"`
	Y        Coord   `yaml:"y"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Disabled bool    `yaml:"disabled"`
}

type ShipPart struct {
	PlatformIndex int     `yaml:"platformIndex"`
	OffsetX       float64 `yaml:"offsetX"`
	OffsetY       float64 `yaml:"offsetY"`
}

// Spawn y is an offset from the viewport bottom.
type Spawn struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// DefaultSpawn is where the player starts when a table has no spawn.
var DefaultSpawn = Spawn{X: 20, Y: -140}
